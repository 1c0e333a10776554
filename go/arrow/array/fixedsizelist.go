// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array

import (
	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/memory"
)

// FixedSizeList is fixed_size_list<elem>[n]: element i occupies child rows
// [(offset+i)*n, (offset+i+1)*n) (spec §3.5), so there is no offsets buffer.
type FixedSizeList struct {
	dtype  *arrow.FixedSizeListType
	offset int
	length int
	n      int
	nulls  NullBuffer
	child  arrow.Array
}

func NewFixedSizeList(dtype *arrow.FixedSizeListType, offset, length int, nulls NullBuffer, child arrow.Array) *FixedSizeList {
	return &FixedSizeList{dtype: dtype, offset: offset, length: length, n: int(dtype.Len()), nulls: nulls, child: child}
}

func (a *FixedSizeList) DataType() arrow.DataType { return a.dtype }
func (a *FixedSizeList) Len() int                 { return a.length }
func (a *FixedSizeList) Offset() int              { return a.offset }
func (a *FixedSizeList) NullN() int               { return a.nulls.NullCount() }
func (a *FixedSizeList) IsNull(i int) bool        { return !a.nulls.IsSet(a.offset + i) }
func (a *FixedSizeList) IsValid(i int) bool       { return a.nulls.IsSet(a.offset + i) }
func (a *FixedSizeList) Child() arrow.Array       { return a.child }

func (a *FixedSizeList) Get(i int) (arrow.Array, bool) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	if a.IsNull(i) {
		return nil, false
	}
	start := (a.offset + i) * a.n
	return sliceArray(a.child, start, a.n), true
}

func (a *FixedSizeList) BufferSizes() []int64 {
	return []int64{int64(len(ExportValidity(a.nulls)))}
}

func (a *FixedSizeList) Buffers() [][]byte {
	return [][]byte{ExportValidity(a.nulls)}
}

func (a *FixedSizeList) Slice(off, length int) *FixedSizeList {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	a.child.Retain()
	return &FixedSizeList{dtype: a.dtype, offset: a.offset + off, length: length, n: a.n, nulls: a.nulls.Slice(off, length), child: a.child}
}

func (a *FixedSizeList) Retain() {
	a.nulls.Retain()
	a.child.Retain()
}

func (a *FixedSizeList) Release() {
	a.nulls.Release()
	a.child.Release()
}

// FixedSizeListBuilder builds fixed_size_list<elem>[n] arrays; every Append
// must append exactly n child values, including for a null row (spec §4.2:
// keeps child indices aligned to i*n without an offsets buffer).
type FixedSizeListBuilder struct {
	dtype    *arrow.FixedSizeListType
	n        int
	nulls    *NullBufferBuilder
	child    Builder
	length   int
	finished bool
}

func NewFixedSizeListBuilder(mem memory.Allocator, dtype *arrow.FixedSizeListType, child Builder) *FixedSizeListBuilder {
	return &FixedSizeListBuilder{dtype: dtype, n: int(dtype.Len()), nulls: NewNullBufferBuilder(mem), child: child}
}

func (b *FixedSizeListBuilder) Len() int   { return b.length }
func (b *FixedSizeListBuilder) NullN() int { return b.nulls.NullCount() }

// Append invokes fn against the child builder to append this element's n
// values.
func (b *FixedSizeListBuilder) Append(fn func(child Builder)) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	before := b.child.Len()
	fn(b.child)
	if b.child.Len()-before != b.n {
		panic("array: fixed size list element must append exactly n child values")
	}
	b.nulls.AppendValid(true)
	b.length++
}

func (b *FixedSizeListBuilder) AppendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	for i := 0; i < b.n; i++ {
		b.child.AppendValue(nil)
	}
	b.nulls.AppendValid(false)
	b.length++
}

// AppendValue accepts a []interface{} of exactly n element values (nil
// appends a null row).
func (b *FixedSizeListBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	elems := v.([]interface{})
	if len(elems) != b.n {
		panic("array: fixed size list value has wrong length")
	}
	b.Append(func(child Builder) {
		for _, e := range elems {
			child.AppendValue(e)
		}
	})
}

func (b *FixedSizeListBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *FixedSizeListBuilder) Finish() *FixedSizeList {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	return &FixedSizeList{dtype: b.dtype, length: b.length, n: b.n, nulls: b.nulls.Finish(), child: b.child.NewArray()}
}

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
	"github.com/colarrow/colarrow/go/arrow/bitutil"
	"github.com/colarrow/colarrow/go/arrow/memory"
)

// Boolean is backed by two bit-packed buffers: validity and values (spec
// §4.2). Unlike the validity buffer, the values buffer is never elided.
type Boolean struct {
	offset int
	length int
	nulls  NullBuffer
	values *memory.Buffer
}

func NewBoolean(offset, length int, nulls NullBuffer, values *memory.Buffer) *Boolean {
	return &Boolean{offset: offset, length: length, nulls: nulls, values: values}
}

func (a *Boolean) DataType() arrow.DataType { return arrow.BooleanType }
func (a *Boolean) Len() int                 { return a.length }
func (a *Boolean) Offset() int              { return a.offset }
func (a *Boolean) NullN() int               { return a.nulls.NullCount() }
func (a *Boolean) IsNull(i int) bool        { return !a.nulls.IsSet(a.offset + i) }
func (a *Boolean) IsValid(i int) bool       { return a.nulls.IsSet(a.offset + i) }

func (a *Boolean) Value(i int) bool { return bitutil.BitIsSet(a.values.Bytes(), a.offset+i) }

func (a *Boolean) Get(i int) (bool, bool) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	if a.IsNull(i) {
		return false, false
	}
	return a.Value(i), true
}

func (a *Boolean) Slice(off, length int) *Boolean {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	a.values.Retain()
	return &Boolean{offset: a.offset + off, length: length, nulls: a.nulls.Slice(off, length), values: a.values}
}

func (a *Boolean) BufferSizes() []int64 {
	return []int64{int64(len(ExportValidity(a.nulls))), int64(bitutil.CeilByte(a.length)) / 8}
}

func (a *Boolean) Buffers() [][]byte {
	out := make([]byte, bitutil.CeilByte(a.length)/8)
	for i := 0; i < a.length; i++ {
		if a.Value(i) {
			bitutil.SetBit(out, i)
		}
	}
	return [][]byte{ExportValidity(a.nulls), out}
}

func (a *Boolean) Retain() {
	a.nulls.Retain()
	a.values.Retain()
}

func (a *Boolean) Release() {
	a.nulls.Release()
	a.values.Release()
}

// BooleanBuilder accumulates bools into two bit-packed buffers.
type BooleanBuilder struct {
	mem      memory.Allocator
	nulls    *NullBufferBuilder
	values   *memory.Buffer
	length   int
	capBits  int
	finished bool
}

func NewBooleanBuilder(mem memory.Allocator) *BooleanBuilder {
	return &BooleanBuilder{mem: mem, nulls: NewNullBufferBuilder(mem), values: memory.NewResizableBuffer(mem)}
}

func (b *BooleanBuilder) Len() int   { return b.length }
func (b *BooleanBuilder) NullN() int { return b.nulls.NullCount() }

func (b *BooleanBuilder) reserve(n int) {
	if b.length+n <= b.capBits {
		return
	}
	newBits := bitutil.NextPowerOf2(b.length + n)
	if newBits < 8 {
		newBits = 8
	}
	old := b.values.Len()
	b.values.Resize(bitutil.CeilByte(newBits) / 8)
	memory.Set(b.values.Buf()[old:], 0)
	b.capBits = newBits
}

func (b *BooleanBuilder) Append(v bool) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	b.reserve(1)
	bitutil.SetBitTo(b.values.Buf(), b.length, v)
	b.nulls.AppendValid(true)
	b.length++
}

func (b *BooleanBuilder) AppendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	b.reserve(1)
	bitutil.ClearBit(b.values.Buf(), b.length)
	b.nulls.AppendValid(false)
	b.length++
}

func (b *BooleanBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(v.(bool))
}

func (b *BooleanBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *BooleanBuilder) Finish() *Boolean {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	b.values.Resize(bitutil.CeilByte(b.length) / 8)
	return &Boolean{length: b.length, nulls: b.nulls.Finish(), values: b.values}
}

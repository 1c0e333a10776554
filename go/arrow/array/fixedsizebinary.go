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

// FixedSizeBinary is values[(offset+i)*w : (offset+i+1)*w] (spec §3.5).
type FixedSizeBinary struct {
	dtype     *arrow.FixedSizeBinaryType
	offset    int
	length    int
	byteWidth int
	nulls     NullBuffer
	data      *memory.Buffer
}

func NewFixedSizeBinary(dtype *arrow.FixedSizeBinaryType, offset, length int, nulls NullBuffer, data *memory.Buffer) *FixedSizeBinary {
	return &FixedSizeBinary{dtype: dtype, offset: offset, length: length, byteWidth: int(dtype.ByteWidth), nulls: nulls, data: data}
}

func (a *FixedSizeBinary) DataType() arrow.DataType { return a.dtype }
func (a *FixedSizeBinary) Len() int                 { return a.length }
func (a *FixedSizeBinary) Offset() int              { return a.offset }
func (a *FixedSizeBinary) NullN() int               { return a.nulls.NullCount() }
func (a *FixedSizeBinary) IsNull(i int) bool        { return !a.nulls.IsSet(a.offset + i) }
func (a *FixedSizeBinary) IsValid(i int) bool       { return a.nulls.IsSet(a.offset + i) }

func (a *FixedSizeBinary) Value(i int) []byte {
	w := a.byteWidth
	start := (a.offset + i) * w
	return a.data.Bytes()[start : start+w]
}

func (a *FixedSizeBinary) Get(i int) ([]byte, bool) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	if a.IsNull(i) {
		return nil, false
	}
	return a.Value(i), true
}

func (a *FixedSizeBinary) Slice(off, length int) *FixedSizeBinary {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	a.data.Retain()
	return &FixedSizeBinary{dtype: a.dtype, offset: a.offset + off, length: length, byteWidth: a.byteWidth, nulls: a.nulls.Slice(off, length), data: a.data}
}

func (a *FixedSizeBinary) BufferSizes() []int64 {
	return []int64{int64(len(ExportValidity(a.nulls))), int64(a.length * a.byteWidth)}
}

func (a *FixedSizeBinary) Buffers() [][]byte {
	start := a.offset * a.byteWidth
	end := (a.offset + a.length) * a.byteWidth
	return [][]byte{ExportValidity(a.nulls), a.data.Bytes()[start:end]}
}

func (a *FixedSizeBinary) Retain()  { a.nulls.Retain(); a.data.Retain() }
func (a *FixedSizeBinary) Release() { a.nulls.Release(); a.data.Release() }

// FixedSizeBinaryBuilder builds FixedSizeBinary arrays; AppendNull writes w
// zero bytes to keep positional alignment (spec §4.2).
type FixedSizeBinaryBuilder struct {
	mem       memory.Allocator
	dtype     *arrow.FixedSizeBinaryType
	byteWidth int
	nulls     *NullBufferBuilder
	data      *memory.Buffer
	length    int
	capacity  int
	finished  bool
}

func NewFixedSizeBinaryBuilder(mem memory.Allocator, dtype *arrow.FixedSizeBinaryType) *FixedSizeBinaryBuilder {
	return &FixedSizeBinaryBuilder{
		mem: mem, dtype: dtype, byteWidth: int(dtype.ByteWidth),
		nulls: NewNullBufferBuilder(mem), data: memory.NewResizableBuffer(mem),
	}
}

func (b *FixedSizeBinaryBuilder) Len() int   { return b.length }
func (b *FixedSizeBinaryBuilder) NullN() int { return b.nulls.NullCount() }

func (b *FixedSizeBinaryBuilder) reserve(n int) {
	if b.length+n <= b.capacity {
		return
	}
	newCap := b.capacity
	if newCap == 0 {
		newCap = 1
	}
	for newCap < b.length+n {
		newCap *= 2
	}
	old := b.data.Len()
	b.data.Resize(newCap * b.byteWidth)
	memory.Set(b.data.Buf()[old:], 0)
	b.capacity = newCap
}

func (b *FixedSizeBinaryBuilder) Append(v []byte) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	if len(v) != b.byteWidth {
		panic("array: fixed size binary value has wrong width")
	}
	b.reserve(1)
	copy(b.data.Buf()[b.length*b.byteWidth:], v)
	b.nulls.AppendValid(true)
	b.length++
}

func (b *FixedSizeBinaryBuilder) AppendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	b.reserve(1)
	b.nulls.AppendValid(false)
	b.length++
}

func (b *FixedSizeBinaryBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(v.([]byte))
}

func (b *FixedSizeBinaryBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *FixedSizeBinaryBuilder) Finish() *FixedSizeBinary {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	b.data.Resize(b.length * b.byteWidth)
	return &FixedSizeBinary{dtype: b.dtype, length: b.length, byteWidth: b.byteWidth, nulls: b.nulls.Finish(), data: b.data}
}

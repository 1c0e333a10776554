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

// Offset is satisfied by the two IPC-normative offset widths (spec §6):
// int32 for utf8/binary/list/map, int64 for the large_* variants.
type Offset interface{ ~int32 | ~int64 }

// varLen is the generic backing for utf8/binary (and their large_ 64-bit
// offset counterparts): a validity buffer, an offsets buffer with a
// trailing fencepost, and a raw byte blob (spec §3.3 VariableLengthBuffer,
// §3.5 "Variable-length").
type varLen[O Offset] struct {
	dtype   arrow.DataType
	offset  int
	length  int
	nulls   NullBuffer
	offsets *memory.Buffer
	data    *memory.Buffer
}

func (a *varLen[O]) offsetsSlice() []O { return bytesToSlice[O](a.offsets.Bytes()) }

func (a *varLen[O]) ValueBytes(i int) []byte {
	offs := a.offsetsSlice()
	start := offs[a.offset+i]
	end := offs[a.offset+i+1]
	return a.data.Bytes()[start:end]
}

func (a *varLen[O]) Len() int          { return a.length }
func (a *varLen[O]) Offset() int       { return a.offset }
func (a *varLen[O]) NullN() int        { return a.nulls.NullCount() }
func (a *varLen[O]) IsNull(i int) bool { return !a.nulls.IsSet(a.offset + i) }
func (a *varLen[O]) IsValid(i int) bool { return a.nulls.IsSet(a.offset + i) }
func (a *varLen[O]) DataType() arrow.DataType { return a.dtype }

func (a *varLen[O]) slice(off, length int) *varLen[O] {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	a.offsets.Retain()
	a.data.Retain()
	return &varLen[O]{dtype: a.dtype, offset: a.offset + off, length: length, nulls: a.nulls.Slice(off, length), offsets: a.offsets, data: a.data}
}

func (a *varLen[O]) BufferSizes() []int64 {
	var o O
	width := int64(sizeOfT[O]())
	_ = o
	return []int64{int64(len(ExportValidity(a.nulls))), (int64(a.length) + 1) * width, a.valueByteLen()}
}

func (a *varLen[O]) valueByteLen() int64 {
	offs := a.offsetsSlice()
	return int64(offs[a.offset+a.length]) - int64(offs[a.offset])
}

// Buffers exports zero-based offsets (fenceposts rebased to 0) and the
// exact data-byte span they cover, matching the IPC writer's
// getZeroBasedValueOffsets behaviour in the teacher.
func (a *varLen[O]) Buffers() [][]byte {
	offs := a.offsetsSlice()
	base := offs[a.offset]
	zeroed := make([]O, a.length+1)
	for i := 0; i <= a.length; i++ {
		zeroed[i] = offs[a.offset+i] - base
	}
	end := offs[a.offset+a.length]
	return [][]byte{ExportValidity(a.nulls), sliceToBytes(zeroed), a.data.Bytes()[base:end]}
}

func (a *varLen[O]) retain() {
	a.nulls.Retain()
	a.offsets.Retain()
	a.data.Retain()
}

func (a *varLen[O]) release() {
	a.nulls.Release()
	a.offsets.Release()
	a.data.Release()
}

// String is a utf8 array (32-bit offsets).
type String struct{ *varLen[int32] }

func NewString(offset, length int, nulls NullBuffer, offsets, data *memory.Buffer) *String {
	return &String{&varLen[int32]{dtype: arrow.StringType, offset: offset, length: length, nulls: nulls, offsets: offsets, data: data}}
}
func (a *String) Value(i int) string { return string(a.ValueBytes(i)) }
func (a *String) Get(i int) (string, bool) {
	if a.IsNull(i) {
		return "", false
	}
	return a.Value(i), true
}
func (a *String) Slice(off, length int) *String { return &String{a.slice(off, length)} }
func (a *String) Retain()                       { a.retain() }
func (a *String) Release()                      { a.release() }

// Binary is a binary array (32-bit offsets).
type Binary struct{ *varLen[int32] }

func NewBinary(offset, length int, nulls NullBuffer, offsets, data *memory.Buffer) *Binary {
	return &Binary{&varLen[int32]{dtype: arrow.BinaryType, offset: offset, length: length, nulls: nulls, offsets: offsets, data: data}}
}
func (a *Binary) Value(i int) []byte { return a.ValueBytes(i) }
func (a *Binary) Get(i int) ([]byte, bool) {
	if a.IsNull(i) {
		return nil, false
	}
	return a.Value(i), true
}
func (a *Binary) Slice(off, length int) *Binary { return &Binary{a.slice(off, length)} }
func (a *Binary) Retain()                       { a.retain() }
func (a *Binary) Release()                      { a.release() }

// LargeString is a large_utf8 array (64-bit offsets).
type LargeString struct{ *varLen[int64] }

func NewLargeString(offset, length int, nulls NullBuffer, offsets, data *memory.Buffer) *LargeString {
	return &LargeString{&varLen[int64]{dtype: arrow.LargeStringType, offset: offset, length: length, nulls: nulls, offsets: offsets, data: data}}
}
func (a *LargeString) Value(i int) string { return string(a.ValueBytes(i)) }
func (a *LargeString) Get(i int) (string, bool) {
	if a.IsNull(i) {
		return "", false
	}
	return a.Value(i), true
}
func (a *LargeString) Slice(off, length int) *LargeString { return &LargeString{a.slice(off, length)} }
func (a *LargeString) Retain()                            { a.retain() }
func (a *LargeString) Release()                           { a.release() }

// LargeBinary is a large_binary array (64-bit offsets).
type LargeBinary struct{ *varLen[int64] }

func NewLargeBinary(offset, length int, nulls NullBuffer, offsets, data *memory.Buffer) *LargeBinary {
	return &LargeBinary{&varLen[int64]{dtype: arrow.LargeBinaryType, offset: offset, length: length, nulls: nulls, offsets: offsets, data: data}}
}
func (a *LargeBinary) Value(i int) []byte { return a.ValueBytes(i) }
func (a *LargeBinary) Get(i int) ([]byte, bool) {
	if a.IsNull(i) {
		return nil, false
	}
	return a.Value(i), true
}
func (a *LargeBinary) Slice(off, length int) *LargeBinary { return &LargeBinary{a.slice(off, length)} }
func (a *LargeBinary) Retain()                            { a.retain() }
func (a *LargeBinary) Release()                           { a.release() }

// varLenBuilder is the generic builder shared by String/Binary/LargeString/
// LargeBinary (spec §4.2 "Variable<T, OffsetT>").
type varLenBuilder[O Offset] struct {
	mem      memory.Allocator
	nulls    *NullBufferBuilder
	offsets  *memory.Buffer
	data     *memory.Buffer
	length   int
	offCap   int
	dataCap  int
	finished bool
}

func newVarLenBuilder[O Offset](mem memory.Allocator) *varLenBuilder[O] {
	b := &varLenBuilder[O]{mem: mem, nulls: NewNullBufferBuilder(mem), offsets: memory.NewResizableBuffer(mem), data: memory.NewResizableBuffer(mem)}
	b.reserveOffsets(1)
	bytesToSlice[O](b.offsets.Buf())[0] = 0
	b.offsets.Resize(sizeOfT[O]())
	return b
}

func (b *varLenBuilder[O]) Len() int   { return b.length }
func (b *varLenBuilder[O]) NullN() int { return b.nulls.NullCount() }

func (b *varLenBuilder[O]) reserveOffsets(n int) {
	if n <= b.offCap {
		return
	}
	newCap := b.offCap
	if newCap == 0 {
		newCap = 1
	}
	for newCap < n {
		newCap *= 2
	}
	width := sizeOfT[O]()
	old := b.offsets.Len()
	b.offsets.Resize(newCap * width)
	memory.Set(b.offsets.Buf()[old:], 0)
	b.offCap = newCap
}

func (b *varLenBuilder[O]) reserveData(n int) {
	if n <= b.dataCap {
		return
	}
	newCap := b.dataCap
	if newCap == 0 {
		newCap = 1
	}
	for newCap < n {
		newCap *= 2
	}
	old := b.data.Len()
	b.data.Resize(newCap)
	memory.Set(b.data.Buf()[old:], 0)
	b.dataCap = newCap
}

func (b *varLenBuilder[O]) append(v []byte) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	curData := b.data.Len()
	b.reserveData(curData + len(v))
	copy(b.data.Buf()[curData:], v)
	b.data.Resize(curData + len(v))

	b.reserveOffsets(b.length + 2)
	b.offsets.Resize((b.length + 2) * sizeOfT[O]())
	bytesToSlice[O](b.offsets.Buf())[b.length+1] = O(curData + len(v))

	b.nulls.AppendValid(true)
	b.length++
}

func (b *varLenBuilder[O]) appendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	curData := b.data.Len()
	b.reserveOffsets(b.length + 2)
	b.offsets.Resize((b.length + 2) * sizeOfT[O]())
	bytesToSlice[O](b.offsets.Buf())[b.length+1] = O(curData)

	b.nulls.AppendValid(false)
	b.length++
}

func (b *varLenBuilder[O]) finish() (NullBuffer, *memory.Buffer, *memory.Buffer) {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	b.offsets.Resize((b.length + 1) * sizeOfT[O]())
	b.data.Resize(b.data.Len())
	return b.nulls.Finish(), b.offsets, b.data
}

// StringBuilder builds a utf8 array.
type StringBuilder struct{ *varLenBuilder[int32] }

func NewStringBuilder(mem memory.Allocator) *StringBuilder {
	return &StringBuilder{newVarLenBuilder[int32](mem)}
}
func (b *StringBuilder) Append(v string)  { b.append([]byte(v)) }
func (b *StringBuilder) AppendNull()      { b.appendNull() }
func (b *StringBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.appendNull()
		return
	}
	b.Append(v.(string))
}
func (b *StringBuilder) NewArray() arrow.Array { return b.Finish() }
func (b *StringBuilder) Finish() *String {
	nulls, offs, data := b.finish()
	return NewString(0, b.length, nulls, offs, data)
}

// BinaryBuilder builds a binary array.
type BinaryBuilder struct{ *varLenBuilder[int32] }

func NewBinaryBuilder(mem memory.Allocator) *BinaryBuilder {
	return &BinaryBuilder{newVarLenBuilder[int32](mem)}
}
func (b *BinaryBuilder) Append(v []byte) { b.append(v) }
func (b *BinaryBuilder) AppendNull()     { b.appendNull() }
func (b *BinaryBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.appendNull()
		return
	}
	b.Append(v.([]byte))
}
func (b *BinaryBuilder) NewArray() arrow.Array { return b.Finish() }
func (b *BinaryBuilder) Finish() *Binary {
	nulls, offs, data := b.finish()
	return NewBinary(0, b.length, nulls, offs, data)
}

// LargeStringBuilder builds a large_utf8 array (64-bit offsets).
type LargeStringBuilder struct{ *varLenBuilder[int64] }

func NewLargeStringBuilder(mem memory.Allocator) *LargeStringBuilder {
	return &LargeStringBuilder{newVarLenBuilder[int64](mem)}
}
func (b *LargeStringBuilder) Append(v string) { b.append([]byte(v)) }
func (b *LargeStringBuilder) AppendNull()     { b.appendNull() }
func (b *LargeStringBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.appendNull()
		return
	}
	b.Append(v.(string))
}
func (b *LargeStringBuilder) NewArray() arrow.Array { return b.Finish() }
func (b *LargeStringBuilder) Finish() *LargeString {
	nulls, offs, data := b.finish()
	return NewLargeString(0, b.length, nulls, offs, data)
}

// LargeBinaryBuilder builds a large_binary array (64-bit offsets).
type LargeBinaryBuilder struct{ *varLenBuilder[int64] }

func NewLargeBinaryBuilder(mem memory.Allocator) *LargeBinaryBuilder {
	return &LargeBinaryBuilder{newVarLenBuilder[int64](mem)}
}
func (b *LargeBinaryBuilder) Append(v []byte) { b.append(v) }
func (b *LargeBinaryBuilder) AppendNull()     { b.appendNull() }
func (b *LargeBinaryBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.appendNull()
		return
	}
	b.Append(v.([]byte))
}
func (b *LargeBinaryBuilder) NewArray() arrow.Array { return b.Finish() }
func (b *LargeBinaryBuilder) Finish() *LargeBinary {
	nulls, offs, data := b.finish()
	return NewLargeBinary(0, b.length, nulls, offs, data)
}

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

// FixedWidthArray is the generic backing for every fixed-width ArrowType
// variant (int8..uint64, float16/32/64, date32/64, time32/64, timestamp,
// duration, decimal128/256): a validity buffer plus one FixedWidthBuffer<T>
// (spec §3.3, §3.5, §9 design note on encoding T at the outer container).
type FixedWidthArray[T any] struct {
	dtype  arrow.DataType
	offset int
	length int
	nulls  NullBuffer
	values *memory.Buffer
}

// NewFixedWidthArray constructs an array sharing the given buffers; used by
// both FixedWidthBuilder.Finish and the IPC reader (which passes borrowed
// buffers).
func NewFixedWidthArray[T any](dtype arrow.DataType, offset, length int, nulls NullBuffer, values *memory.Buffer) *FixedWidthArray[T] {
	return &FixedWidthArray[T]{dtype: dtype, offset: offset, length: length, nulls: nulls, values: values}
}

func (a *FixedWidthArray[T]) DataType() arrow.DataType { return a.dtype }
func (a *FixedWidthArray[T]) Len() int                 { return a.length }
func (a *FixedWidthArray[T]) Offset() int              { return a.offset }
func (a *FixedWidthArray[T]) NullN() int               { return a.nulls.NullCount() }
func (a *FixedWidthArray[T]) IsNull(i int) bool        { return !a.nulls.IsSet(a.offset + i) }
func (a *FixedWidthArray[T]) IsValid(i int) bool       { return a.nulls.IsSet(a.offset + i) }

// Value returns the slot's physical value regardless of validity: nulls
// carry an all-zero placeholder written by the builder (spec §3.5, §6).
func (a *FixedWidthArray[T]) Value(i int) T {
	return bytesToSlice[T](a.values.Bytes())[a.offset+i]
}

// Get returns (value, ok); ok is false for a null slot.
func (a *FixedWidthArray[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	if a.IsNull(i) {
		var zero T
		return zero, false
	}
	return a.Value(i), true
}

func (a *FixedWidthArray[T]) Slice(off, length int) *FixedWidthArray[T] {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	a.values.Retain()
	return &FixedWidthArray[T]{
		dtype:  a.dtype,
		offset: a.offset + off,
		length: length,
		nulls:  a.nulls.Slice(off, length),
		values: a.values,
	}
}

func (a *FixedWidthArray[T]) BufferSizes() []int64 {
	width := int64(sizeOfT[T]())
	return []int64{int64(len(ExportValidity(a.nulls))), int64(a.length) * width}
}

// Buffers returns the array's own logical span, repacked to start at bit/
// element 0 (used by the IPC writer; §4.5).
func (a *FixedWidthArray[T]) Buffers() [][]byte {
	values := bytesToSlice[T](a.values.Bytes())[a.offset : a.offset+a.length]
	return [][]byte{ExportValidity(a.nulls), sliceToBytes(values)}
}

func (a *FixedWidthArray[T]) Retain() {
	a.nulls.Retain()
	a.values.Retain()
}

func (a *FixedWidthArray[T]) Release() {
	a.nulls.Release()
	a.values.Release()
}

// FixedWidthBuilder accumulates T values, growing its backing buffer by
// doubling, and finalises into an immutable, 64-byte aligned FixedWidthArray.
type FixedWidthBuilder[T any] struct {
	mem      memory.Allocator
	dtype    arrow.DataType
	nulls    *NullBufferBuilder
	values   *memory.Buffer
	length   int
	capacity int
	finished bool
}

func NewFixedWidthBuilder[T any](mem memory.Allocator, dtype arrow.DataType) *FixedWidthBuilder[T] {
	return &FixedWidthBuilder[T]{
		mem:    mem,
		dtype:  dtype,
		nulls:  NewNullBufferBuilder(mem),
		values: memory.NewResizableBuffer(mem),
	}
}

func (b *FixedWidthBuilder[T]) Len() int   { return b.length }
func (b *FixedWidthBuilder[T]) NullN() int { return b.nulls.NullCount() }

func (b *FixedWidthBuilder[T]) reserve(n int) {
	if b.length+n <= b.capacity {
		return
	}
	width := sizeOfT[T]()
	newCap := b.capacity
	if newCap == 0 {
		newCap = 1
	}
	for newCap < b.length+n {
		newCap *= 2
	}
	old := b.values.Len()
	b.values.Resize(newCap * width)
	memory.Set(b.values.Buf()[old:], 0)
	b.capacity = newCap
}

// Append records a valid value.
func (b *FixedWidthBuilder[T]) Append(v T) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	b.reserve(1)
	bytesToSlice[T](b.values.Buf())[b.length] = v
	b.nulls.AppendValid(true)
	b.length++
}

// AppendNull records a null, writing an all-zero placeholder to keep
// positional alignment (spec §4.2).
func (b *FixedWidthBuilder[T]) AppendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	b.reserve(1)
	var zero T
	bytesToSlice[T](b.values.Buf())[b.length] = zero
	b.nulls.AppendValid(false)
	b.length++
}

// AppendValue implements Builder's dynamically-typed edge.
func (b *FixedWidthBuilder[T]) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(v.(T))
}

// NewArray implements Builder.
func (b *FixedWidthBuilder[T]) NewArray() arrow.Array { return b.Finish() }

// Finish builds the immutable array and consumes the builder.
func (b *FixedWidthBuilder[T]) Finish() *FixedWidthArray[T] {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	width := sizeOfT[T]()
	b.values.Resize(b.length * width)
	return &FixedWidthArray[T]{dtype: b.dtype, length: b.length, nulls: b.nulls.Finish(), values: b.values}
}

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

// list is the generic backing for list/large_list (spec §3.5): offsets
// like a variable-length array, but pointing into a shared child array
// whose indices stay absolute across slicing of the parent.
type list[O Offset] struct {
	dtype   arrow.DataType
	offset  int
	length  int
	nulls   NullBuffer
	offsets *memory.Buffer
	child   arrow.Array
}

func (a *list[O]) offsetsSlice() []O { return bytesToSlice[O](a.offsets.Bytes()) }

func (a *list[O]) Len() int                 { return a.length }
func (a *list[O]) Offset() int              { return a.offset }
func (a *list[O]) NullN() int               { return a.nulls.NullCount() }
func (a *list[O]) IsNull(i int) bool        { return !a.nulls.IsSet(a.offset + i) }
func (a *list[O]) IsValid(i int) bool       { return a.nulls.IsSet(a.offset + i) }
func (a *list[O]) DataType() arrow.DataType { return a.dtype }
func (a *list[O]) Child() arrow.Array       { return a.child }

// ValueRange returns the [start, end) child-array index range for element i.
func (a *list[O]) ValueRange(i int) (int, int) {
	offs := a.offsetsSlice()
	return int(offs[a.offset+i]), int(offs[a.offset+i+1])
}

func (a *list[O]) BufferSizes() []int64 {
	width := int64(sizeOfT[O]())
	return []int64{int64(len(ExportValidity(a.nulls))), (int64(a.length) + 1) * width}
}

func (a *list[O]) Buffers() [][]byte {
	offs := a.offsetsSlice()
	base := offs[a.offset]
	zeroed := make([]O, a.length+1)
	for i := 0; i <= a.length; i++ {
		zeroed[i] = offs[a.offset+i] - base
	}
	return [][]byte{ExportValidity(a.nulls), sliceToBytes(zeroed)}
}

func (a *list[O]) slice(off, length int) *list[O] {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	a.offsets.Retain()
	a.child.Retain()
	return &list[O]{dtype: a.dtype, offset: a.offset + off, length: length, nulls: a.nulls.Slice(off, length), offsets: a.offsets, child: a.child}
}

func (a *list[O]) retain()  { a.nulls.Retain(); a.offsets.Retain(); a.child.Retain() }
func (a *list[O]) release() { a.nulls.Release(); a.offsets.Release(); a.child.Release() }

// List is list<elem> (32-bit offsets).
type List struct {
	*list[int32]
	elemField arrow.Field
}

func NewList(elemField arrow.Field, offset, length int, nulls NullBuffer, offsets *memory.Buffer, child arrow.Array) *List {
	return &List{&list[int32]{dtype: arrow.ListOf(elemField), offset: offset, length: length, nulls: nulls, offsets: offsets, child: child}, elemField}
}

// Get returns (a slice of the child array covering element i, ok).
func (a *List) Get(i int) (arrow.Array, bool) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	if a.IsNull(i) {
		return nil, false
	}
	start, end := a.ValueRange(i)
	return sliceArray(a.child, start, end-start), true
}

func (a *List) Slice(off, length int) *List { return &List{a.slice(off, length), a.elemField} }
func (a *List) Retain()                     { a.retain() }
func (a *List) Release()                    { a.release() }

// LargeList is large_list<elem> (64-bit offsets).
type LargeList struct {
	*list[int64]
	elemField arrow.Field
}

func NewLargeList(elemField arrow.Field, offset, length int, nulls NullBuffer, offsets *memory.Buffer, child arrow.Array) *LargeList {
	return &LargeList{&list[int64]{dtype: arrow.LargeListOf(elemField), offset: offset, length: length, nulls: nulls, offsets: offsets, child: child}, elemField}
}

func (a *LargeList) Get(i int) (arrow.Array, bool) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	if a.IsNull(i) {
		return nil, false
	}
	start, end := a.ValueRange(i)
	return sliceArray(a.child, start, end-start), true
}

func (a *LargeList) Slice(off, length int) *LargeList { return &LargeList{a.slice(off, length), a.elemField} }
func (a *LargeList) Retain()                          { a.retain() }
func (a *LargeList) Release()                         { a.release() }

// listBuilder is the generic builder shared by List/LargeList (spec §4.2).
type listBuilder[O Offset] struct {
	mem      memory.Allocator
	nulls    *NullBufferBuilder
	offsets  *memory.Buffer
	offCap   int
	length   int
	child    Builder
	finished bool
}

func (b *listBuilder[O]) Len() int   { return b.length }
func (b *listBuilder[O]) NullN() int { return b.nulls.NullCount() }

func newListBuilder[O Offset](mem memory.Allocator, child Builder) *listBuilder[O] {
	b := &listBuilder[O]{mem: mem, nulls: NewNullBufferBuilder(mem), offsets: memory.NewResizableBuffer(mem), child: child}
	b.reserve(1)
	b.offsets.Resize(sizeOfT[O]())
	bytesToSlice[O](b.offsets.Buf())[0] = 0
	return b
}

func (b *listBuilder[O]) reserve(n int) {
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

func (b *listBuilder[O]) fencepost() {
	b.reserve(b.length + 2)
	b.offsets.Resize((b.length + 2) * sizeOfT[O]())
	bytesToSlice[O](b.offsets.Buf())[b.length+1] = O(b.child.Len())
	b.length++
}

// Append invokes fn against the child builder to append one list element,
// then records the child's new length as the next fencepost.
func (b *listBuilder[O]) Append(fn func(child Builder)) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	fn(b.child)
	b.nulls.AppendValid(true)
	b.fencepost()
}

func (b *listBuilder[O]) AppendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	b.nulls.AppendValid(false)
	b.fencepost()
}

func (b *listBuilder[O]) finish() (NullBuffer, *memory.Buffer, arrow.Array) {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	b.offsets.Resize((b.length + 1) * sizeOfT[O]())
	return b.nulls.Finish(), b.offsets, b.child.NewArray()
}

// ListBuilder builds list<elem> arrays (32-bit offsets).
type ListBuilder struct {
	*listBuilder[int32]
	elemField arrow.Field
}

func NewListBuilder(mem memory.Allocator, elemField arrow.Field, child Builder) *ListBuilder {
	return &ListBuilder{newListBuilder[int32](mem, child), elemField}
}

// AppendValue accepts a []interface{} of element values (nil appends a null
// list), forwarding each to the child builder's own AppendValue.
func (b *ListBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	elems := v.([]interface{})
	b.Append(func(child Builder) {
		for _, e := range elems {
			child.AppendValue(e)
		}
	})
}

func (b *ListBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *ListBuilder) Finish() *List {
	nulls, offs, child := b.finish()
	return NewList(b.elemField, 0, b.length, nulls, offs, child)
}

// LargeListBuilder builds large_list<elem> arrays (64-bit offsets).
type LargeListBuilder struct {
	*listBuilder[int64]
	elemField arrow.Field
}

func NewLargeListBuilder(mem memory.Allocator, elemField arrow.Field, child Builder) *LargeListBuilder {
	return &LargeListBuilder{newListBuilder[int64](mem, child), elemField}
}

// AppendValue accepts a []interface{} of element values (nil appends a null
// list), forwarding each to the child builder's own AppendValue.
func (b *LargeListBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	elems := v.([]interface{})
	b.Append(func(child Builder) {
		for _, e := range elems {
			child.AppendValue(e)
		}
	})
}

func (b *LargeListBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *LargeListBuilder) Finish() *LargeList {
	nulls, offs, child := b.finish()
	return NewLargeList(b.elemField, 0, b.length, nulls, offs, child)
}

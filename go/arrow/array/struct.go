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

// Struct is struct(fields): a validity bitmap plus one child array per
// field, all the same logical length as the parent (spec §3.5). A field's
// own nulls are independent of the parent's validity bit at that row.
type Struct struct {
	dtype    *arrow.StructType
	offset   int
	length   int
	nulls    NullBuffer
	children []arrow.Array
}

func NewStruct(dtype *arrow.StructType, offset, length int, nulls NullBuffer, children []arrow.Array) *Struct {
	if len(children) != dtype.NumFields() {
		panic("array: struct children count does not match field count")
	}
	return &Struct{dtype: dtype, offset: offset, length: length, nulls: nulls, children: children}
}

func (a *Struct) DataType() arrow.DataType { return a.dtype }
func (a *Struct) Len() int                 { return a.length }
func (a *Struct) Offset() int              { return a.offset }
func (a *Struct) NullN() int               { return a.nulls.NullCount() }
func (a *Struct) IsNull(i int) bool        { return !a.nulls.IsSet(a.offset + i) }
func (a *Struct) IsValid(i int) bool       { return a.nulls.IsSet(a.offset + i) }
func (a *Struct) NumField() int            { return len(a.children) }

// Field returns the i'th child array, already positioned at this struct's
// own offset (children share their parent's absolute row indexing).
func (a *Struct) Field(i int) arrow.Array { return sliceArray(a.children[i], a.offset, a.length) }

func (a *Struct) BufferSizes() []int64 {
	return []int64{int64(len(ExportValidity(a.nulls)))}
}

func (a *Struct) Buffers() [][]byte {
	return [][]byte{ExportValidity(a.nulls)}
}

func (a *Struct) Slice(off, length int) *Struct {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	for _, c := range a.children {
		c.Retain()
	}
	return &Struct{dtype: a.dtype, offset: a.offset + off, length: length, nulls: a.nulls.Slice(off, length), children: a.children}
}

func (a *Struct) Retain() {
	a.nulls.Retain()
	for _, c := range a.children {
		c.Retain()
	}
}

func (a *Struct) Release() {
	a.nulls.Release()
	for _, c := range a.children {
		c.Release()
	}
}

// StructBuilder forwards each named field's value to its matching child
// builder (spec §4.2, §9): Append takes a map keyed by field name so callers
// need not know field order.
type StructBuilder struct {
	dtype    *arrow.StructType
	nulls    *NullBufferBuilder
	children []Builder
	length   int
	finished bool
}

func NewStructBuilder(mem memory.Allocator, dtype *arrow.StructType, children []Builder) *StructBuilder {
	if len(children) != dtype.NumFields() {
		panic("array: struct builder children count does not match field count")
	}
	return &StructBuilder{dtype: dtype, nulls: NewNullBufferBuilder(mem), children: children}
}

func (b *StructBuilder) Len() int          { return b.length }
func (b *StructBuilder) NullN() int        { return b.nulls.NullCount() }
func (b *StructBuilder) FieldBuilder(i int) Builder { return b.children[i] }

// Append appends one row: values keyed by field name, forwarded to the
// matching child builder via AppendValue. A missing key appends null to
// that child.
func (b *StructBuilder) Append(values map[string]interface{}) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	for i, f := range b.dtype.Fields() {
		v, ok := values[f.Name]
		if !ok {
			b.children[i].AppendValue(nil)
			continue
		}
		b.children[i].AppendValue(v)
	}
	b.nulls.AppendValid(true)
	b.length++
}

func (b *StructBuilder) AppendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	for _, c := range b.children {
		c.AppendValue(nil)
	}
	b.nulls.AppendValid(false)
	b.length++
}

// AppendValue accepts a map[string]interface{} of field values (nil appends
// a null row).
func (b *StructBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	b.Append(v.(map[string]interface{}))
}

func (b *StructBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *StructBuilder) Finish() *Struct {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	children := make([]arrow.Array, len(b.children))
	for i, c := range b.children {
		children[i] = c.NewArray()
	}
	return &Struct{dtype: b.dtype, length: b.length, nulls: b.nulls.Finish(), children: children}
}

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
	"encoding/binary"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/memory"
)

const (
	binaryViewSize      = 16
	binaryViewInlineMax = 12
	// DefaultBinaryViewDataBufferCap is the default cap (2 MiB) a binary-view
	// builder's current data buffer is sealed at (spec §4.2).
	DefaultBinaryViewDataBufferCap = 2 << 20
)

// BinaryView is the 16-byte inline-or-referenced view of spec §3.4: word 0
// is length; an inline view (length<=12) packs its bytes in words 1-3,
// otherwise words 1-3 are (prefix, bufferIndex, byteOffset).
type BinaryView struct {
	dtype       arrow.DataType
	offset      int
	length      int
	nulls       NullBuffer
	views       *memory.Buffer // length*16 bytes
	dataBuffers []*memory.Buffer
	isUTF8      bool
}

func newBinaryView(isUTF8 bool, offset, length int, nulls NullBuffer, views *memory.Buffer, data []*memory.Buffer) *BinaryView {
	dt := arrow.DataType(arrow.BinaryViewType)
	if isUTF8 {
		dt = arrow.StringViewType
	}
	return &BinaryView{dtype: dt, offset: offset, length: length, nulls: nulls, views: views, dataBuffers: data, isUTF8: isUTF8}
}

func NewBinaryViewArray(offset, length int, nulls NullBuffer, views *memory.Buffer, data []*memory.Buffer) *BinaryView {
	return newBinaryView(false, offset, length, nulls, views, data)
}

func NewStringViewArray(offset, length int, nulls NullBuffer, views *memory.Buffer, data []*memory.Buffer) *BinaryView {
	return newBinaryView(true, offset, length, nulls, views, data)
}

func (a *BinaryView) DataType() arrow.DataType { return a.dtype }
func (a *BinaryView) Len() int                 { return a.length }
func (a *BinaryView) Offset() int              { return a.offset }
func (a *BinaryView) NullN() int               { return a.nulls.NullCount() }
func (a *BinaryView) IsNull(i int) bool        { return !a.nulls.IsSet(a.offset + i) }
func (a *BinaryView) IsValid(i int) bool       { return a.nulls.IsSet(a.offset + i) }
func (a *BinaryView) DataBuffers() []*memory.Buffer { return a.dataBuffers }

func (a *BinaryView) viewBytes(i int) []byte {
	start := (a.offset + i) * binaryViewSize
	return a.views.Bytes()[start : start+binaryViewSize]
}

// ValueBytes returns the value at i's raw bytes, dereferencing a data
// buffer for referenced views.
func (a *BinaryView) ValueBytes(i int) []byte {
	v := a.viewBytes(i)
	n := int32(binary.LittleEndian.Uint32(v[0:4]))
	if n <= binaryViewInlineMax {
		return append([]byte(nil), v[4:4+n]...)
	}
	bufIdx := binary.LittleEndian.Uint32(v[8:12])
	byteOff := binary.LittleEndian.Uint32(v[12:16])
	data := a.dataBuffers[bufIdx].Bytes()
	return data[byteOff : byteOff+uint32(n)]
}

func (a *BinaryView) Value(i int) []byte { return a.ValueBytes(i) }
func (a *BinaryView) ValueString(i int) string { return string(a.ValueBytes(i)) }

func (a *BinaryView) Get(i int) ([]byte, bool) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	if a.IsNull(i) {
		return nil, false
	}
	return a.Value(i), true
}

func (a *BinaryView) Slice(off, length int) *BinaryView {
	if off < 0 || length < 0 || off+length > a.length {
		panic("array: slice out of range")
	}
	a.views.Retain()
	for _, d := range a.dataBuffers {
		d.Retain()
	}
	return &BinaryView{dtype: a.dtype, offset: a.offset + off, length: length, nulls: a.nulls.Slice(off, length), views: a.views, dataBuffers: a.dataBuffers, isUTF8: a.isUTF8}
}

// BufferSizes reports validity, views (length*16), then one entry per data
// buffer (spec §4.3, §4.5: variadicBufferCounts = len(buffers)-2).
func (a *BinaryView) BufferSizes() []int64 {
	sizes := []int64{int64(len(ExportValidity(a.nulls))), int64(a.length) * binaryViewSize}
	for _, d := range a.dataBuffers {
		sizes = append(sizes, int64(d.Len()))
	}
	return sizes
}

func (a *BinaryView) Buffers() [][]byte {
	views := make([]byte, a.length*binaryViewSize)
	copy(views, a.views.Bytes()[a.offset*binaryViewSize:(a.offset+a.length)*binaryViewSize])
	out := [][]byte{ExportValidity(a.nulls), views}
	for _, d := range a.dataBuffers {
		out = append(out, d.Bytes())
	}
	return out
}

func (a *BinaryView) Retain() {
	a.nulls.Retain()
	a.views.Retain()
	for _, d := range a.dataBuffers {
		d.Retain()
	}
}

func (a *BinaryView) Release() {
	a.nulls.Release()
	a.views.Release()
	for _, d := range a.dataBuffers {
		d.Release()
	}
}

// BinaryViewBuilder builds inline-or-referenced views, sealing the current
// data buffer once it would exceed dataCap (default 2 MiB) and starting a
// fresh one (spec §4.2).
type BinaryViewBuilder struct {
	mem      memory.Allocator
	isUTF8   bool
	dataCap  int
	nulls    *NullBufferBuilder
	views    *memory.Buffer
	length   int
	capacity int
	sealed   []*memory.Buffer
	current  *memory.Buffer
	finished bool
}

func newBinaryViewBuilder(mem memory.Allocator, isUTF8 bool) *BinaryViewBuilder {
	return &BinaryViewBuilder{
		mem: mem, isUTF8: isUTF8, dataCap: DefaultBinaryViewDataBufferCap,
		nulls: NewNullBufferBuilder(mem), views: memory.NewResizableBuffer(mem),
	}
}

func NewBinaryViewBuilder(mem memory.Allocator) *BinaryViewBuilder {
	return newBinaryViewBuilder(mem, false)
}

func NewStringViewBuilder(mem memory.Allocator) *BinaryViewBuilder {
	return newBinaryViewBuilder(mem, true)
}

// SetDataBufferCap overrides the default 2 MiB seal threshold; must be
// called before any Append.
func (b *BinaryViewBuilder) SetDataBufferCap(n int) { b.dataCap = n }

func (b *BinaryViewBuilder) Len() int   { return b.length }
func (b *BinaryViewBuilder) NullN() int { return b.nulls.NullCount() }

func (b *BinaryViewBuilder) reserveViews(n int) {
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
	old := b.views.Len()
	b.views.Resize(newCap * binaryViewSize)
	memory.Set(b.views.Buf()[old:], 0)
	b.capacity = newCap
}

func (b *BinaryViewBuilder) append(v []byte) {
	if b.finished {
		panic("array: Append called after Builder.Finish")
	}
	b.reserveViews(1)
	buf := b.views.Buf()[b.length*binaryViewSize : (b.length+1)*binaryViewSize]
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(v)))
	if len(v) <= binaryViewInlineMax {
		copy(buf[4:4+len(v)], v)
	} else {
		if b.current == nil {
			b.current = memory.NewResizableBuffer(b.mem)
		}
		if b.current.Len()+len(v) > b.dataCap && b.current.Len() > 0 {
			b.sealed = append(b.sealed, b.current)
			b.current = memory.NewResizableBuffer(b.mem)
		}
		off := b.current.Len()
		b.current.Resize(off + len(v))
		copy(b.current.Buf()[off:], v)
		copy(buf[4:8], v[:4])
		binary.LittleEndian.PutUint32(buf[8:12], uint32(len(b.sealed)))
		binary.LittleEndian.PutUint32(buf[12:16], uint32(off))
	}
	b.nulls.AppendValid(true)
	b.length++
}

func (b *BinaryViewBuilder) Append(v []byte)  { b.append(v) }
func (b *BinaryViewBuilder) AppendString(v string) { b.append([]byte(v)) }

func (b *BinaryViewBuilder) AppendNull() {
	if b.finished {
		panic("array: AppendNull called after Builder.Finish")
	}
	b.reserveViews(1)
	b.nulls.AppendValid(false)
	b.length++
}

func (b *BinaryViewBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	switch s := v.(type) {
	case string:
		b.AppendString(s)
	case []byte:
		b.Append(s)
	default:
		panic("array: BinaryViewBuilder.AppendValue expects string or []byte")
	}
}

func (b *BinaryViewBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *BinaryViewBuilder) Finish() *BinaryView {
	if b.finished {
		panic("array: Builder.Finish called twice")
	}
	b.finished = true
	b.views.Resize(b.length * binaryViewSize)
	data := b.sealed
	if b.current != nil {
		data = append(data, b.current)
	}
	return newBinaryView(b.isUTF8, 0, b.length, b.nulls.Finish(), b.views, data)
}

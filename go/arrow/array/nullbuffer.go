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
	"github.com/colarrow/colarrow/go/arrow/bitutil"
	"github.com/colarrow/colarrow/go/arrow/memory"
)

// NullBuffer is the tri-variant validity bitmap of spec §3.3: AllValid,
// AllNull, or a bit-packed view. is_set(i) returns bit i, LSB-first.
type NullBuffer interface {
	IsSet(i int) bool
	Len() int
	NullCount() int
	// Bytes returns the raw bitmap backing bytes, or nil for the elided
	// AllValid/AllNull variants (buffer_sizes reports 0 for those, §4.3).
	Bytes() []byte
	Retain()
	Release()
	// Slice returns the validity of the sub-range [off, off+length).
	Slice(off, length int) NullBuffer
}

type allValidBuffer struct{ n int }

func (a *allValidBuffer) IsSet(i int) bool    { return true }
func (a *allValidBuffer) Len() int            { return a.n }
func (a *allValidBuffer) NullCount() int      { return 0 }
func (a *allValidBuffer) Bytes() []byte       { return nil }
func (a *allValidBuffer) Retain()             {}
func (a *allValidBuffer) Release()            {}
func (a *allValidBuffer) Slice(off, n int) NullBuffer {
	return &allValidBuffer{n: n}
}

type allNullBuffer struct{ n int }

func (a *allNullBuffer) IsSet(i int) bool    { return false }
func (a *allNullBuffer) Len() int            { return a.n }
func (a *allNullBuffer) NullCount() int      { return a.n }
func (a *allNullBuffer) Bytes() []byte       { return nil }
func (a *allNullBuffer) Retain()             {}
func (a *allNullBuffer) Release()            {}
func (a *allNullBuffer) Slice(off, n int) NullBuffer {
	return &allNullBuffer{n: n}
}

// bitPackedBuffer is a real bitmap: buf holds ceil64(n bits) bytes at a
// 64-byte aligned base when heap-owned, or an arbitrary IPC-borrowed view.
type bitPackedBuffer struct {
	buf       *memory.Buffer
	bitOffset int // element offset of bit 0 within buf (non-zero after Slice)
	n         int
	nullCount int
}

func (b *bitPackedBuffer) IsSet(i int) bool { return bitutil.BitIsSet(b.buf.Bytes(), b.bitOffset+i) }
func (b *bitPackedBuffer) Len() int         { return b.n }
func (b *bitPackedBuffer) NullCount() int   { return b.nullCount }
func (b *bitPackedBuffer) Bytes() []byte    { return b.buf.Bytes() }
func (b *bitPackedBuffer) Retain()          { b.buf.Retain() }
func (b *bitPackedBuffer) Release()         { b.buf.Release() }
func (b *bitPackedBuffer) Slice(off, length int) NullBuffer {
	b.buf.Retain()
	nulls := length - bitutil.CountSetBits(b.buf.Bytes(), b.bitOffset+off, length)
	return &bitPackedBuffer{buf: b.buf, bitOffset: b.bitOffset + off, n: length, nullCount: nulls}
}

// AllValid constructs the elided all-valid variant.
func AllValid(n int) NullBuffer { return &allValidBuffer{n: n} }

// AllNull constructs the elided all-null variant.
func AllNull(n int) NullBuffer { return &allNullBuffer{n: n} }

// NewBitPackedNullBuffer wraps a raw bitmap buffer (e.g. borrowed from an IPC
// file mapping) as a BitPacked NullBuffer.
func NewBitPackedNullBuffer(buf *memory.Buffer, n, nullCount int) NullBuffer {
	return &bitPackedBuffer{buf: buf, n: n, nullCount: nullCount}
}

// NullBufferBuilder accumulates validity bits and elides storage on finish
// per spec §4.1.
type NullBufferBuilder struct {
	mem       memory.Allocator
	buf       *memory.Buffer
	length    int
	nullCount int
	finished  bool
}

func NewNullBufferBuilder(mem memory.Allocator) *NullBufferBuilder {
	return &NullBufferBuilder{mem: mem}
}

func (b *NullBufferBuilder) Len() int       { return b.length }
func (b *NullBufferBuilder) NullCount() int { return b.nullCount }

// AppendValid packs isValid at the next bit position, growing the backing
// buffer by doubling when it runs out of room.
func (b *NullBufferBuilder) AppendValid(isValid bool) {
	if b.finished {
		panic("array: AppendValid called after NullBufferBuilder.Finish")
	}
	if b.buf == nil {
		b.buf = memory.NewResizableBuffer(b.mem)
		b.buf.Resize(8)
		memory.Set(b.buf.Buf(), 0)
	}
	needBytes := bitutil.CeilByte(b.length+1) / 8
	if needBytes > b.buf.Len() {
		grown := bitutil.NextPowerOf2(needBytes)
		old := b.buf.Len()
		b.buf.Resize(grown)
		memory.Set(b.buf.Buf()[old:], 0)
	}
	bitutil.SetBitTo(b.buf.Buf(), b.length, isValid)
	if !isValid {
		b.nullCount++
	}
	b.length++
}

// Finish flushes and elides per §4.1: AllValid when nullCount==0, AllNull
// when nullCount==length, otherwise a 64-byte aligned BitPacked buffer.
// Calling Finish twice is a programmer error.
func (b *NullBufferBuilder) Finish() NullBuffer {
	if b.finished {
		panic("array: NullBufferBuilder.Finish called twice")
	}
	b.finished = true
	n := b.length
	switch {
	case n == 0:
		return AllValid(0)
	case b.nullCount == 0:
		if b.buf != nil {
			b.buf.Release()
		}
		return AllValid(n)
	case b.nullCount == n:
		if b.buf != nil {
			b.buf.Release()
		}
		return AllNull(n)
	default:
		byteLen := bitutil.CeilByte(n) / 8
		final := memory.NewResizableBuffer(b.mem)
		final.Resize(int(bitutil.CeilByte64(int64(byteLen))))
		copy(final.Buf(), b.buf.Bytes()[:byteLen])
		b.buf.Release()
		final.Resize(byteLen)
		return &bitPackedBuffer{buf: final, n: n, nullCount: b.nullCount}
	}
}

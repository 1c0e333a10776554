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

package memory_test

import (
	"testing"
	"unsafe"

	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAllocatorAlignment(t *testing.T) {
	alloc := memory.NewGoAllocator()
	for _, size := range []int{0, 1, 63, 64, 65, 1000} {
		b := alloc.Allocate(size)
		if len(b) > 0 {
			addr := uintptr(unsafe.Pointer(&b[0]))
			assert.Zero(t, addr%memory.Alignment, "data pointer not 64-byte aligned for size %d", size)
		}
		assert.Zero(t, cap(b)%memory.Alignment, "capacity not a multiple of 64 for size %d", size)
	}
}

func TestResizableBufferGrowsAndZeroes(t *testing.T) {
	buf := memory.NewResizableBuffer(memory.NewGoAllocator())
	defer buf.Release()

	buf.Resize(4)
	copy(buf.Buf(), []byte{1, 2, 3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())

	buf.Resize(8)
	assert.Equal(t, 8, buf.Len())
	assert.Equal(t, byte(0), buf.Bytes()[7], "grown region must be zero-padded")
	assert.Zero(t, cap(buf.Buf())%memory.Alignment)
}

func TestReserveThenResizePreservesCapacity(t *testing.T) {
	buf := memory.NewResizableBuffer(memory.NewGoAllocator())
	defer buf.Release()

	buf.Reserve(256)
	capAfterReserve := cap(buf.Buf())
	buf.Resize(10)
	assert.Equal(t, 10, buf.Len())
	assert.Equal(t, capAfterReserve, cap(buf.Buf()), "Resize within reserved capacity must not reallocate")
}

func TestBufferRetainRelease(t *testing.T) {
	buf := memory.NewResizableBuffer(memory.NewGoAllocator())
	buf.Resize(4)
	buf.Retain()
	buf.Release()
	// still alive: one more release below should be the final one.
	assert.NotPanics(t, func() { buf.Release() })
}

func TestNewBufferBytesIsBorrowedAndNeverFreed(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	buf := memory.NewBufferBytes(data)
	require.Equal(t, data, buf.Bytes())
	buf.Release()
	// Release on a borrowed buffer must not touch the backing slice.
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, data)
}

func TestResizeOnBorrowedBufferPanics(t *testing.T) {
	buf := memory.NewBufferBytes([]byte{1, 2, 3})
	assert.Panics(t, func() { buf.Resize(10) })
}

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

package bitutil_test

import (
	"testing"

	"github.com/colarrow/colarrow/go/arrow/bitutil"
	"github.com/stretchr/testify/assert"
)

func TestSetBitClearBit(t *testing.T) {
	bits := make([]byte, 2)
	bitutil.SetBit(bits, 3)
	bitutil.SetBit(bits, 15)
	assert.True(t, bitutil.BitIsSet(bits, 3))
	assert.True(t, bitutil.BitIsSet(bits, 15))
	assert.False(t, bitutil.BitIsSet(bits, 4))

	bitutil.ClearBit(bits, 3)
	assert.False(t, bitutil.BitIsSet(bits, 3))
	assert.True(t, bitutil.BitIsSet(bits, 15))
}

func TestSetBitTo(t *testing.T) {
	bits := make([]byte, 1)
	bitutil.SetBitTo(bits, 0, true)
	bitutil.SetBitTo(bits, 1, false)
	assert.True(t, bitutil.BitIsSet(bits, 0))
	assert.False(t, bitutil.BitIsSet(bits, 1))
}

func TestCeilByte(t *testing.T) {
	cases := map[int]int{0: 0, 1: 8, 7: 8, 8: 8, 9: 16}
	for in, want := range cases {
		assert.Equal(t, want, bitutil.CeilByte(in), "CeilByte(%d)", in)
	}
}

func TestBytesForBits(t *testing.T) {
	assert.Equal(t, int64(0), bitutil.BytesForBits(0))
	assert.Equal(t, int64(1), bitutil.BytesForBits(1))
	assert.Equal(t, int64(1), bitutil.BytesForBits(8))
	assert.Equal(t, int64(2), bitutil.BytesForBits(9))
}

func TestCeilByte64(t *testing.T) {
	assert.Equal(t, int64(0), bitutil.CeilByte64(0))
	assert.Equal(t, int64(64), bitutil.CeilByte64(1))
	assert.Equal(t, int64(64), bitutil.CeilByte64(64))
	assert.Equal(t, int64(128), bitutil.CeilByte64(65))
}

func TestIsMultipleOf(t *testing.T) {
	assert.True(t, bitutil.IsMultipleOf8(16))
	assert.False(t, bitutil.IsMultipleOf8(15))
	assert.True(t, bitutil.IsMultipleOf64(128))
	assert.False(t, bitutil.IsMultipleOf64(65))
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 64: 64, 65: 128}
	for in, want := range cases {
		assert.Equal(t, want, bitutil.NextPowerOf2(in), "NextPowerOf2(%d)", in)
	}
}

func TestPaddedLength(t *testing.T) {
	assert.Equal(t, int64(64), bitutil.PaddedLength(1, 64))
	assert.Equal(t, int64(64), bitutil.PaddedLength(64, 64))
	assert.Equal(t, int64(128), bitutil.PaddedLength(65, 64))
	assert.Equal(t, int64(5), bitutil.PaddedLength(5, 0))
}

func TestCountSetBits(t *testing.T) {
	bits := make([]byte, 2)
	for _, i := range []int{0, 2, 4, 9, 15} {
		bitutil.SetBit(bits, i)
	}
	assert.Equal(t, 5, bitutil.CountSetBits(bits, 0, 16))
	assert.Equal(t, 3, bitutil.CountSetBits(bits, 0, 5))
	assert.Equal(t, 2, bitutil.CountSetBits(bits, 5, 11))
}

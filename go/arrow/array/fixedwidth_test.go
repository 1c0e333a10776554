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

package array_test

import (
	"testing"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInt32s(t *testing.T, values []int32, valid []bool) *array.FixedWidthArray[int32] {
	t.Helper()
	b := array.NewFixedWidthBuilder[int32](memory.NewGoAllocator(), arrow.Int32Type)
	for i, v := range values {
		if valid != nil && !valid[i] {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	return b.Finish()
}

func TestFixedWidthBuilderRoundTrip(t *testing.T) {
	a := buildInt32s(t, []int32{1, 2, 3, 4, 5}, nil)
	defer a.Release()

	require.Equal(t, 5, a.Len())
	assert.Equal(t, 0, a.NullN())
	for i, want := range []int32{1, 2, 3, 4, 5} {
		v, ok := a.Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
}

func TestFixedWidthBuilderNulls(t *testing.T) {
	a := buildInt32s(t, []int32{1, 0, 3, 0, 5}, []bool{true, false, true, false, true})
	defer a.Release()

	assert.Equal(t, 2, a.NullN())
	for i, wantValid := range []bool{true, false, true, false, true} {
		_, ok := a.Get(i)
		assert.Equal(t, wantValid, ok, "index %d", i)
	}
}

func TestFixedWidthSliceIsZeroCopy(t *testing.T) {
	a := buildInt32s(t, []int32{10, 20, 30, 40, 50}, nil)
	defer a.Release()

	s := a.Slice(1, 3)
	defer s.Release()

	require.Equal(t, 3, s.Len())
	for i, want := range []int32{20, 30, 40} {
		v, _ := s.Get(i)
		assert.Equal(t, want, v)
	}

	// mutating the original's backing bytes must be visible through the
	// slice, proving no copy happened.
	raw := a.Buffers()[1]
	raw[1*4] = 0xFF
	v0, _ := s.Get(0)
	assert.NotEqual(t, int32(20), v0)
}

func TestFixedWidthBuffersAreOffsetZeroed(t *testing.T) {
	a := buildInt32s(t, []int32{1, 2, 3, 4}, nil)
	defer a.Release()
	s := a.Slice(2, 2)
	defer s.Release()

	bufs := s.Buffers()
	values := bufs[1]
	require.Len(t, values, 2*4)
	assert.Equal(t, int32(3), int32(values[0])|int32(values[1])<<8|int32(values[2])<<16|int32(values[3])<<24)
}

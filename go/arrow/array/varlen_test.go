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

	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringBuilderRoundTrip(t *testing.T) {
	b := array.NewStringBuilder(memory.NewGoAllocator())
	b.Append("")
	b.Append("foo")
	b.AppendNull()
	b.Append("bazinga")
	a := b.Finish()
	defer a.Release()

	require.Equal(t, 4, a.Len())
	assert.Equal(t, 1, a.NullN())

	s0, ok := a.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "", s0)

	s1, _ := a.Get(1)
	assert.Equal(t, "foo", s1)

	_, ok2 := a.Get(2)
	assert.False(t, ok2)

	s3, _ := a.Get(3)
	assert.Equal(t, "bazinga", s3)
}

func TestStringSlicePreservesOffsets(t *testing.T) {
	b := array.NewStringBuilder(memory.NewGoAllocator())
	for _, s := range []string{"aa", "bbb", "c", "dddd"} {
		b.Append(s)
	}
	a := b.Finish()
	defer a.Release()

	s := a.Slice(1, 2)
	defer s.Release()

	require.Equal(t, 2, s.Len())
	v0, _ := s.Get(0)
	v1, _ := s.Get(1)
	assert.Equal(t, "bbb", v0)
	assert.Equal(t, "c", v1)
}

func TestBinaryBuilderRoundTrip(t *testing.T) {
	b := array.NewBinaryBuilder(memory.NewGoAllocator())
	b.Append([]byte{0x01, 0x02})
	b.AppendNull()
	b.Append([]byte{})
	a := b.Finish()
	defer a.Release()

	v0, ok0 := a.Get(0)
	assert.True(t, ok0)
	assert.Equal(t, []byte{0x01, 0x02}, v0)

	_, ok1 := a.Get(1)
	assert.False(t, ok1)

	v2, ok2 := a.Get(2)
	assert.True(t, ok2)
	assert.Equal(t, []byte{}, v2)
}

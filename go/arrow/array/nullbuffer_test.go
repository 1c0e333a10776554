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
)

func TestNullBufferBuilderElidesAllValid(t *testing.T) {
	b := array.NewNullBufferBuilder(memory.NewGoAllocator())
	for i := 0; i < 10; i++ {
		b.AppendValid(true)
	}
	nulls := b.Finish()
	assert.Equal(t, 0, nulls.NullCount())
	assert.Nil(t, array.ExportValidity(nulls), "all-valid buffers must elide storage")
}

func TestNullBufferBuilderElidesAllNull(t *testing.T) {
	b := array.NewNullBufferBuilder(memory.NewGoAllocator())
	for i := 0; i < 10; i++ {
		b.AppendValid(false)
	}
	nulls := b.Finish()
	assert.Equal(t, 10, nulls.NullCount())
	assert.Nil(t, array.ExportValidity(nulls), "all-null buffers must elide storage")
}

func TestNullBufferBuilderEmptyIsAllValid(t *testing.T) {
	b := array.NewNullBufferBuilder(memory.NewGoAllocator())
	nulls := b.Finish()
	assert.Equal(t, 0, nulls.Len())
	assert.Equal(t, 0, nulls.NullCount())
}

func TestNullBufferBuilderMixedIsBitPacked(t *testing.T) {
	b := array.NewNullBufferBuilder(memory.NewGoAllocator())
	valid := []bool{true, false, true, true, false, false, true, false, true}
	for _, v := range valid {
		b.AppendValid(v)
	}
	nulls := b.Finish()
	wantNulls := 0
	for i, v := range valid {
		assert.Equal(t, v, nulls.IsSet(i), "bit %d", i)
		if !v {
			wantNulls++
		}
	}
	assert.Equal(t, wantNulls, nulls.NullCount())
	assert.NotNil(t, array.ExportValidity(nulls))
}

func TestNullBufferSliceTracksNullCount(t *testing.T) {
	b := array.NewNullBufferBuilder(memory.NewGoAllocator())
	for _, v := range []bool{true, false, true, false, true} {
		b.AppendValid(v)
	}
	nulls := b.Finish()
	sliced := nulls.Slice(1, 3)
	defer sliced.Release()
	assert.Equal(t, 3, sliced.Len())
	assert.Equal(t, 2, sliced.NullCount())
	assert.False(t, sliced.IsSet(0))
	assert.True(t, sliced.IsSet(1))
	assert.False(t, sliced.IsSet(2))
}

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

// TestBinaryViewInlineAndReferencedMix builds a mix of inline (<=12 byte)
// and referenced (>12 byte) views and checks the buffer layout: one data
// buffer holding only the referenced values, three buffers total (validity,
// views, data), a single null, and a prefix on each referenced view matching
// the first 4 bytes of its value.
func TestBinaryViewInlineAndReferencedMix(t *testing.T) {
	b := array.NewStringViewBuilder(memory.NewGoAllocator())
	values := []interface{}{
		"short",                // 5B, inline
		"this is much longer",  // 19B, referenced
		"tiny",                 // 4B, inline
		nil,                    // null
		"123456789012",         // 12B, inline (boundary)
		"1234567890123",        // 13B, referenced
	}
	for _, v := range values {
		b.AppendValue(v)
	}
	a := b.Finish()
	defer a.Release()

	require.Equal(t, 6, a.Len())
	assert.Equal(t, 1, a.NullN())

	bufs := a.Buffers()
	require.Len(t, bufs, 3, "validity + views + one data buffer")
	require.Len(t, a.DataBuffers(), 1)

	for i, v := range values {
		if v == nil {
			assert.True(t, a.IsNull(i))
			continue
		}
		want := v.(string)
		got, ok := a.Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, string(got))
	}

	views := bufs[1]
	for _, i := range []int{1, 5} {
		word := views[i*16 : (i+1)*16]
		prefix := word[4:8]
		want := values[i].(string)
		assert.Equal(t, want[:4], string(prefix), "referenced view prefix must match value start")
	}
}

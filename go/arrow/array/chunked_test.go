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
	"math/rand"
	"testing"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChunkedArrayRandomAccess builds 20 chunks totalling 10,000 i32?
// values with scattered nulls, then checks 5,000 random logical indices
// against a flat reference slice built alongside the chunks.
func TestChunkedArrayRandomAccess(t *testing.T) {
	const numChunks = 20
	const total = 10000

	mem := memory.NewGoAllocator()
	rng := rand.New(rand.NewSource(1))

	want := make([]*int32, 0, total)
	chunks := make([]arrow.Array, 0, numChunks)
	remaining := total
	for c := 0; c < numChunks; c++ {
		size := remaining / (numChunks - c)
		if c == numChunks-1 {
			size = remaining
		}
		remaining -= size

		b := array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type)
		for i := 0; i < size; i++ {
			if rng.Intn(7) == 0 {
				b.AppendNull()
				want = append(want, nil)
				continue
			}
			v := int32(len(want))
			b.Append(v)
			want = append(want, &v)
		}
		chunks = append(chunks, b.Finish())
	}
	require.Len(t, want, total)

	chunked, err := array.NewChunkedArray(arrow.Int32Type, chunks)
	require.NoError(t, err)
	defer chunked.Release()
	for _, c := range chunks {
		c.Release()
	}

	require.Equal(t, total, chunked.Len())
	require.Equal(t, numChunks, chunked.NumChunks())

	field := arrow.Field{Name: "v", Type: arrow.Int32Type, Nullable: true}
	col, err := array.NewColumn(field, chunked)
	require.NoError(t, err)
	defer col.Release()
	require.Equal(t, int64(total), int64(col.Len()))

	schema := arrow.NewSchema([]arrow.Field{field}, nil)
	table, err := array.NewTable(schema, []*array.Column{col})
	require.NoError(t, err)
	defer table.Release()
	require.Equal(t, int64(total), table.NumRows())

	for n := 0; n < 5000; n++ {
		i := rng.Intn(total)
		arr, off := chunked.At(i)
		fw := arr.(*array.FixedWidthArray[int32])
		if want[i] == nil {
			assert.True(t, fw.IsNull(off), "index %d expected null", i)
			continue
		}
		v, ok := fw.Get(off)
		assert.True(t, ok, "index %d expected non-null", i)
		assert.Equal(t, *want[i], v, "index %d value mismatch", i)
	}
}

func TestMapBuilderRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()
	dtype := arrow.MapOf(
		arrow.Field{Name: "key", Type: arrow.StringType, Nullable: false},
		arrow.Field{Name: "value", Type: arrow.Int32Type, Nullable: true},
		false,
	)
	mb := array.NewMapBuilder(mem, dtype, array.NewStringBuilder(mem), array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type))

	mb.Append([]interface{}{"a", "b"}, []interface{}{int32(1), int32(2)})
	mb.AppendNull()
	mb.Append([]interface{}{"c"}, []interface{}{int32(3)})

	m := mb.Finish()
	defer m.Release()

	require.Equal(t, 3, m.Len())
	assert.Equal(t, 1, m.NullN())
	assert.True(t, m.IsNull(1))

	entries0, ok := m.Entries(0)
	require.True(t, ok)
	require.Equal(t, 2, entries0.Len())

	entries2, ok := m.Entries(2)
	require.True(t, ok)
	require.Equal(t, 1, entries2.Len())
}

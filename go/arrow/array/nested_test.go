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

func TestListBuilderRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()
	elemField := arrow.Field{Name: "item", Type: arrow.Int32Type, Nullable: true}
	b := array.NewListBuilder(mem, elemField, array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type))

	b.Append(func(child array.Builder) {
		child.AppendValue(int32(1))
		child.AppendValue(int32(2))
	})
	b.AppendNull()
	b.Append(func(child array.Builder) {
		child.AppendValue(int32(3))
	})

	lst := b.Finish()
	defer lst.Release()

	require.Equal(t, 3, lst.Len())
	assert.Equal(t, 1, lst.NullN())

	row0, ok0 := lst.Get(0)
	require.True(t, ok0)
	row0Arr := row0.(*array.FixedWidthArray[int32])
	assert.Equal(t, 2, row0Arr.Len())
	v0, _ := row0Arr.Get(0)
	v1, _ := row0Arr.Get(1)
	assert.Equal(t, int32(1), v0)
	assert.Equal(t, int32(2), v1)
	row0.Release()

	_, ok1 := lst.Get(1)
	assert.False(t, ok1)

	row2, ok2 := lst.Get(2)
	require.True(t, ok2)
	row2Arr := row2.(*array.FixedWidthArray[int32])
	assert.Equal(t, 1, row2Arr.Len())
	v2, _ := row2Arr.Get(0)
	assert.Equal(t, int32(3), v2)
	row2.Release()
}

func TestStructBuilderRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()
	dtype := arrow.StructOf(
		arrow.Field{Name: "id", Type: arrow.Int64Type, Nullable: false},
		arrow.Field{Name: "name", Type: arrow.StringType, Nullable: true},
	)
	b := array.NewStructBuilder(mem, dtype, []array.Builder{
		array.NewFixedWidthBuilder[int64](mem, arrow.Int64Type),
		array.NewStringBuilder(mem),
	})

	b.Append(map[string]interface{}{"id": int64(1), "name": "alice"})
	b.Append(map[string]interface{}{"id": int64(2)})

	st := b.Finish()
	defer st.Release()

	require.Equal(t, 2, st.Len())
	ids := st.Field(0).(*array.FixedWidthArray[int64])
	defer ids.Release()
	names := st.Field(1).(*array.String)
	defer names.Release()

	id0, _ := ids.Get(0)
	assert.Equal(t, int64(1), id0)
	name0, ok0 := names.Get(0)
	assert.True(t, ok0)
	assert.Equal(t, "alice", name0)

	_, ok1 := names.Get(1)
	assert.False(t, ok1, "missing key must append null to that field's builder")
}

func TestRecordValidatesColumnShape(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.Int32Type, Nullable: false},
	}, nil)

	b := array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type)
	b.AppendNull()
	col := b.Finish()
	defer col.Release()

	_, err := array.NewRecord(schema, []arrow.Array{col}, 1)
	require.Error(t, err)
	assert.True(t, arrow.IsKind(err, arrow.NullabilityViolation))
}

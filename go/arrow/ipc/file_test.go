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

package ipc_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/ipc"
	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPrimitiveRecord(t *testing.T) *array.Record {
	t.Helper()
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.Int64Type, Nullable: false},
		{Name: "score", Type: arrow.Float64Type, Nullable: true},
		{Name: "name", Type: arrow.StringType, Nullable: true},
	}, nil)

	idB := array.NewFixedWidthBuilder[int64](mem, arrow.Int64Type)
	scoreB := array.NewFixedWidthBuilder[float64](mem, arrow.Float64Type)
	nameB := array.NewStringBuilder(mem)

	for i := 0; i < 5; i++ {
		idB.Append(int64(i))
		if i == 2 {
			scoreB.AppendNull()
		} else {
			scoreB.Append(float64(i) * 1.5)
		}
		if i == 4 {
			nameB.AppendNull()
		} else {
			nameB.Append([]string{"a", "bb", "ccc", "dddd", ""}[i])
		}
	}

	cols := []arrow.Array{idB.Finish(), scoreB.Finish(), nameB.Finish()}
	rec, err := array.NewRecord(schema, cols, 5)
	require.NoError(t, err)
	return rec
}

func TestFileWriterReaderRoundTripPrimitive(t *testing.T) {
	rec := buildPrimitiveRecord(t)
	defer rec.Release()

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, rec.Schema())
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())

	r, err := ipc.NewFileReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, r.NumRecords())
	assert.True(t, rec.Schema().Equal(r.Schema()))

	got, err := r.RecordAt(0)
	require.NoError(t, err)
	defer got.Release()

	require.Equal(t, rec.NumRows(), got.NumRows())
	ids := got.Column(0).(*array.FixedWidthArray[int64])
	for i := 0; i < 5; i++ {
		v, ok := ids.Get(i)
		assert.True(t, ok)
		assert.Equal(t, int64(i), v)
	}

	scores := got.Column(1).(*array.FixedWidthArray[float64])
	_, ok := scores.Get(2)
	assert.False(t, ok, "null score must round-trip as null")
	v0, _ := scores.Get(0)
	assert.Equal(t, float64(0), v0)

	names := got.Column(2).(*array.String)
	_, okName := names.Get(4)
	assert.False(t, okName)
	n0, _ := names.Get(0)
	assert.Equal(t, "a", n0)
}

func TestFileWriterReaderRoundTripAllValidAndAllNull(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "allvalid", Type: arrow.Int32Type, Nullable: false},
		{Name: "allnull", Type: arrow.Int32Type, Nullable: true},
	}, nil)

	validB := array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type)
	nullB := array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type)
	for i := 0; i < 4; i++ {
		validB.Append(int32(i))
		nullB.AppendNull()
	}
	rec, err := array.NewRecord(schema, []arrow.Array{validB.Finish(), nullB.Finish()}, 4)
	require.NoError(t, err)
	defer rec.Release()

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, schema)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())

	r, err := ipc.NewFileReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	got, err := r.RecordAt(0)
	require.NoError(t, err)
	defer got.Release()

	assert.Equal(t, 0, got.Column(0).NullN())
	assert.Equal(t, 4, got.Column(1).NullN())
}

func TestFileWriterReaderRoundTripNestedListAndStruct(t *testing.T) {
	mem := memory.NewGoAllocator()
	elemField := arrow.Field{Name: "item", Type: arrow.Int32Type, Nullable: true}
	listType := arrow.ListOf(elemField)
	structType := arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.Int32Type, Nullable: false},
		arrow.Field{Name: "y", Type: arrow.StringType, Nullable: true},
	)

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "nums", Type: listType, Nullable: true},
		{Name: "point", Type: structType, Nullable: false},
	}, nil)

	lb := array.NewListBuilder(mem, elemField, array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type))
	lb.Append(func(child array.Builder) {
		child.AppendValue(int32(1))
		child.AppendValue(int32(2))
	})
	lb.AppendNull()
	listArr := lb.Finish()

	sb := array.NewStructBuilder(mem, structType, []array.Builder{
		array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type),
		array.NewStringBuilder(mem),
	})
	sb.Append(map[string]interface{}{"x": int32(7), "y": "hi"})
	sb.Append(map[string]interface{}{"x": int32(8)})
	structArr := sb.Finish()

	rec, err := array.NewRecord(schema, []arrow.Array{listArr, structArr}, 2)
	require.NoError(t, err)
	defer rec.Release()

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, schema)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())

	r, err := ipc.NewFileReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	got, err := r.RecordAt(0)
	require.NoError(t, err)
	defer got.Release()

	gotList := got.Column(0).(*array.List)
	row0, ok0 := gotList.Get(0)
	require.True(t, ok0)
	row0Arr := row0.(*array.FixedWidthArray[int32])
	v0, _ := row0Arr.Get(0)
	v1, _ := row0Arr.Get(1)
	assert.Equal(t, int32(1), v0)
	assert.Equal(t, int32(2), v1)
	row0.Release()
	_, ok1 := gotList.Get(1)
	assert.False(t, ok1)

	gotStruct := got.Column(1).(*array.Struct)
	xs := gotStruct.Field(0).(*array.FixedWidthArray[int32])
	defer xs.Release()
	ys := gotStruct.Field(1).(*array.String)
	defer ys.Release()
	x0, _ := xs.Get(0)
	assert.Equal(t, int32(7), x0)
	y0, _ := ys.Get(0)
	assert.Equal(t, "hi", y0)
	_, okY1 := ys.Get(1)
	assert.False(t, okY1)
}

func TestFileReaderMultipleRecordBatches(t *testing.T) {
	rec1 := buildPrimitiveRecord(t)
	defer rec1.Release()
	rec2 := buildPrimitiveRecord(t)
	defer rec2.Release()

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, rec1.Schema())
	require.NoError(t, w.Write(rec1))
	require.NoError(t, w.Write(rec2))
	require.NoError(t, w.Close())

	r, err := ipc.NewFileReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, r.NumRecords())

	for i := 0; i < 2; i++ {
		got, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.NumRows())
		got.Release()
	}
	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

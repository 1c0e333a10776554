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
	"bytes"
	"testing"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/ipc"
	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanBuilderRoundTrip(t *testing.T) {
	b := array.NewBooleanBuilder(memory.NewGoAllocator())
	b.Append(true)
	b.AppendNull()
	b.Append(false)
	a := b.Finish()
	defer a.Release()

	require.Equal(t, 3, a.Len())
	assert.Equal(t, 1, a.NullN())

	v0, ok0 := a.Get(0)
	assert.True(t, ok0)
	assert.True(t, v0)

	_, ok1 := a.Get(1)
	assert.False(t, ok1)

	v2, ok2 := a.Get(2)
	assert.True(t, ok2)
	assert.False(t, v2)
}

// TestBooleanStringIPCRoundTrip writes a {bool?, utf8?} record to an IPC
// file and reads it back, checking values and null counts survive the
// round trip unchanged.
func TestBooleanStringIPCRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "one", Type: arrow.BooleanType, Nullable: true},
		{Name: "two", Type: arrow.StringType, Nullable: true},
	}, nil)

	bb := array.NewBooleanBuilder(mem)
	for _, v := range []interface{}{true, false, nil, false, true} {
		if v == nil {
			bb.AppendNull()
			continue
		}
		bb.Append(v.(bool))
	}

	sb := array.NewStringBuilder(mem)
	for _, s := range []string{"zero", "one", "two", "three", "four"} {
		sb.Append(s)
	}

	one := bb.Finish()
	two := sb.Finish()
	defer one.Release()
	defer two.Release()

	rec, err := array.NewRecord(schema, []arrow.Array{one, two}, 5)
	require.NoError(t, err)
	defer rec.Release()

	require.Equal(t, 1, one.NullN())
	require.Equal(t, 0, two.NullN())

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, schema)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())

	r, err := ipc.NewFileReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 1, r.NumRecords())
	got, err := r.RecordAt(0)
	require.NoError(t, err)
	defer got.Release()

	require.Equal(t, int64(5), got.NumRows())
	gotOne := got.Column(0).(*array.Boolean)
	gotTwo := got.Column(1).(*array.String)

	assert.Equal(t, 1, gotOne.NullN())
	assert.Equal(t, 0, gotTwo.NullN())

	want := []interface{}{true, false, nil, false, true}
	for i, w := range want {
		if w == nil {
			assert.True(t, gotOne.IsNull(i))
			continue
		}
		v, ok := gotOne.Get(i)
		assert.True(t, ok)
		assert.Equal(t, w, v)
	}

	wantStrs := []string{"zero", "one", "two", "three", "four"}
	for i, w := range wantStrs {
		v, ok := gotTwo.Get(i)
		assert.True(t, ok)
		assert.Equal(t, w, v)
	}
}

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

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/ipc"
	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, rec *array.Record) string {
	t.Helper()
	f, err := os.CreateTemp("", "colarrow-cat-")
	require.NoError(t, err)
	defer f.Close()

	w := ipc.NewWriter(f, rec.Schema())
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	return f.Name()
}

func TestProcessFilePrimitives(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "ints", Type: arrow.Int32Type, Nullable: true},
		{Name: "strs", Type: arrow.StringType, Nullable: true},
	}, nil)

	ib := array.NewFixedWidthBuilder[int32](mem, arrow.Int32Type)
	sb := array.NewStringBuilder(mem)
	ib.Append(int32(1))
	sb.Append("a")
	ib.AppendNull()
	sb.AppendNull()
	ib.Append(int32(3))
	sb.Append("c")

	rec, err := array.NewRecord(schema, []arrow.Array{ib.Finish(), sb.Finish()}, 3)
	require.NoError(t, err)
	defer rec.Release()

	fname := writeTempFile(t, rec)
	defer os.Remove(fname)

	var buf bytes.Buffer
	require.NoError(t, processFile(&buf, fname))

	want := "record 1/1...\n" +
		"  col[0] \"ints\": [1 (null) 3]\n" +
		"  col[1] \"strs\": [\"a\" (null) \"c\"]\n"
	require.Equal(t, want, buf.String())
}

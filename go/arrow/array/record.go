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

package array

import (
	"sync/atomic"

	"github.com/colarrow/colarrow/go/arrow"
)

// Record is the concrete arrow.Record: a schema plus one array per field,
// all sharing a common logical length (spec §3.2). NewRecord below enforces
// the RecordBatch invariant: arrays.len == fields.len, all
// arrays the same length, each array's type matching its field's type, and
// no non-nullable field bound to an array with a non-zero null count.
type Record struct {
	refCount int64
	schema   *arrow.Schema
	cols     []arrow.Array
	numRows  int64
}

// NewRecord validates and constructs a Record. Mismatches are recoverable
// errors (spec §7: InvalidArgument, NullabilityViolation), never panics,
// since a caller may be validating IPC input.
func NewRecord(schema *arrow.Schema, cols []arrow.Array, numRows int64) (*Record, error) {
	if len(cols) != schema.NumFields() {
		return nil, arrow.NewError(arrow.InvalidArgument, "array: record has %d columns, schema has %d fields", len(cols), schema.NumFields())
	}
	for i, c := range cols {
		f := schema.Field(i)
		if int64(c.Len()) != numRows {
			return nil, arrow.NewError(arrow.InvalidArgument, "array: record column %d (%q) has length %d, want %d", i, f.Name, c.Len(), numRows)
		}
		if !arrow.TypeEqual(c.DataType(), f.Type) {
			return nil, arrow.NewError(arrow.InvalidArgument, "array: record column %d (%q) type %s does not match field type %s", i, f.Name, c.DataType(), f.Type)
		}
		if !f.Nullable && c.NullN() != 0 {
			return nil, arrow.NewError(arrow.NullabilityViolation, "array: record column %d (%q) is non-nullable but has %d nulls", i, f.Name, c.NullN())
		}
	}
	for _, c := range cols {
		c.Retain()
	}
	return &Record{refCount: 1, schema: schema, cols: cols, numRows: numRows}, nil
}

func (r *Record) Schema() *arrow.Schema    { return r.schema }
func (r *Record) Columns() []arrow.Array   { return r.cols }
func (r *Record) Column(i int) arrow.Array { return r.cols[i] }
func (r *Record) ColumnName(i int) string  { return r.schema.Field(i).Name }
func (r *Record) NumCols() int64           { return int64(len(r.cols)) }
func (r *Record) NumRows() int64           { return r.numRows }

func (r *Record) Retain() { atomic.AddInt64(&r.refCount, 1) }
func (r *Record) Release() {
	if atomic.AddInt64(&r.refCount, -1) == 0 {
		for _, c := range r.cols {
			c.Release()
		}
	}
}

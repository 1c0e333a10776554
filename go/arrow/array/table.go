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

// Column is {field, data: ChunkedArray} (spec §3.2).
type Column struct {
	field arrow.Field
	data  *ChunkedArray
}

// NewColumn validates that data's type matches field's declared type before
// pairing them.
func NewColumn(field arrow.Field, data *ChunkedArray) (*Column, error) {
	if !arrow.TypeEqual(data.DataType(), field.Type) {
		return nil, arrow.NewError(arrow.InvalidArgument, "array: column %q data type %s does not match field type %s", field.Name, data.DataType(), field.Type)
	}
	data.Retain()
	return &Column{field: field, data: data}, nil
}

func (c *Column) Field() arrow.Field    { return c.field }
func (c *Column) Data() *ChunkedArray   { return c.data }
func (c *Column) Len() int              { return c.data.Len() }
func (c *Column) Retain()               { c.data.Retain() }
func (c *Column) Release()              { c.data.Release() }

// Table is {schema, columns}: every column must share the same total length
// (spec §3.2).
type Table struct {
	refCount int64
	schema   *arrow.Schema
	cols     []*Column
	numRows  int64
}

// NewTable validates schema/column arity and per-column field equality,
// plus that every column shares the same total length, and constructs a
// Table. All mismatches are recoverable InvalidArgument errors (spec §7).
func NewTable(schema *arrow.Schema, cols []*Column) (*Table, error) {
	if len(cols) != schema.NumFields() {
		return nil, arrow.NewError(arrow.InvalidArgument, "array: table has %d columns, schema has %d fields", len(cols), schema.NumFields())
	}
	var numRows int64 = -1
	for i, c := range cols {
		f := schema.Field(i)
		if !c.field.Equal(f) {
			return nil, arrow.NewError(arrow.InvalidArgument, "array: table column %d (%q) does not match schema field %q", i, c.field.Name, f.Name)
		}
		if numRows == -1 {
			numRows = int64(c.Len())
		} else if int64(c.Len()) != numRows {
			return nil, arrow.NewError(arrow.InvalidArgument, "array: table column %d (%q) has length %d, want %d", i, f.Name, c.Len(), numRows)
		}
	}
	if numRows == -1 {
		numRows = 0
	}
	for _, c := range cols {
		c.Retain()
	}
	return &Table{refCount: 1, schema: schema, cols: cols, numRows: numRows}, nil
}

func (t *Table) Schema() *arrow.Schema { return t.schema }
func (t *Table) Column(i int) *Column  { return t.cols[i] }
func (t *Table) NumCols() int          { return len(t.cols) }
func (t *Table) NumRows() int64        { return t.numRows }

func (t *Table) Retain() { atomic.AddInt64(&t.refCount, 1) }
func (t *Table) Release() {
	if atomic.AddInt64(&t.refCount, -1) == 0 {
		for _, c := range t.cols {
			c.Release()
		}
	}
}

// TableFromRecords concatenates a sequence of same-schema RecordBatches
// into a Table, one ChunkedArray column per field built from each batch's
// matching array (spec §3.2 write-side convenience, mirrored on
// array.NewTableFromRecords in the wider Arrow ecosystem).
func TableFromRecords(schema *arrow.Schema, recs []*Record) (*Table, error) {
	cols := make([]*Column, schema.NumFields())
	for i, f := range schema.Fields() {
		chunks := make([]arrow.Array, len(recs))
		for j, r := range recs {
			chunks[j] = r.Column(i)
		}
		chunked, err := NewChunkedArray(f.Type, chunks)
		if err != nil {
			return nil, err
		}
		col, err := NewColumn(f, chunked)
		chunked.Release()
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return NewTable(schema, cols)
}

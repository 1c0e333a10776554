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

package arrow

// Array is the tagged-variant interface every concrete array kind in
// package array satisfies (spec §9 design note: a single tagged variant
// dispatches by variant rather than a class hierarchy).
type Array interface {
	// DataType is the logical ArrowType of this array.
	DataType() DataType
	// Len is the logical length (post-slice).
	Len() int
	// NullN is the number of null positions in [0, Len()).
	NullN() int
	// IsNull reports whether logical position i is null.
	IsNull(i int) bool
	// IsValid reports whether logical position i is non-null.
	IsValid(i int) bool
	// Offset is the absolute element offset into the shared buffers.
	Offset() int
	// BufferSizes enumerates physical buffer byte lengths in Arrow's
	// canonical order for the type (spec §4.3).
	BufferSizes() []int64
	// Buffers returns this array's own buffers (not its children's),
	// rebased to start at element/bit 0, in the same order as
	// BufferSizes (spec §4.5 IPC body encoding).
	Buffers() [][]byte
	// Retain/Release implement reference-counted buffer ownership
	// (spec §3.3, §5).
	Retain()
	Release()
}

// Record is a RecordBatch: {schema, arrays}, spec §3.2.
type Record interface {
	Schema() *Schema
	Columns() []Array
	Column(i int) Array
	ColumnName(i int) string
	NumCols() int64
	NumRows() int64
	Retain()
	Release()
}

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
	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/memory"
)

// Map is map(entry_field, keys_sorted): a thin wrapper over List of a
// non-nullable {key, value} struct (spec §3.1 invariant), so its wire
// representation reuses list's offsets/validity layout exactly.
type Map struct {
	*List
	dtype *arrow.MapType
}

func NewMap(dtype *arrow.MapType, offset, length int, nulls NullBuffer, offsets *memory.Buffer, entries *Struct) *Map {
	list := NewList(dtype.Entry(), offset, length, nulls, offsets, entries)
	return &Map{List: list, dtype: dtype}
}

func (a *Map) DataType() arrow.DataType { return a.dtype }

// Entries returns the flattened {key, value} struct array for element i.
func (a *Map) Entries(i int) (*Struct, bool) {
	v, ok := a.List.Get(i)
	if !ok {
		return nil, false
	}
	return v.(*Struct), true
}

func (a *Map) Slice(off, length int) *Map {
	return &Map{List: a.List.Slice(off, length), dtype: a.dtype}
}

// MapBuilder builds Map arrays atop a ListBuilder of the {key, value}
// struct (spec §4.2). Keys must be non-null (map key invariant); Append
// panics on a nil key.
type MapBuilder struct {
	*ListBuilder
	dtype       *arrow.MapType
	entryStruct *StructBuilder
}

func NewMapBuilder(mem memory.Allocator, dtype *arrow.MapType, keyBuilder, valueBuilder Builder) *MapBuilder {
	entryStruct := NewStructBuilder(mem, dtype.Entry().Type.(*arrow.StructType), []Builder{keyBuilder, valueBuilder})
	lb := NewListBuilder(mem, dtype.Entry(), entryStruct)
	return &MapBuilder{ListBuilder: lb, dtype: dtype, entryStruct: entryStruct}
}

func (b *MapBuilder) KeyBuilder() Builder   { return b.entryStruct.FieldBuilder(0) }
func (b *MapBuilder) ValueBuilder() Builder { return b.entryStruct.FieldBuilder(1) }

// Append appends one map row: keys and values must have equal length, keys
// must not contain nil (spec §3.1 map key invariant).
func (b *MapBuilder) Append(keys, values []interface{}) {
	if len(keys) != len(values) {
		panic("array: map keys and values must have equal length")
	}
	b.ListBuilder.Append(func(child Builder) {
		for i := range keys {
			if keys[i] == nil {
				panic("array: map keys must not be null")
			}
			b.entryStruct.Append(map[string]interface{}{
				b.dtype.KeyField().Name:   keys[i],
				b.dtype.ValueField().Name: values[i],
			})
		}
	})
}

// AppendValue accepts a struct{Keys, Values []interface{}} (nil appends a
// null map).
func (b *MapBuilder) AppendValue(v interface{}) {
	if v == nil {
		b.AppendNull()
		return
	}
	kv := v.(struct{ Keys, Values []interface{} })
	b.Append(kv.Keys, kv.Values)
}

func (b *MapBuilder) NewArray() arrow.Array { return b.Finish() }

func (b *MapBuilder) Finish() *Map {
	list := b.ListBuilder.Finish()
	return &Map{List: list, dtype: b.dtype}
}

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

import "fmt"

// Metadata is an ordered string->string map carried by fields and schemas.
type Metadata struct {
	keys   []string
	values []string
}

func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("arrow: metadata keys/values length mismatch")
	}
	return Metadata{keys: append([]string(nil), keys...), values: append([]string(nil), values...)}
}

func (m *Metadata) Len() int { return len(m.keys) }
func (m *Metadata) Keys() []string { return m.keys }
func (m *Metadata) Values() []string { return m.values }

func (m *Metadata) Get(key string) (string, bool) {
	for i, k := range m.keys {
		if k == key {
			return m.values[i], true
		}
	}
	return "", false
}

func (m Metadata) Equal(o Metadata) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i := range m.keys {
		if m.keys[i] != o.keys[i] || m.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// Field is {name, type, nullable, metadata} (spec §3.2).
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
	Metadata Metadata
}

func (f Field) String() string {
	nullable := ""
	if f.Nullable {
		nullable = "?"
	}
	return fmt.Sprintf("%s: %s%s", f.Name, f.Type, nullable)
}

func (f Field) Equal(o Field) bool {
	return f.Name == o.Name && typeEqual(f.Type, o.Type) && f.Nullable == o.Nullable
}

// Schema is an ordered sequence of fields plus optional metadata (spec §3.2).
// Field names need not be unique.
type Schema struct {
	fields   []Field
	metadata Metadata
	index    map[string][]int
}

func NewSchema(fields []Field, metadata *Metadata) *Schema {
	s := &Schema{fields: append([]Field(nil), fields...), index: make(map[string][]int, len(fields))}
	if metadata != nil {
		s.metadata = *metadata
	}
	for i, f := range s.fields {
		s.index[f.Name] = append(s.index[f.Name], i)
	}
	return s
}

func (s *Schema) Fields() []Field     { return s.fields }
func (s *Schema) Field(i int) Field   { return s.fields[i] }
func (s *Schema) NumFields() int      { return len(s.fields) }
func (s *Schema) Metadata() Metadata  { return s.metadata }

// FieldIndices returns every field index with the given name.
func (s *Schema) FieldIndices(name string) []int { return s.index[name] }

func (s *Schema) Equal(o *Schema) bool {
	if o == nil || len(s.fields) != len(o.fields) {
		return false
	}
	for i := range s.fields {
		if !s.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

func (s *Schema) String() string {
	out := "schema{"
	for i, f := range s.fields {
		if i > 0 {
			out += ", "
		}
		out += f.String()
	}
	return out + "}"
}

// TypeEqual performs a structural comparison of two DataType values,
// recursing into nested fields; used outside this package to validate a
// RecordBatch/ChunkedArray column's type against its declared field type.
func TypeEqual(a, b DataType) bool { return typeEqual(a, b) }

// typeEqual performs a structural comparison of two DataType values,
// recursing into nested fields.
func typeEqual(a, b DataType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID() != b.ID() {
		return false
	}
	switch at := a.(type) {
	case *FixedSizeBinaryType:
		return at.ByteWidth == b.(*FixedSizeBinaryType).ByteWidth
	case *Time32Type:
		return at.Unit == b.(*Time32Type).Unit
	case *Time64Type:
		return at.Unit == b.(*Time64Type).Unit
	case *TimestampType:
		bt := b.(*TimestampType)
		return at.Unit == bt.Unit && at.TimeZone == bt.TimeZone
	case *DurationType:
		return at.Unit == b.(*DurationType).Unit
	case *Decimal128Type:
		bt := b.(*Decimal128Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *Decimal256Type:
		bt := b.(*Decimal256Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *StructType:
		bt := b.(*StructType)
		if len(at.fields) != len(bt.fields) {
			return false
		}
		for i := range at.fields {
			if !at.fields[i].Equal(bt.fields[i]) {
				return false
			}
		}
		return true
	case *ListType:
		return at.elem.Equal(b.(*ListType).elem)
	case *LargeListType:
		return at.elem.Equal(b.(*LargeListType).elem)
	case *FixedSizeListType:
		bt := b.(*FixedSizeListType)
		return at.n == bt.n && at.elem.Equal(bt.elem)
	case *MapType:
		bt := b.(*MapType)
		return at.keysSorted == bt.keysSorted && at.entry.Equal(bt.entry)
	default:
		return true
	}
}

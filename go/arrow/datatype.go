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

// Type is the closed tag of the ArrowType sum (spec §3.1). DataType values
// dispatch on ID rather than on a Go type switch when only the tag matters
// (IPC type-code encoding, builder dispatch tables).
type Type int

const (
	INT8 Type = iota
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FLOAT16
	FLOAT32
	FLOAT64
	BOOL
	UTF8
	BINARY
	UTF8_VIEW
	BINARY_VIEW
	FIXED_SIZE_BINARY
	DATE32
	DATE64
	TIME32
	TIME64
	TIMESTAMP
	DURATION
	STRUCT
	LIST
	LARGE_LIST
	LARGE_UTF8
	LARGE_BINARY
	FIXED_SIZE_LIST
	MAP
	DECIMAL128
	DECIMAL256
)

var typeNames = map[Type]string{
	INT8: "int8", INT16: "int16", INT32: "int32", INT64: "int64",
	UINT8: "uint8", UINT16: "uint16", UINT32: "uint32", UINT64: "uint64",
	FLOAT16: "float16", FLOAT32: "float32", FLOAT64: "float64",
	BOOL: "bool", UTF8: "utf8", BINARY: "binary",
	UTF8_VIEW: "utf8_view", BINARY_VIEW: "binary_view",
	FIXED_SIZE_BINARY: "fixed_size_binary",
	DATE32:            "date32", DATE64: "date64",
	TIME32: "time32", TIME64: "time64",
	TIMESTAMP: "timestamp", DURATION: "duration",
	STRUCT: "struct", LIST: "list", LARGE_LIST: "large_list",
	LARGE_UTF8: "large_utf8", LARGE_BINARY: "large_binary",
	FIXED_SIZE_LIST: "fixed_size_list", MAP: "map",
	DECIMAL128: "decimal128", DECIMAL256: "decimal256",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// DataType is the common interface every ArrowType variant satisfies.
type DataType interface {
	ID() Type
	Name() string
	String() string
}

// FixedWidthDataType is satisfied by every variant whose values occupy a
// fixed number of bits per slot (spec §3.5 "fixed-width").
type FixedWidthDataType interface {
	DataType
	BitWidth() int
}

// TimeUnit is shared by time32/time64/timestamp/duration.
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "us"
	case Nanosecond:
		return "ns"
	default:
		return "unknown"
	}
}

// simple, no-argument scalar types ---------------------------------------

type primitive struct {
	id       Type
	name     string
	bitWidth int
}

func (p *primitive) ID() Type       { return p.id }
func (p *primitive) Name() string   { return p.name }
func (p *primitive) String() string { return p.name }
func (p *primitive) BitWidth() int  { return p.bitWidth }

func newPrimitive(id Type, name string, bits int) *primitive {
	return &primitive{id: id, name: name, bitWidth: bits}
}

var (
	Int8Type    FixedWidthDataType = newPrimitive(INT8, "int8", 8)
	Int16Type   FixedWidthDataType = newPrimitive(INT16, "int16", 16)
	Int32Type   FixedWidthDataType = newPrimitive(INT32, "int32", 32)
	Int64Type   FixedWidthDataType = newPrimitive(INT64, "int64", 64)
	Uint8Type   FixedWidthDataType = newPrimitive(UINT8, "uint8", 8)
	Uint16Type  FixedWidthDataType = newPrimitive(UINT16, "uint16", 16)
	Uint32Type  FixedWidthDataType = newPrimitive(UINT32, "uint32", 32)
	Uint64Type  FixedWidthDataType = newPrimitive(UINT64, "uint64", 64)
	Float16Type FixedWidthDataType = newPrimitive(FLOAT16, "float16", 16)
	Float32Type FixedWidthDataType = newPrimitive(FLOAT32, "float32", 32)
	Float64Type FixedWidthDataType = newPrimitive(FLOAT64, "float64", 64)
	BooleanType FixedWidthDataType = newPrimitive(BOOL, "bool", 1)
	Date32Type  FixedWidthDataType = newPrimitive(DATE32, "date32", 32)
	Date64Type  FixedWidthDataType = newPrimitive(DATE64, "date64", 64)

	StringType     DataType = newPrimitive(UTF8, "utf8", -1)
	BinaryType     DataType = newPrimitive(BINARY, "binary", -1)
	LargeStringType DataType = newPrimitive(LARGE_UTF8, "large_utf8", -1)
	LargeBinaryType DataType = newPrimitive(LARGE_BINARY, "large_binary", -1)
	StringViewType DataType = newPrimitive(UTF8_VIEW, "utf8_view", -1)
	BinaryViewType DataType = newPrimitive(BINARY_VIEW, "binary_view", -1)
)

// parameterised scalar types ----------------------------------------------

// FixedSizeBinaryType is fixed_size_binary(byte_width).
type FixedSizeBinaryType struct{ ByteWidth int32 }

func (*FixedSizeBinaryType) ID() Type        { return FIXED_SIZE_BINARY }
func (*FixedSizeBinaryType) Name() string    { return "fixed_size_binary" }
func (t *FixedSizeBinaryType) String() string { return fmt.Sprintf("fixed_size_binary(%d)", t.ByteWidth) }
func (t *FixedSizeBinaryType) BitWidth() int  { return int(t.ByteWidth) * 8 }

// Time32Type is time32(unit in {sec, ms}).
type Time32Type struct{ Unit TimeUnit }

func (*Time32Type) ID() Type        { return TIME32 }
func (*Time32Type) Name() string    { return "time32" }
func (t *Time32Type) String() string { return fmt.Sprintf("time32[%s]", t.Unit) }
func (*Time32Type) BitWidth() int   { return 32 }

// Time64Type is time64(unit in {us, ns}).
type Time64Type struct{ Unit TimeUnit }

func (*Time64Type) ID() Type        { return TIME64 }
func (*Time64Type) Name() string    { return "time64" }
func (t *Time64Type) String() string { return fmt.Sprintf("time64[%s]", t.Unit) }
func (*Time64Type) BitWidth() int   { return 64 }

// TimestampType is timestamp(unit, timezone?).
type TimestampType struct {
	Unit     TimeUnit
	TimeZone string
}

func (*TimestampType) ID() Type        { return TIMESTAMP }
func (*TimestampType) Name() string    { return "timestamp" }
func (t *TimestampType) String() string { return fmt.Sprintf("timestamp[%s, tz=%s]", t.Unit, t.TimeZone) }
func (*TimestampType) BitWidth() int   { return 64 }

// DurationType is duration(unit).
type DurationType struct{ Unit TimeUnit }

func (*DurationType) ID() Type        { return DURATION }
func (*DurationType) Name() string    { return "duration" }
func (t *DurationType) String() string { return fmt.Sprintf("duration[%s]", t.Unit) }
func (*DurationType) BitWidth() int   { return 64 }

// Decimal128Type is decimal128(precision, scale).
type Decimal128Type struct{ Precision, Scale int32 }

func (*Decimal128Type) ID() Type     { return DECIMAL128 }
func (*Decimal128Type) Name() string { return "decimal128" }
func (t *Decimal128Type) String() string {
	return fmt.Sprintf("decimal128(%d, %d)", t.Precision, t.Scale)
}
func (*Decimal128Type) BitWidth() int { return 128 }

// Decimal256Type is decimal256(precision, scale).
type Decimal256Type struct{ Precision, Scale int32 }

func (*Decimal256Type) ID() Type     { return DECIMAL256 }
func (*Decimal256Type) Name() string { return "decimal256" }
func (t *Decimal256Type) String() string {
	return fmt.Sprintf("decimal256(%d, %d)", t.Precision, t.Scale)
}
func (*Decimal256Type) BitWidth() int { return 256 }

// recursive (nested) types --------------------------------------------------

// StructType is struct(fields).
type StructType struct{ fields []Field }

func StructOf(fields ...Field) *StructType { return &StructType{fields: fields} }
func (*StructType) ID() Type               { return STRUCT }
func (*StructType) Name() string           { return "struct" }
func (t *StructType) String() string       { return fmt.Sprintf("struct%v", t.fields) }
func (t *StructType) Fields() []Field      { return t.fields }
func (t *StructType) Field(i int) Field    { return t.fields[i] }
func (t *StructType) NumFields() int       { return len(t.fields) }

// ListType is list(field), 32-bit offsets.
type ListType struct{ elem Field }

func ListOf(elem Field) *ListType    { return &ListType{elem: elem} }
func (*ListType) ID() Type           { return LIST }
func (*ListType) Name() string       { return "list" }
func (t *ListType) String() string   { return fmt.Sprintf("list<%v>", t.elem) }
func (t *ListType) Elem() Field      { return t.elem }

// LargeListType is large_list(field), 64-bit offsets.
type LargeListType struct{ elem Field }

func LargeListOf(elem Field) *LargeListType { return &LargeListType{elem: elem} }
func (*LargeListType) ID() Type             { return LARGE_LIST }
func (*LargeListType) Name() string         { return "large_list" }
func (t *LargeListType) String() string     { return fmt.Sprintf("large_list<%v>", t.elem) }
func (t *LargeListType) Elem() Field        { return t.elem }

// FixedSizeListType is fixed_size_list(field, n).
type FixedSizeListType struct {
	elem Field
	n    int32
}

func FixedSizeListOf(n int32, elem Field) *FixedSizeListType {
	return &FixedSizeListType{elem: elem, n: n}
}
func (*FixedSizeListType) ID() Type           { return FIXED_SIZE_LIST }
func (*FixedSizeListType) Name() string       { return "fixed_size_list" }
func (t *FixedSizeListType) String() string   { return fmt.Sprintf("fixed_size_list<%v>[%d]", t.elem, t.n) }
func (t *FixedSizeListType) Elem() Field      { return t.elem }
func (t *FixedSizeListType) Len() int32       { return t.n }

// MapType is map(entry_field, keys_sorted). The entry field's type must be a
// non-nullable struct of exactly {key, value} (spec §3.1 invariant),
// enforced by MapOf.
type MapType struct {
	entry      Field
	keysSorted bool
}

// MapOf builds a MapType whose entry field is a non-nullable struct of
// exactly {keyField, valueField}, so the invariant holds by construction.
func MapOf(keyField, valueField Field, keysSorted bool) *MapType {
	entryStruct := StructOf(keyField, valueField)
	entry := Field{Name: "entries", Type: entryStruct, Nullable: false}
	return &MapType{entry: entry, keysSorted: keysSorted}
}

func (*MapType) ID() Type         { return MAP }
func (*MapType) Name() string     { return "map" }
func (t *MapType) String() string { return fmt.Sprintf("map<%v>", t.entry) }
func (t *MapType) KeysSorted() bool { return t.keysSorted }
func (t *MapType) KeyField() Field {
	return t.entry.Type.(*StructType).Field(0)
}
func (t *MapType) ValueField() Field {
	return t.entry.Type.(*StructType).Field(1)
}
func (t *MapType) Entry() Field { return t.entry }

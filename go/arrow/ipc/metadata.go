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

package ipc

import (
	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/internal/flatbuf"
	flatbuffers "github.com/google/flatbuffers/go"
)

// writeType emits dtype's tag and scalar parameters as a TypeInfo table.
// Child fields of nested types are written by writeField, not here.
func writeType(b *flatbuffers.Builder, dtype arrow.DataType) flatbuffers.UOffsetT {
	var byteWidth, precision, scale, listSize int32
	var unit uint8
	var keysSorted bool
	var tz flatbuffers.UOffsetT

	switch t := dtype.(type) {
	case *arrow.FixedSizeBinaryType:
		byteWidth = t.ByteWidth
	case *arrow.Time32Type:
		unit = uint8(t.Unit)
	case *arrow.Time64Type:
		unit = uint8(t.Unit)
	case *arrow.TimestampType:
		unit = uint8(t.Unit)
		if t.TimeZone != "" {
			tz = b.CreateString(t.TimeZone)
		}
	case *arrow.DurationType:
		unit = uint8(t.Unit)
	case *arrow.Decimal128Type:
		precision, scale = t.Precision, t.Scale
	case *arrow.Decimal256Type:
		precision, scale = t.Precision, t.Scale
	case *arrow.FixedSizeListType:
		listSize = t.Len()
	case *arrow.MapType:
		keysSorted = t.KeysSorted()
	}

	flatbuf.TypeInfoStart(b)
	flatbuf.TypeInfoAddId(b, uint8(dtype.ID()))
	flatbuf.TypeInfoAddByteWidth(b, byteWidth)
	flatbuf.TypeInfoAddPrecision(b, precision)
	flatbuf.TypeInfoAddScale(b, scale)
	flatbuf.TypeInfoAddUnit(b, unit)
	if tz != 0 {
		flatbuf.TypeInfoAddTimezone(b, tz)
	}
	flatbuf.TypeInfoAddListSize(b, listSize)
	flatbuf.TypeInfoAddKeysSorted(b, keysSorted)
	return flatbuf.TypeInfoEnd(b)
}

// writeField emits a Field table for f, recursing into nested children
// per spec §3.1.
func writeField(b *flatbuffers.Builder, f arrow.Field) flatbuffers.UOffsetT {
	name := b.CreateString(f.Name)
	typ := writeType(b, f.Type)

	var childOffsets []flatbuffers.UOffsetT
	switch t := f.Type.(type) {
	case *arrow.StructType:
		for _, cf := range t.Fields() {
			childOffsets = append(childOffsets, writeField(b, cf))
		}
	case *arrow.ListType:
		childOffsets = append(childOffsets, writeField(b, t.Elem()))
	case *arrow.LargeListType:
		childOffsets = append(childOffsets, writeField(b, t.Elem()))
	case *arrow.FixedSizeListType:
		childOffsets = append(childOffsets, writeField(b, t.Elem()))
	case *arrow.MapType:
		childOffsets = append(childOffsets, writeField(b, t.Entry()))
	}

	var children flatbuffers.UOffsetT
	if len(childOffsets) > 0 {
		flatbuf.FieldStartChildrenVector(b, len(childOffsets))
		for i := len(childOffsets) - 1; i >= 0; i-- {
			b.PrependUOffsetT(childOffsets[i])
		}
		children = b.EndVector(len(childOffsets))
	}

	flatbuf.FieldStart(b)
	flatbuf.FieldAddName(b, name)
	flatbuf.FieldAddNullable(b, f.Nullable)
	flatbuf.FieldAddType(b, typ)
	if children != 0 {
		flatbuf.FieldAddChildren(b, children)
	}
	return flatbuf.FieldEnd(b)
}

// writeSchema emits a Schema table for s.
func writeSchema(b *flatbuffers.Builder, s *arrow.Schema) flatbuffers.UOffsetT {
	fields := s.Fields()
	offs := make([]flatbuffers.UOffsetT, len(fields))
	for i, f := range fields {
		offs[i] = writeField(b, f)
	}
	flatbuf.SchemaStartFieldsVector(b, len(offs))
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	fieldsVec := b.EndVector(len(offs))

	flatbuf.SchemaStart(b)
	flatbuf.SchemaAddFields(b, fieldsVec)
	return flatbuf.SchemaEnd(b)
}

// readType decodes a TypeInfo plus its Field's children into an
// arrow.DataType, consuming exactly as many child Fields as the variant
// requires (spec §3.1 recursion).
func readType(id arrow.Type, ti *flatbuf.TypeInfo, field *flatbuf.Field) (arrow.DataType, error) {
	switch id {
	case arrow.INT8:
		return arrow.Int8Type, nil
	case arrow.INT16:
		return arrow.Int16Type, nil
	case arrow.INT32:
		return arrow.Int32Type, nil
	case arrow.INT64:
		return arrow.Int64Type, nil
	case arrow.UINT8:
		return arrow.Uint8Type, nil
	case arrow.UINT16:
		return arrow.Uint16Type, nil
	case arrow.UINT32:
		return arrow.Uint32Type, nil
	case arrow.UINT64:
		return arrow.Uint64Type, nil
	case arrow.FLOAT16:
		return arrow.Float16Type, nil
	case arrow.FLOAT32:
		return arrow.Float32Type, nil
	case arrow.FLOAT64:
		return arrow.Float64Type, nil
	case arrow.BOOL:
		return arrow.BooleanType, nil
	case arrow.UTF8:
		return arrow.StringType, nil
	case arrow.BINARY:
		return arrow.BinaryType, nil
	case arrow.LARGE_UTF8:
		return arrow.LargeStringType, nil
	case arrow.LARGE_BINARY:
		return arrow.LargeBinaryType, nil
	case arrow.UTF8_VIEW:
		return arrow.StringViewType, nil
	case arrow.BINARY_VIEW:
		return arrow.BinaryViewType, nil
	case arrow.DATE32:
		return arrow.Date32Type, nil
	case arrow.DATE64:
		return arrow.Date64Type, nil
	case arrow.FIXED_SIZE_BINARY:
		return &arrow.FixedSizeBinaryType{ByteWidth: ti.ByteWidth()}, nil
	case arrow.TIME32:
		return &arrow.Time32Type{Unit: arrow.TimeUnit(ti.Unit())}, nil
	case arrow.TIME64:
		return &arrow.Time64Type{Unit: arrow.TimeUnit(ti.Unit())}, nil
	case arrow.TIMESTAMP:
		return &arrow.TimestampType{Unit: arrow.TimeUnit(ti.Unit()), TimeZone: string(ti.Timezone())}, nil
	case arrow.DURATION:
		return &arrow.DurationType{Unit: arrow.TimeUnit(ti.Unit())}, nil
	case arrow.DECIMAL128:
		return &arrow.Decimal128Type{Precision: ti.Precision(), Scale: ti.Scale()}, nil
	case arrow.DECIMAL256:
		return &arrow.Decimal256Type{Precision: ti.Precision(), Scale: ti.Scale()}, nil
	case arrow.STRUCT:
		n := field.ChildrenLength()
		fields := make([]arrow.Field, n)
		for i := 0; i < n; i++ {
			var cf flatbuf.Field
			field.Children(&cf, i)
			f, err := readField(&cf)
			if err != nil {
				return nil, err
			}
			fields[i] = f
		}
		return arrow.StructOf(fields...), nil
	case arrow.LIST:
		elem, err := readOnlyChild(field)
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(elem), nil
	case arrow.LARGE_LIST:
		elem, err := readOnlyChild(field)
		if err != nil {
			return nil, err
		}
		return arrow.LargeListOf(elem), nil
	case arrow.FIXED_SIZE_LIST:
		elem, err := readOnlyChild(field)
		if err != nil {
			return nil, err
		}
		return arrow.FixedSizeListOf(ti.ListSize(), elem), nil
	case arrow.MAP:
		entry, err := readOnlyChild(field)
		if err != nil {
			return nil, err
		}
		entryStruct, ok := entry.Type.(*arrow.StructType)
		if !ok || entryStruct.NumFields() != 2 {
			return nil, invalidData("ipc: map entry field is not a 2-field struct")
		}
		return arrow.MapOf(entryStruct.Field(0), entryStruct.Field(1), ti.KeysSorted()), nil
	default:
		return nil, arrow.NewError(arrow.UnsupportedType, "ipc: unsupported type id %d", id)
	}
}

func readOnlyChild(field *flatbuf.Field) (arrow.Field, error) {
	if field.ChildrenLength() != 1 {
		return arrow.Field{}, invalidData("ipc: expected exactly one child field, got %d", field.ChildrenLength())
	}
	var cf flatbuf.Field
	field.Children(&cf, 0)
	return readField(&cf)
}

// readField decodes a flatbuf.Field into an arrow.Field, recursing into
// children as needed.
func readField(ff *flatbuf.Field) (arrow.Field, error) {
	var ti flatbuf.TypeInfo
	ff.Type(&ti)
	dtype, err := readType(arrow.Type(ti.Id()), &ti, ff)
	if err != nil {
		return arrow.Field{}, err
	}
	return arrow.Field{
		Name:     string(ff.Name()),
		Type:     dtype,
		Nullable: ff.Nullable(),
	}, nil
}

// readSchema decodes a flatbuf.Schema into an *arrow.Schema.
func readSchema(fs *flatbuf.Schema) (*arrow.Schema, error) {
	n := fs.FieldsLength()
	fields := make([]arrow.Field, n)
	for i := 0; i < n; i++ {
		var ff flatbuf.Field
		fs.Fields(&ff, i)
		f, err := readField(&ff)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return arrow.NewSchema(fields, nil), nil
}

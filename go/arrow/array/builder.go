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

import "github.com/colarrow/colarrow/go/arrow"

// Builder is the common, type-erased contract every array builder in this
// package satisfies, used where a builder must be held generically (list
// and struct child builders, schema-driven dispatch). Typed Append methods
// live on each concrete builder type; AppendValue is the dynamically-typed
// edge used by StructBuilder/MapBuilder to forward a row's values to their
// matching child builders (spec §9: "Any-typed erasure ... becomes ... a
// tagged Value enum at the API edge").
type Builder interface {
	Len() int
	NullN() int
	AppendNull()
	AppendValue(v interface{})
	NewArray() arrow.Array
}

// Slice dispatches Slice(off, length) across every concrete Array kind. The
// IPC writer uses this to address a list-like column's child value range
// without needing a type switch of its own (spec §4.5 body encoding).
func Slice(a arrow.Array, off, length int) arrow.Array { return sliceArray(a, off, length) }

// sliceArray dispatches Slice(off, length) across every concrete Array kind,
// since arrow.Array itself has no Slice method (each concrete type returns
// its own type, not the interface, per Go's lack of covariant interfaces).
func sliceArray(a arrow.Array, off, length int) arrow.Array {
	switch v := a.(type) {
	case *Boolean:
		return v.Slice(off, length)
	case *FixedWidthArray[int8]:
		return v.Slice(off, length)
	case *FixedWidthArray[int16]:
		return v.Slice(off, length)
	case *FixedWidthArray[int32]:
		return v.Slice(off, length)
	case *FixedWidthArray[int64]:
		return v.Slice(off, length)
	case *FixedWidthArray[uint8]:
		return v.Slice(off, length)
	case *FixedWidthArray[uint16]:
		return v.Slice(off, length)
	case *FixedWidthArray[uint32]:
		return v.Slice(off, length)
	case *FixedWidthArray[uint64]:
		return v.Slice(off, length)
	case *FixedWidthArray[float32]:
		return v.Slice(off, length)
	case *FixedWidthArray[float64]:
		return v.Slice(off, length)
	case *FixedWidthArray[Decimal128]:
		return v.Slice(off, length)
	case *FixedWidthArray[Decimal256]:
		return v.Slice(off, length)
	case *FixedWidthArray[Float16]:
		return v.Slice(off, length)
	case *FixedWidthArray[Date32]:
		return v.Slice(off, length)
	case *FixedWidthArray[Date64]:
		return v.Slice(off, length)
	case *FixedWidthArray[Time32]:
		return v.Slice(off, length)
	case *FixedWidthArray[Time64]:
		return v.Slice(off, length)
	case *FixedWidthArray[Timestamp]:
		return v.Slice(off, length)
	case *FixedWidthArray[Duration]:
		return v.Slice(off, length)
	case *String:
		return v.Slice(off, length)
	case *Binary:
		return v.Slice(off, length)
	case *LargeString:
		return v.Slice(off, length)
	case *LargeBinary:
		return v.Slice(off, length)
	case *FixedSizeBinary:
		return v.Slice(off, length)
	case *BinaryView:
		return v.Slice(off, length)
	case *List:
		return v.Slice(off, length)
	case *LargeList:
		return v.Slice(off, length)
	case *FixedSizeList:
		return v.Slice(off, length)
	case *Struct:
		return v.Slice(off, length)
	case *Map:
		return v.Slice(off, length)
	default:
		panic("array: Slice not implemented for this array kind")
	}
}

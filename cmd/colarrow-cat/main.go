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

// Command colarrow-cat dumps the schema and row contents of an Arrow IPC
// file, one RecordBatch at a time.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/ipc"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s FILE\n", os.Args[0])
		os.Exit(2)
	}
	if err := processFile(os.Stdout, os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "colarrow-cat: %v\n", err)
		os.Exit(1)
	}
}

func processFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := ipc.NewFileReader(f)
	if err != nil {
		return err
	}
	defer r.Close()

	n := r.NumRecords()
	for i := 0; i < n; i++ {
		rec, err := r.RecordAt(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "record %d/%d...\n", i+1, n)
		printRecord(w, rec)
		rec.Release()
	}
	return nil
}

func printRecord(w io.Writer, rec *array.Record) {
	schema := rec.Schema()
	for i, col := range rec.Columns() {
		fmt.Fprintf(w, "  col[%d] %q: %s\n", i, schema.Field(i).Name, formatArray(col))
	}
}

func formatArray(a arrow.Array) string {
	n := a.Len()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = formatValue(a, i)
	}
	out := "["
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out + "]"
}

func formatValue(a arrow.Array, i int) string {
	if a.IsNull(i) {
		return "(null)"
	}
	switch v := a.(type) {
	case *array.Boolean:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[int8]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[int16]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[int32]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[int64]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[uint8]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[uint16]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[uint32]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[uint64]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[float32]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.FixedWidthArray[float64]:
		x, _ := v.Get(i)
		return fmt.Sprint(x)
	case *array.String:
		x, _ := v.Get(i)
		return fmt.Sprintf("%q", x)
	case *array.LargeString:
		x, _ := v.Get(i)
		return fmt.Sprintf("%q", x)
	case *array.Binary:
		x, _ := v.Get(i)
		return fmt.Sprintf("%q", x)
	case *array.LargeBinary:
		x, _ := v.Get(i)
		return fmt.Sprintf("%q", x)
	case *array.List:
		row, _ := v.Get(i)
		s := formatArray(row)
		row.Release()
		return s
	case *array.LargeList:
		row, _ := v.Get(i)
		s := formatArray(row)
		row.Release()
		return s
	case *array.Struct:
		out := "{"
		for f := 0; f < v.NumField(); f++ {
			if f > 0 {
				out += " "
			}
			child := v.Field(f)
			out += formatArray(child)
			child.Release()
		}
		return out + "}"
	default:
		return "<?>"
	}
}

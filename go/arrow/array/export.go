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

import "github.com/colarrow/colarrow/go/arrow/bitutil"

// ExportValidity repacks nulls into a dense, byte-aligned bitmap starting at
// bit 0 for exactly nulls.Len() bits, returning nil for the elided
// AllValid/AllNull variants (buffer_sizes reports 0 for those, §4.3). Used
// by the IPC writer, which always serialises a buffer representing only an
// array's own logical span regardless of where it sits inside a shared,
// possibly non-byte-aligned slice.
func ExportValidity(nulls NullBuffer) []byte {
	n := nulls.Len()
	if n == 0 {
		return nil
	}
	bp, ok := nulls.(*bitPackedBuffer)
	if !ok {
		return nil
	}
	if bp.bitOffset%8 == 0 {
		start := bp.bitOffset / 8
		nbytes := bitutil.CeilByte(n) / 8
		return bp.buf.Bytes()[start : start+nbytes]
	}
	out := make([]byte, bitutil.CeilByte(n)/8)
	for i := 0; i < n; i++ {
		if bp.IsSet(i) {
			bitutil.SetBit(out, i)
		}
	}
	return out
}

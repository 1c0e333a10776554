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

import "unsafe"

// sizeOfT returns the constant byte width of T (a fixed-width, bitwise
// copyable scalar) for the current generic instantiation.
func sizeOfT[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bytesToSlice reinterprets a byte slice as a []T without copying. The
// caller is responsible for b's lifetime (it aliases an owning
// *memory.Buffer, per the IPC "borrowed buffer" and zero-copy-slice
// invariants of spec §3.3/§4.6).
func bytesToSlice[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	width := sizeOfT[T]()
	n := len(b) / width
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// sliceToBytes reinterprets a []T as its raw bytes without copying.
func sliceToBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	width := sizeOfT[T]()
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*width)
}

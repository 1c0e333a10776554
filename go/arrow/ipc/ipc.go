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

// Package ipc implements the Arrow file format: a file marker, a
// continuation-prefixed stream of FlatBuffers messages, 8-byte aligned
// buffer bodies, and a trailing footer with a schema and record-batch
// block index (spec §4.5, §4.6).
package ipc

import (
	"github.com/colarrow/colarrow/go/arrow"
	"golang.org/x/xerrors"
)

const (
	fileMagic        = "ARROW1"
	continuationMark = 0xFFFFFFFF
	kArrowAlignment  = 64
	kMaxNestingDepth = 64
)

var (
	errNotArrowFile            = xerrors.New("ipc: not an Arrow file")
	errInconsistentFileMetadata = xerrors.New("ipc: file footer is shorter than minimum")
	errInconsistentSchema      = xerrors.New("ipc: record batch schema does not match writer schema")
	errMaxRecursion            = xerrors.New("ipc: max recursion depth reached")
	errBigArray                = xerrors.New("ipc: array length larger than allowed without 64-bit offsets")
	errMissingContinuation     = xerrors.New("ipc: missing continuation marker")
	errInconsistentBufferCount = xerrors.New("ipc: inconsistent field node/buffer count")
	errBodyLengthMismatch      = xerrors.New("ipc: body length does not match written bytes")
	errWriterClosed            = xerrors.New("ipc: write called on a closed Writer")
)

// invalidData wraps a parse failure as the recoverable InvalidData kind
// (spec §7).
func invalidData(format string, args ...interface{}) error {
	return arrow.NewError(arrow.InvalidData, format, args...)
}

func paddedLength(n int64, alignment int64) int64 {
	return (n + alignment - 1) / alignment * alignment
}

func bytesForBits(n int64) int64 { return (n + 7) / 8 }

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
	"sort"
	"sync/atomic"

	"github.com/colarrow/colarrow/go/arrow"
)

// ChunkedArray is an ordered list of same-typed arrays presented as one
// logical column (spec §3.2, §4.4): its length is the sum of chunk lengths,
// and random access binary-searches a precomputed cumulative-offset prefix
// rather than scanning chunks linearly.
type ChunkedArray struct {
	refCount int64
	dtype    arrow.DataType
	chunks   []arrow.Array
	offsets  []int64 // len(chunks)+1, offsets[0]==0
	length   int64
	nullN    int64
}

// NewChunkedArray builds a ChunkedArray over chunks, all of which must share
// dtype's type identity. An empty chunk list and a chunk type mismatch are
// both recoverable InvalidArgument errors (spec §7), not programmer errors.
func NewChunkedArray(dtype arrow.DataType, chunks []arrow.Array) (*ChunkedArray, error) {
	if len(chunks) == 0 {
		return nil, arrow.NewError(arrow.InvalidArgument, "array: chunked array requires at least one chunk")
	}
	offsets := make([]int64, len(chunks)+1)
	var length, nullN int64
	for i, c := range chunks {
		if !arrow.TypeEqual(c.DataType(), dtype) {
			return nil, arrow.NewError(arrow.InvalidArgument, "array: chunked array chunk %d type mismatch", i)
		}
		length += int64(c.Len())
		nullN += int64(c.NullN())
		offsets[i+1] = length
	}
	for _, c := range chunks {
		c.Retain()
	}
	return &ChunkedArray{refCount: 1, dtype: dtype, chunks: chunks, offsets: offsets, length: length, nullN: nullN}, nil
}

func (c *ChunkedArray) DataType() arrow.DataType { return c.dtype }
func (c *ChunkedArray) Len() int                 { return int(c.length) }
func (c *ChunkedArray) NullN() int               { return int(c.nullN) }
func (c *ChunkedArray) NumChunks() int           { return len(c.chunks) }
func (c *ChunkedArray) Chunk(i int) arrow.Array  { return c.chunks[i] }
func (c *ChunkedArray) Chunks() []arrow.Array    { return c.chunks }

// chunkFor binary searches the cumulative offsets for the chunk containing
// logical index i, returning (chunk index, index within that chunk).
func (c *ChunkedArray) chunkFor(i int) (int, int) {
	idx := sort.Search(len(c.offsets), func(k int) bool { return c.offsets[k] > int64(i) }) - 1
	return idx, i - int(c.offsets[idx])
}

// IsNull reports whether logical index i is null, routing through the
// chunk boundary.
func (c *ChunkedArray) IsNull(i int) bool {
	ci, off := c.chunkFor(i)
	return c.chunks[ci].IsNull(off)
}

func (c *ChunkedArray) IsValid(i int) bool { return !c.IsNull(i) }

// At returns (chunk, index-within-chunk) for logical index i, letting the
// caller downcast the chunk and call its own Value/Get.
func (c *ChunkedArray) At(i int) (arrow.Array, int) {
	if i < 0 || i >= int(c.length) {
		panic("array: index out of range")
	}
	ci, off := c.chunkFor(i)
	return c.chunks[ci], off
}

func (c *ChunkedArray) Retain() { atomic.AddInt64(&c.refCount, 1) }
func (c *ChunkedArray) Release() {
	if atomic.AddInt64(&c.refCount, -1) == 0 {
		for _, ch := range c.chunks {
			ch.Release()
		}
	}
}

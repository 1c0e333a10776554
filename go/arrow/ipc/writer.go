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
	"encoding/binary"
	"io"
	"math"

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/internal/flatbuf"
	"github.com/colarrow/colarrow/go/arrow/memory"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

// config collects Writer/Reader construction options (spec's functional-
// options surface for the IPC layer).
type config struct {
	mem memory.Allocator
}

// Option configures a Writer or Reader.
type Option func(*config)

// WithAllocator overrides the default memory.GoAllocator.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) { c.mem = mem }
}

func newConfig(opts []Option) config {
	cfg := config{mem: memory.NewGoAllocator()}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// listLike is satisfied by List/LargeList/Map (Map embeds List), letting the
// writer's pre-order walk treat all three identically when descending into
// the shared child array (spec §4.5 buffer ordering).
type listLike interface {
	Len() int
	ValueRange(i int) (int, int)
	Child() arrow.Array
}

type fileBlock struct {
	offset  int64
	metaLen int32
	bodyLen int64
}

// Writer serializes a sequence of RecordBatches sharing one schema into the
// Arrow file format (spec §4.5): a file marker, a schema message, one
// message per Write call, and a trailing footer written by Close.
type Writer struct {
	w       io.Writer
	mem     memory.Allocator
	schema  *arrow.Schema
	pos     int64
	started bool
	closed  bool
	blocks  []fileBlock
}

// NewWriter wraps w, ready to stream RecordBatches matching schema.
func NewWriter(w io.Writer, schema *arrow.Schema, opts ...Option) *Writer {
	cfg := newConfig(opts)
	return &Writer{w: w, mem: cfg.mem, schema: schema}
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return err
}

func (w *Writer) writeZeroPad(n int64) error {
	if n <= 0 {
		return nil
	}
	return w.write(make([]byte, n))
}

func (w *Writer) start() error {
	if w.started {
		return nil
	}
	w.started = true
	if err := w.write([]byte(fileMagic)); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write file magic")
	}
	if err := w.writeZeroPad(2); err != nil { // "ARROW1" (6) + 2 pad = 8
		return errors.Wrap(err, "arrow/ipc: could not write leading pad")
	}
	return errors.Wrap(w.writeSchemaMessage(), "arrow/ipc: could not write schema message")
}

func (w *Writer) writeSchemaMessage() error {
	b := flatbuffers.NewBuilder(1024)
	schemaOff := writeSchema(b, w.schema)
	flatbuf.MessageStart(b)
	flatbuf.MessageAddHeaderType(b, uint8(flatbuf.MessageHeaderSchema))
	flatbuf.MessageAddHeader(b, schemaOff)
	flatbuf.MessageAddBodyLength(b, 0)
	msg := flatbuf.MessageEnd(b)
	b.Finish(msg)
	return w.writeMessage(b.FinishedBytes(), nil)
}

// writeMessage frames metaBytes behind a continuation marker and a length
// prefix padded so the whole metadata block is a multiple of 8 bytes, then
// writes body, itself a sequence of individually 8-byte padded buffers
// (spec §4.5).
func (w *Writer) writeMessage(metaBytes []byte, body [][]byte) error {
	padded := paddedLength(int64(len(metaBytes)), 8)
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], continuationMark)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(padded))
	if err := w.write(hdr[:]); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write message framing header")
	}
	if err := w.write(metaBytes); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write message metadata")
	}
	if err := w.writeZeroPad(padded - int64(len(metaBytes))); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write message metadata pad")
	}
	for i, buf := range body {
		if err := w.write(buf); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not write body buffer %d", i)
		}
		if err := w.writeZeroPad(paddedLength(int64(len(buf)), 8) - int64(len(buf))); err != nil {
			return errors.Wrapf(err, "arrow/ipc: could not write body buffer %d pad", i)
		}
	}
	return nil
}

// nodeInfo is one array's {length, null_count, own buffers} in pre-order
// position (spec §4.5 FieldNode/Buffer ordering).
type nodeInfo struct {
	length        int64
	nullCount     int64
	buffers       [][]byte
	variadicCount int64 // -1 unless this node is a *array.BinaryView
}

// collectNodes walks arr depth-first, recording one nodeInfo per array and
// descending into children with the value range the parent actually
// references (not the full, possibly-shared child), mirroring the teacher's
// getZeroBasedValueOffsets/NewSlice pattern before encoding buffers. Arrays
// using 32-bit offsets (String/Binary/List/Map, as opposed to their Large
// counterparts) cannot address more than math.MaxInt32 bytes or elements;
// collectNodes rejects those up front rather than writing a corrupt offset.
func collectNodes(arr arrow.Array, out *[]nodeInfo) error {
	switch v := arr.(type) {
	case *array.String:
		if n := len(v.Buffers()[2]); n > math.MaxInt32 {
			return errBigArray
		}
	case *array.Binary:
		if n := len(v.Buffers()[2]); n > math.MaxInt32 {
			return errBigArray
		}
	case *array.Map:
		if v.Len() > 0 {
			start, _ := v.ValueRange(0)
			_, end := v.ValueRange(v.Len() - 1)
			if end-start > math.MaxInt32 {
				return errBigArray
			}
		}
	case *array.List:
		if v.Len() > 0 {
			start, _ := v.ValueRange(0)
			_, end := v.ValueRange(v.Len() - 1)
			if end-start > math.MaxInt32 {
				return errBigArray
			}
		}
	}

	variadic := int64(-1)
	if bv, ok := arr.(*array.BinaryView); ok {
		variadic = int64(len(bv.DataBuffers()))
	}
	*out = append(*out, nodeInfo{
		length:        int64(arr.Len()),
		nullCount:     int64(arr.NullN()),
		buffers:       arr.Buffers(),
		variadicCount: variadic,
	})

	switch v := arr.(type) {
	case *array.Struct:
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			err := collectNodes(f, out)
			f.Release()
			if err != nil {
				return err
			}
		}
	case *array.FixedSizeList:
		dtype := v.DataType().(*arrow.FixedSizeListType)
		n := int(dtype.Len())
		start := v.Offset() * n
		length := v.Len() * n
		sliced := array.Slice(v.Child(), start, length)
		err := collectNodes(sliced, out)
		sliced.Release()
		if err != nil {
			return err
		}
	case listLike:
		child := v.Child()
		var start, end int
		if v.Len() > 0 {
			start, _ = v.ValueRange(0)
			_, end = v.ValueRange(v.Len() - 1)
		}
		sliced := array.Slice(child, start, end-start)
		err := collectNodes(sliced, out)
		sliced.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

type bufMeta struct{ offset, length int64 }

// Write encodes rec as one RecordBatch message. The first call also emits
// the file marker and schema message (spec §4.5, §4.6).
func (w *Writer) Write(rec *array.Record) error {
	if w.closed {
		return errWriterClosed
	}
	if err := w.start(); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not start file")
	}
	if !rec.Schema().Equal(w.schema) {
		return errInconsistentSchema
	}

	var nodes []nodeInfo
	for _, col := range rec.Columns() {
		if err := collectNodes(col, &nodes); err != nil {
			return err
		}
	}

	var bodyBufs [][]byte
	var bufMetas []bufMeta
	var cum int64
	for _, n := range nodes {
		for _, buf := range n.buffers {
			l := int64(len(buf))
			bufMetas = append(bufMetas, bufMeta{offset: cum, length: l})
			bodyBufs = append(bodyBufs, buf)
			cum += paddedLength(l, 8)
		}
	}
	bodyLength := cum

	b := flatbuffers.NewBuilder(1024)

	nodeOffs := make([]flatbuffers.UOffsetT, len(nodes))
	for i, n := range nodes {
		flatbuf.FieldNodeStart(b)
		flatbuf.FieldNodeAddLength(b, n.length)
		flatbuf.FieldNodeAddNullCount(b, n.nullCount)
		nodeOffs[i] = flatbuf.FieldNodeEnd(b)
	}
	flatbuf.RecordBatchStartNodesVector(b, len(nodeOffs))
	for i := len(nodeOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(nodeOffs[i])
	}
	nodesVec := b.EndVector(len(nodeOffs))

	bufOffs := make([]flatbuffers.UOffsetT, len(bufMetas))
	for i, m := range bufMetas {
		flatbuf.BufferStart(b)
		flatbuf.BufferAddOffset(b, m.offset)
		flatbuf.BufferAddLength(b, m.length)
		bufOffs[i] = flatbuf.BufferEnd(b)
	}
	flatbuf.RecordBatchStartBuffersVector(b, len(bufOffs))
	for i := len(bufOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(bufOffs[i])
	}
	buffersVec := b.EndVector(len(bufOffs))

	var variadicCounts []int64
	for _, n := range nodes {
		if n.variadicCount >= 0 {
			variadicCounts = append(variadicCounts, n.variadicCount)
		}
	}
	var variadicVec flatbuffers.UOffsetT
	if len(variadicCounts) > 0 {
		flatbuf.RecordBatchStartVariadicBufferCountsVector(b, len(variadicCounts))
		for i := len(variadicCounts) - 1; i >= 0; i-- {
			b.PrependInt64(variadicCounts[i])
		}
		variadicVec = b.EndVector(len(variadicCounts))
	}

	flatbuf.RecordBatchStart(b)
	flatbuf.RecordBatchAddLength(b, rec.NumRows())
	flatbuf.RecordBatchAddNodes(b, nodesVec)
	flatbuf.RecordBatchAddBuffers(b, buffersVec)
	if variadicVec != 0 {
		flatbuf.RecordBatchAddVariadicBufferCounts(b, variadicVec)
	}
	rbOff := flatbuf.RecordBatchEnd(b)

	flatbuf.MessageStart(b)
	flatbuf.MessageAddHeaderType(b, uint8(flatbuf.MessageHeaderRecordBatch))
	flatbuf.MessageAddHeader(b, rbOff)
	flatbuf.MessageAddBodyLength(b, bodyLength)
	msgOff := flatbuf.MessageEnd(b)
	b.Finish(msgOff)
	metaBytes := b.FinishedBytes()

	blockOffset := w.pos
	metaDataLen := int32(8 + paddedLength(int64(len(metaBytes)), 8))
	if err := w.writeMessage(metaBytes, bodyBufs); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not encode record batch message")
	}
	w.blocks = append(w.blocks, fileBlock{offset: blockOffset, metaLen: metaDataLen, bodyLen: bodyLength})
	return nil
}

// Close flushes the trailing footer: the raw Footer FlatBuffers bytes (no
// continuation marker or length prefix), a legacy zero Int32, the footer
// length as a little-endian Int32, and the closing "ARROW1" marker (spec
// §4.5). Close is idempotent; Write after Close fails.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if err := w.start(); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not start file")
	}
	w.closed = true

	b := flatbuffers.NewBuilder(1024)
	schemaOff := writeSchema(b, w.schema)

	blockOffs := make([]flatbuffers.UOffsetT, len(w.blocks))
	for i, blk := range w.blocks {
		flatbuf.BlockStart(b)
		flatbuf.BlockAddOffset(b, blk.offset)
		flatbuf.BlockAddMetaDataLength(b, blk.metaLen)
		flatbuf.BlockAddBodyLength(b, blk.bodyLen)
		blockOffs[i] = flatbuf.BlockEnd(b)
	}
	flatbuf.FooterStartRecordBatchesVector(b, len(blockOffs))
	for i := len(blockOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(blockOffs[i])
	}
	blocksVec := b.EndVector(len(blockOffs))

	flatbuf.FooterStart(b)
	flatbuf.FooterAddSchema(b, schemaOff)
	flatbuf.FooterAddRecordBatches(b, blocksVec)
	footerOff := flatbuf.FooterEnd(b)
	b.Finish(footerOff)
	footerBytes := b.FinishedBytes()

	if err := w.write(footerBytes); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write footer")
	}
	var zero [4]byte
	if err := w.write(zero[:]); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write legacy footer pad")
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(footerBytes)))
	if err := w.write(lenBuf[:]); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write footer length")
	}
	if err := w.write([]byte(fileMagic)); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not write trailing file magic")
	}
	return nil
}

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

	"github.com/colarrow/colarrow/go/arrow"
	"github.com/colarrow/colarrow/go/arrow/array"
	"github.com/colarrow/colarrow/go/arrow/internal/flatbuf"
	"github.com/colarrow/colarrow/go/arrow/memory"
	"github.com/pkg/errors"
)

// ReadAtSeeker is the random-access surface FileReader needs: Seek once at
// open time to measure the file, then ReadAt for every subsequent access
// (safe for concurrent Record reads, spec §4.6).
type ReadAtSeeker interface {
	io.ReaderAt
	io.Seeker
}

// footerTrailerSize is the fixed-width tail every Arrow file ends with: a
// legacy zero Int32, the footer length as a little-endian Int32, and the
// closing "ARROW1" marker (spec §4.5, mirrors Writer.Close).
const footerTrailerSize = 4 + 4 + len(fileMagic)

type fileReaderBlock struct {
	offset  int64
	metaLen int64
	bodyLen int64
}

// FileReader opens a complete Arrow file: the footer is parsed once at open
// time (schema plus the block index), and each RecordBatch is decoded on
// demand from its own block (spec §4.6).
type FileReader struct {
	r      io.ReaderAt
	mem    memory.Allocator
	size   int64
	schema *arrow.Schema
	blocks []fileReaderBlock
	irec   int
}

// NewFileReader measures r via Seek, then parses the leading magic and the
// trailing footer.
func NewFileReader(r ReadAtSeeker, opts ...Option) (*FileReader, error) {
	cfg := newConfig(opts)
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "arrow/ipc: could not measure file")
	}
	f := &FileReader{r: r, mem: cfg.mem, size: size}
	if err := f.checkLeadingMagic(); err != nil {
		return nil, errors.Wrap(err, "arrow/ipc: could not read leading file magic")
	}
	if err := f.readFooter(); err != nil {
		return nil, errors.Wrap(err, "arrow/ipc: could not read footer")
	}
	return f, nil
}

func readFullAt(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "arrow/ipc: could not read %d bytes at offset %d", len(buf), off)
	}
	return io.ErrUnexpectedEOF
}

func (f *FileReader) checkLeadingMagic() error {
	if f.size < int64(len(fileMagic)) {
		return invalidData("ipc: file too small (size=%d)", f.size)
	}
	head := make([]byte, len(fileMagic))
	if err := readFullAt(f.r, head, 0); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not read leading magic")
	}
	if string(head) != fileMagic {
		return errNotArrowFile
	}
	return nil
}

// readFooter locates and decodes the trailing Footer: the closing magic,
// a little-endian Int32 footer length, then (working backwards) the raw
// Footer FlatBuffers bytes themselves (spec §4.5).
func (f *FileReader) readFooter() error {
	if f.size < int64(footerTrailerSize) {
		return invalidData("ipc: file too small (size=%d)", f.size)
	}

	trailer := make([]byte, footerTrailerSize)
	if err := readFullAt(f.r, trailer, f.size-int64(footerTrailerSize)); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not read footer trailer")
	}
	if string(trailer[8:]) != fileMagic {
		return errNotArrowFile
	}

	footerLen := int64(binary.LittleEndian.Uint32(trailer[4:8]))
	if footerLen <= 0 || footerLen+int64(footerTrailerSize) > f.size {
		return errInconsistentFileMetadata
	}

	footerStart := f.size - int64(footerTrailerSize) - footerLen
	footerBuf := make([]byte, footerLen)
	if err := readFullAt(f.r, footerBuf, footerStart); err != nil {
		return errors.Wrap(err, "arrow/ipc: could not read footer body")
	}

	fb := flatbuf.GetRootAsFooter(footerBuf, 0)
	schema, err := readSchema(fb.Schema(nil))
	if err != nil {
		return errors.Wrap(err, "arrow/ipc: could not decode footer schema")
	}
	f.schema = schema

	n := fb.RecordBatchesLength()
	f.blocks = make([]fileReaderBlock, n)
	for i := 0; i < n; i++ {
		var blk flatbuf.Block
		if !fb.RecordBatches(&blk, i) {
			return invalidData("ipc: could not read footer block %d", i)
		}
		f.blocks[i] = fileReaderBlock{offset: blk.Offset(), metaLen: int64(blk.MetaDataLength()), bodyLen: blk.BodyLength()}
	}
	return nil
}

// Schema returns the schema every Record in this file shares.
func (f *FileReader) Schema() *arrow.Schema { return f.schema }

// NumRecords returns the number of RecordBatch blocks in the file.
func (f *FileReader) NumRecords() int { return len(f.blocks) }

// Close releases resources held by the reader. The underlying r is left
// open; callers that own it close it themselves.
func (f *FileReader) Close() error { return nil }

// Read returns the next Record in file order, or io.EOF once exhausted. The
// caller owns the returned Record and must Release it.
func (f *FileReader) Read() (*array.Record, error) {
	if f.irec >= len(f.blocks) {
		return nil, io.EOF
	}
	rec, err := f.RecordAt(f.irec)
	f.irec++
	return rec, err
}

// RecordAt decodes and returns the i-th RecordBatch in the file. The caller
// owns the returned Record and must Release it. Safe for concurrent use.
func (f *FileReader) RecordAt(i int) (*array.Record, error) {
	if i < 0 || i >= len(f.blocks) {
		return nil, invalidData("ipc: record index %d out of range [0, %d)", i, len(f.blocks))
	}
	blk := f.blocks[i]

	metaBuf := make([]byte, blk.metaLen)
	if err := readFullAt(f.r, metaBuf, blk.offset); err != nil {
		return nil, errors.Wrapf(err, "arrow/ipc: could not read block %d metadata", i)
	}
	if len(metaBuf) < 8 {
		return nil, invalidData("ipc: block %d metadata too short", i)
	}
	if binary.LittleEndian.Uint32(metaBuf[0:4]) != continuationMark {
		return nil, errMissingContinuation
	}
	paddedLen := int64(binary.LittleEndian.Uint32(metaBuf[4:8]))
	if 8+paddedLen > int64(len(metaBuf)) {
		return nil, invalidData("ipc: block %d metadata length mismatch", i)
	}
	fbBytes := metaBuf[8 : 8+paddedLen]

	msg := flatbuf.GetRootAsMessage(fbBytes, 0)
	if flatbuf.MessageHeader(msg.HeaderType()) != flatbuf.MessageHeaderRecordBatch {
		return nil, invalidData("ipc: block %d is not a RecordBatch message", i)
	}
	rb := msg.HeaderAsRecordBatch()
	if rb == nil {
		return nil, invalidData("ipc: block %d has no RecordBatch header", i)
	}
	if msg.BodyLength() != blk.bodyLen {
		return nil, errBodyLengthMismatch
	}

	body := make([]byte, blk.bodyLen)
	if blk.bodyLen > 0 {
		if err := readFullAt(f.r, body, blk.offset+blk.metaLen); err != nil {
			return nil, errors.Wrapf(err, "arrow/ipc: could not read block %d body", i)
		}
	}

	cur := &readCursor{}
	fields := f.schema.Fields()
	cols := make([]arrow.Array, len(fields))
	for idx, field := range fields {
		col, err := buildArray(field, body, rb, cur, kMaxNestingDepth)
		if err != nil {
			for _, c := range cols[:idx] {
				c.Release()
			}
			return nil, errors.Wrapf(err, "arrow/ipc: could not decode column %d (%q)", idx, field.Name)
		}
		cols[idx] = col
	}
	if cur.nodeIdx != rb.NodesLength() || cur.bufIdx != rb.BuffersLength() {
		for _, c := range cols {
			c.Release()
		}
		return nil, errInconsistentBufferCount
	}

	rec, err := array.NewRecord(f.schema, cols, rb.Length())
	for _, c := range cols {
		c.Release()
	}
	if err != nil {
		return nil, errors.Wrap(err, "arrow/ipc: could not assemble record")
	}
	return rec, nil
}

// readCursor walks a RecordBatch's FieldNode/Buffer/VariadicBufferCounts
// vectors in the same pre-order sequence the writer's collectNodes produced
// them in (spec §4.5).
type readCursor struct {
	nodeIdx     int
	bufIdx      int
	variadicIdx int
}

func (c *readCursor) nextNode(rb *flatbuf.RecordBatch) (*flatbuf.FieldNode, error) {
	var fn flatbuf.FieldNode
	if !rb.Nodes(&fn, c.nodeIdx) {
		return nil, invalidData("ipc: missing field node %d", c.nodeIdx)
	}
	c.nodeIdx++
	return &fn, nil
}

// nextBuffer wraps the next body slice as a borrowed, non-owning Buffer:
// the body backing array outlives every array built from this batch, so
// Retain/Release on it is bookkeeping only.
func (c *readCursor) nextBuffer(rb *flatbuf.RecordBatch, body []byte) (*memory.Buffer, error) {
	var buf flatbuf.Buffer
	if !rb.Buffers(&buf, c.bufIdx) {
		return nil, invalidData("ipc: missing buffer %d", c.bufIdx)
	}
	idx := c.bufIdx
	c.bufIdx++
	off, length := buf.Offset(), buf.Length()
	if off < 0 || length < 0 || off+length > int64(len(body)) {
		return nil, invalidData("ipc: buffer %d out of range (offset=%d, length=%d, body=%d)", idx, off, length, len(body))
	}
	return memory.NewBufferBytes(body[off : off+length]), nil
}

func (c *readCursor) nextVariadicCount(rb *flatbuf.RecordBatch) (int, error) {
	if c.variadicIdx >= rb.VariadicBufferCountsLength() {
		return 0, invalidData("ipc: missing variadic buffer count %d", c.variadicIdx)
	}
	n := rb.VariadicBufferCounts(c.variadicIdx)
	c.variadicIdx++
	return int(n), nil
}

// buildNullBuffer reconstructs a NullBuffer for a node, eliding to the
// AllValid/AllNull variants exactly as NullBufferBuilder.Finish does so a
// round-tripped array compares equal to the one that produced it.
func buildNullBuffer(buf *memory.Buffer, length, nullCount int) array.NullBuffer {
	switch {
	case length == 0:
		return array.AllValid(0)
	case nullCount == 0:
		return array.AllValid(length)
	case nullCount == length:
		return array.AllNull(length)
	default:
		return array.NewBitPackedNullBuffer(buf, length, nullCount)
	}
}

// buildArray decodes one field's array from rb, recursing into nested
// children in the exact order the writer's collectNodes walked them. Every
// node consumes exactly one validity buffer slot, even when the array is
// all-valid or all-null (the writer never skips a slot, spec §4.5).
func buildArray(field arrow.Field, body []byte, rb *flatbuf.RecordBatch, cur *readCursor, depth int) (arrow.Array, error) {
	if depth == 0 {
		return nil, errMaxRecursion
	}

	node, err := cur.nextNode(rb)
	if err != nil {
		return nil, err
	}
	length := int(node.Length())
	nullCount := int(node.NullCount())

	validityBuf, err := cur.nextBuffer(rb, body)
	if err != nil {
		return nil, err
	}
	nulls := buildNullBuffer(validityBuf, length, nullCount)

	dtype := field.Type
	switch dtype.ID() {
	case arrow.BOOL:
		values, err := cur.nextBuffer(rb, body)
		if err != nil {
			return nil, err
		}
		return array.NewBoolean(0, length, nulls, values), nil

	case arrow.INT8:
		return buildFixedWidth[int8](dtype, length, nulls, rb, body, cur)
	case arrow.INT16:
		return buildFixedWidth[int16](dtype, length, nulls, rb, body, cur)
	case arrow.INT32:
		return buildFixedWidth[int32](dtype, length, nulls, rb, body, cur)
	case arrow.INT64:
		return buildFixedWidth[int64](dtype, length, nulls, rb, body, cur)
	case arrow.UINT8:
		return buildFixedWidth[uint8](dtype, length, nulls, rb, body, cur)
	case arrow.UINT16:
		return buildFixedWidth[uint16](dtype, length, nulls, rb, body, cur)
	case arrow.UINT32:
		return buildFixedWidth[uint32](dtype, length, nulls, rb, body, cur)
	case arrow.UINT64:
		return buildFixedWidth[uint64](dtype, length, nulls, rb, body, cur)
	case arrow.FLOAT16:
		return buildFixedWidth[array.Float16](dtype, length, nulls, rb, body, cur)
	case arrow.FLOAT32:
		return buildFixedWidth[float32](dtype, length, nulls, rb, body, cur)
	case arrow.FLOAT64:
		return buildFixedWidth[float64](dtype, length, nulls, rb, body, cur)
	case arrow.DATE32:
		return buildFixedWidth[array.Date32](dtype, length, nulls, rb, body, cur)
	case arrow.DATE64:
		return buildFixedWidth[array.Date64](dtype, length, nulls, rb, body, cur)
	case arrow.TIME32:
		return buildFixedWidth[array.Time32](dtype, length, nulls, rb, body, cur)
	case arrow.TIME64:
		return buildFixedWidth[array.Time64](dtype, length, nulls, rb, body, cur)
	case arrow.TIMESTAMP:
		return buildFixedWidth[array.Timestamp](dtype, length, nulls, rb, body, cur)
	case arrow.DURATION:
		return buildFixedWidth[array.Duration](dtype, length, nulls, rb, body, cur)
	case arrow.DECIMAL128:
		return buildFixedWidth[array.Decimal128](dtype, length, nulls, rb, body, cur)
	case arrow.DECIMAL256:
		return buildFixedWidth[array.Decimal256](dtype, length, nulls, rb, body, cur)

	case arrow.UTF8:
		offs, data, err := buildVarLenBuffers(rb, body, cur)
		if err != nil {
			return nil, err
		}
		return array.NewString(0, length, nulls, offs, data), nil
	case arrow.BINARY:
		offs, data, err := buildVarLenBuffers(rb, body, cur)
		if err != nil {
			return nil, err
		}
		return array.NewBinary(0, length, nulls, offs, data), nil
	case arrow.LARGE_UTF8:
		offs, data, err := buildVarLenBuffers(rb, body, cur)
		if err != nil {
			return nil, err
		}
		return array.NewLargeString(0, length, nulls, offs, data), nil
	case arrow.LARGE_BINARY:
		offs, data, err := buildVarLenBuffers(rb, body, cur)
		if err != nil {
			return nil, err
		}
		return array.NewLargeBinary(0, length, nulls, offs, data), nil

	case arrow.UTF8_VIEW, arrow.BINARY_VIEW:
		views, err := cur.nextBuffer(rb, body)
		if err != nil {
			return nil, err
		}
		nbuf, err := cur.nextVariadicCount(rb)
		if err != nil {
			return nil, err
		}
		dataBufs := make([]*memory.Buffer, nbuf)
		for i := range dataBufs {
			dataBufs[i], err = cur.nextBuffer(rb, body)
			if err != nil {
				return nil, err
			}
		}
		if dtype.ID() == arrow.UTF8_VIEW {
			return array.NewStringViewArray(0, length, nulls, views, dataBufs), nil
		}
		return array.NewBinaryViewArray(0, length, nulls, views, dataBufs), nil

	case arrow.FIXED_SIZE_BINARY:
		fsbt, ok := dtype.(*arrow.FixedSizeBinaryType)
		if !ok {
			return nil, invalidData("ipc: field %q has id FIXED_SIZE_BINARY but wrong Go type", field.Name)
		}
		data, err := cur.nextBuffer(rb, body)
		if err != nil {
			return nil, err
		}
		return array.NewFixedSizeBinary(fsbt, 0, length, nulls, data), nil

	case arrow.STRUCT:
		st, ok := dtype.(*arrow.StructType)
		if !ok {
			return nil, invalidData("ipc: field %q has id STRUCT but wrong Go type", field.Name)
		}
		children := make([]arrow.Array, st.NumFields())
		for i, cf := range st.Fields() {
			child, err := buildArray(cf, body, rb, cur, depth-1)
			if err != nil {
				for _, c := range children[:i] {
					c.Release()
				}
				return nil, err
			}
			children[i] = child
		}
		return array.NewStruct(st, 0, length, nulls, children), nil

	case arrow.LIST:
		lt, ok := dtype.(*arrow.ListType)
		if !ok {
			return nil, invalidData("ipc: field %q has id LIST but wrong Go type", field.Name)
		}
		offs, err := cur.nextBuffer(rb, body)
		if err != nil {
			return nil, err
		}
		child, err := buildArray(lt.Elem(), body, rb, cur, depth-1)
		if err != nil {
			return nil, err
		}
		return array.NewList(lt.Elem(), 0, length, nulls, offs, child), nil

	case arrow.LARGE_LIST:
		lt, ok := dtype.(*arrow.LargeListType)
		if !ok {
			return nil, invalidData("ipc: field %q has id LARGE_LIST but wrong Go type", field.Name)
		}
		offs, err := cur.nextBuffer(rb, body)
		if err != nil {
			return nil, err
		}
		child, err := buildArray(lt.Elem(), body, rb, cur, depth-1)
		if err != nil {
			return nil, err
		}
		return array.NewLargeList(lt.Elem(), 0, length, nulls, offs, child), nil

	case arrow.FIXED_SIZE_LIST:
		flt, ok := dtype.(*arrow.FixedSizeListType)
		if !ok {
			return nil, invalidData("ipc: field %q has id FIXED_SIZE_LIST but wrong Go type", field.Name)
		}
		child, err := buildArray(flt.Elem(), body, rb, cur, depth-1)
		if err != nil {
			return nil, err
		}
		return array.NewFixedSizeList(flt, 0, length, nulls, child), nil

	case arrow.MAP:
		mt, ok := dtype.(*arrow.MapType)
		if !ok {
			return nil, invalidData("ipc: field %q has id MAP but wrong Go type", field.Name)
		}
		offs, err := cur.nextBuffer(rb, body)
		if err != nil {
			return nil, err
		}
		entryArr, err := buildArray(mt.Entry(), body, rb, cur, depth-1)
		if err != nil {
			return nil, err
		}
		entryStruct, ok := entryArr.(*array.Struct)
		if !ok {
			entryArr.Release()
			return nil, invalidData("ipc: map entry field %q did not decode to a struct", field.Name)
		}
		return array.NewMap(mt, 0, length, nulls, offs, entryStruct), nil

	default:
		return nil, arrow.NewError(arrow.UnsupportedType, "ipc: unsupported field type %s for field %q", dtype, field.Name)
	}
}

func buildFixedWidth[T any](dtype arrow.DataType, length int, nulls array.NullBuffer, rb *flatbuf.RecordBatch, body []byte, cur *readCursor) (arrow.Array, error) {
	values, err := cur.nextBuffer(rb, body)
	if err != nil {
		return nil, err
	}
	return array.NewFixedWidthArray[T](dtype, 0, length, nulls, values), nil
}

func buildVarLenBuffers(rb *flatbuf.RecordBatch, body []byte, cur *readCursor) (offs, data *memory.Buffer, err error) {
	offs, err = cur.nextBuffer(rb, body)
	if err != nil {
		return nil, nil, err
	}
	data, err = cur.nextBuffer(rb, body)
	if err != nil {
		return nil, nil, err
	}
	return offs, data, nil
}

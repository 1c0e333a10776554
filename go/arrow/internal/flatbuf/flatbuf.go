// Package flatbuf is the hand-built metadata envelope for the IPC file
// format (spec §6): a closed set of FlatBuffers tables covering exactly
// the Schema/Field/RecordBatch/Footer shapes the reader and writer need to
// agree on. Nested ArrowType variants are flattened into one TypeInfo
// table carrying every type-specific parameter (byte width, precision,
// scale, time unit, timezone, list size) tagged by Type, rather than
// reproducing the full per-type union the upstream Arrow flatbuffers
// schema defines; the core treats this envelope as a black box, so only
// round-trip fidelity between this package's own writer and reader
// matters, not wire compatibility with another Arrow implementation.
//
// Built directly against github.com/google/flatbuffers/go, following the
// table layout generated flatbuffers bindings use (StartObject/Add*Slot/
// EndObject to write, Table.Offset/Get*/Vector/Indirect to read).
package flatbuf

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// MessageHeader tags which variant a Message's header offset points to.
type MessageHeader uint8

const (
	MessageHeaderSchema MessageHeader = iota
	MessageHeaderRecordBatch
)

// --- KeyValue ---------------------------------------------------------

type KeyValue struct{ _tab flatbuffers.Table }

func GetRootAsKeyValue(buf []byte, offset flatbuffers.UOffsetT) *KeyValue {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &KeyValue{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *KeyValue) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *KeyValue) Key() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *KeyValue) Value() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func KeyValueStart(b *flatbuffers.Builder) { b.StartObject(2) }
func KeyValueAddKey(b *flatbuffers.Builder, key flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, key, 0)
}
func KeyValueAddValue(b *flatbuffers.Builder, value flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, value, 0)
}
func KeyValueEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// --- TypeInfo -----------------------------------------------------------

// TypeInfo carries every scalar parameter any ArrowType variant needs
// (spec §3.1); which fields are meaningful is determined by Id.
type TypeInfo struct{ _tab flatbuffers.Table }

func GetRootAsTypeInfo(buf []byte, offset flatbuffers.UOffsetT) *TypeInfo {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &TypeInfo{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *TypeInfo) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *TypeInfo) Id() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *TypeInfo) ByteWidth() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *TypeInfo) Precision() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *TypeInfo) Scale() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *TypeInfo) Unit() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *TypeInfo) Timezone() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}
func (rcv *TypeInfo) ListSize() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *TypeInfo) KeysSorted() bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		return rcv._tab.GetBool(o + rcv._tab.Pos)
	}
	return false
}

func TypeInfoStart(b *flatbuffers.Builder) { b.StartObject(8) }
func TypeInfoAddId(b *flatbuffers.Builder, id uint8) {
	b.PrependUint8Slot(0, id, 0)
}
func TypeInfoAddByteWidth(b *flatbuffers.Builder, v int32) { b.PrependInt32Slot(1, v, 0) }
func TypeInfoAddPrecision(b *flatbuffers.Builder, v int32) { b.PrependInt32Slot(2, v, 0) }
func TypeInfoAddScale(b *flatbuffers.Builder, v int32)     { b.PrependInt32Slot(3, v, 0) }
func TypeInfoAddUnit(b *flatbuffers.Builder, v uint8)      { b.PrependUint8Slot(4, v, 0) }
func TypeInfoAddTimezone(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(5, v, 0)
}
func TypeInfoAddListSize(b *flatbuffers.Builder, v int32) { b.PrependInt32Slot(6, v, 0) }
func TypeInfoAddKeysSorted(b *flatbuffers.Builder, v bool) {
	b.PrependBoolSlot(7, v, false)
}
func TypeInfoEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// --- Field ---------------------------------------------------------------

type Field struct{ _tab flatbuffers.Table }

func GetRootAsField(buf []byte, offset flatbuffers.UOffsetT) *Field {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Field{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Field) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Field) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}
func (rcv *Field) Nullable() bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetBool(o + rcv._tab.Pos)
	}
	return false
}
func (rcv *Field) Type(obj *TypeInfo) *TypeInfo {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(TypeInfo)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}
func (rcv *Field) ChildrenLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *Field) Children(obj *Field, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}
func (rcv *Field) CustomMetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *Field) CustomMetadata(obj *KeyValue, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func FieldStart(b *flatbuffers.Builder) { b.StartObject(5) }
func FieldAddName(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, v, 0)
}
func FieldAddNullable(b *flatbuffers.Builder, v bool) { b.PrependBoolSlot(1, v, false) }
func FieldAddType(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func FieldAddChildren(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, v, 0)
}
func FieldStartChildrenVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
func FieldAddCustomMetadata(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(4, v, 0)
}
func FieldStartCustomMetadataVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
func FieldEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// --- Schema ---------------------------------------------------------------

type Schema struct{ _tab flatbuffers.Table }

func GetRootAsSchema(buf []byte, offset flatbuffers.UOffsetT) *Schema {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Schema{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Schema) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Schema) FieldsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *Schema) Fields(obj *Field, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}
func (rcv *Schema) CustomMetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *Schema) CustomMetadata(obj *KeyValue, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func SchemaStart(b *flatbuffers.Builder) { b.StartObject(2) }
func SchemaAddFields(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, v, 0)
}
func SchemaStartFieldsVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
func SchemaAddCustomMetadata(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func SchemaStartCustomMetadataVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
func SchemaEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// --- FieldNode / Buffer (per-array-chunk metadata) -----------------------

// FieldNode is one array's {length, null_count} (spec §4.5); modeled as a
// table rather than the upstream's inline struct for a simpler builder.
type FieldNode struct{ _tab flatbuffers.Table }

func GetRootAsFieldNode(buf []byte, offset flatbuffers.UOffsetT) *FieldNode {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &FieldNode{}
	x.Init(buf, n+offset)
	return x
}
func (rcv *FieldNode) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *FieldNode) Length() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *FieldNode) NullCount() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func FieldNodeStart(b *flatbuffers.Builder) { b.StartObject(2) }
func FieldNodeAddLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func FieldNodeAddNullCount(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(1, v, 0)
}
func FieldNodeEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// Buffer is one physical buffer's {offset, length} within the body (spec
// §4.5).
type Buffer struct{ _tab flatbuffers.Table }

func GetRootAsBuffer(buf []byte, offset flatbuffers.UOffsetT) *Buffer {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Buffer{}
	x.Init(buf, n+offset)
	return x
}
func (rcv *Buffer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Buffer) Offset() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *Buffer) Length() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func BufferStart(b *flatbuffers.Builder) { b.StartObject(2) }
func BufferAddOffset(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func BufferAddLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(1, v, 0)
}
func BufferEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// --- RecordBatch -----------------------------------------------------------

type RecordBatch struct{ _tab flatbuffers.Table }

func GetRootAsRecordBatch(buf []byte, offset flatbuffers.UOffsetT) *RecordBatch {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &RecordBatch{}
	x.Init(buf, n+offset)
	return x
}
func (rcv *RecordBatch) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *RecordBatch) Length() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *RecordBatch) NodesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *RecordBatch) Nodes(obj *FieldNode, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}
func (rcv *RecordBatch) BuffersLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *RecordBatch) Buffers(obj *Buffer, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}
func (rcv *RecordBatch) VariadicBufferCountsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *RecordBatch) VariadicBufferCounts(j int) int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetInt64(a + flatbuffers.UOffsetT(j)*8)
	}
	return 0
}

func RecordBatchStart(b *flatbuffers.Builder) { b.StartObject(4) }
func RecordBatchAddLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func RecordBatchAddNodes(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func RecordBatchStartNodesVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
func RecordBatchAddBuffers(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func RecordBatchStartBuffersVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
func RecordBatchAddVariadicBufferCounts(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, v, 0)
}
func RecordBatchStartVariadicBufferCountsVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(8, n, 8)
}
func RecordBatchEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// --- Message ---------------------------------------------------------------

type Message struct{ _tab flatbuffers.Table }

func GetRootAsMessage(buf []byte, offset flatbuffers.UOffsetT) *Message {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Message{}
	x.Init(buf, n+offset)
	return x
}
func (rcv *Message) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Message) HeaderType() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *Message) HeaderAsSchema() *Schema {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o == 0 {
		return nil
	}
	x := rcv._tab.Indirect(o + rcv._tab.Pos)
	obj := &Schema{}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}
func (rcv *Message) HeaderAsRecordBatch() *RecordBatch {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o == 0 {
		return nil
	}
	x := rcv._tab.Indirect(o + rcv._tab.Pos)
	obj := &RecordBatch{}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}
func (rcv *Message) BodyLength() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func MessageStart(b *flatbuffers.Builder) { b.StartObject(3) }
func MessageAddHeaderType(b *flatbuffers.Builder, v uint8) {
	b.PrependUint8Slot(0, v, 0)
}
func MessageAddHeader(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func MessageAddBodyLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(2, v, 0)
}
func MessageEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// --- Block / Footer ---------------------------------------------------------

// Block is one record batch's {offset, metadata_length, body_length}
// within the file (spec §4.5 Footer).
type Block struct{ _tab flatbuffers.Table }

func GetRootAsBlock(buf []byte, offset flatbuffers.UOffsetT) *Block {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Block{}
	x.Init(buf, n+offset)
	return x
}
func (rcv *Block) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Block) Offset() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *Block) MetaDataLength() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}
func (rcv *Block) BodyLength() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func BlockStart(b *flatbuffers.Builder) { b.StartObject(3) }
func BlockAddOffset(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func BlockAddMetaDataLength(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(1, v, 0)
}
func BlockAddBodyLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(2, v, 0)
}
func BlockEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

type Footer struct{ _tab flatbuffers.Table }

func GetRootAsFooter(buf []byte, offset flatbuffers.UOffsetT) *Footer {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Footer{}
	x.Init(buf, n+offset)
	return x
}
func (rcv *Footer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Footer) Schema(obj *Schema) *Schema {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return nil
	}
	x := rcv._tab.Indirect(o + rcv._tab.Pos)
	if obj == nil {
		obj = new(Schema)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}
func (rcv *Footer) RecordBatchesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}
func (rcv *Footer) RecordBatches(obj *Block, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func FooterStart(b *flatbuffers.Builder) { b.StartObject(2) }
func FooterAddSchema(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, v, 0)
}
func FooterAddRecordBatches(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func FooterStartRecordBatchesVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
func FooterEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

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

// Decimal128/Decimal256 are bitwise-copyable, fixed-width little-endian
// two's-complement payloads (spec §3.1). The on-wire FlatBuffers encoding
// for decimal is not exercised beyond this physical layout (spec §9 open
// question); arithmetic/parsing is out of the core's scope.
type Decimal128 [16]byte
type Decimal256 [32]byte

// Float16 stores an IEEE-754 half-precision bit pattern; conversion to/from
// float32/64 is a computation-kernel concern (out of scope, spec §1).
type Float16 uint16

// Date32 is days since the Unix epoch.
type Date32 int32

// Date64 is milliseconds since the Unix epoch.
type Date64 int64

// Time32 is a time-of-day count in seconds or milliseconds (TimeUnit on
// the field's Time32Type).
type Time32 int32

// Time64 is a time-of-day count in microseconds or nanoseconds.
type Time64 int64

// Timestamp is an instant count per the field's TimestampType unit.
type Timestamp int64

// Duration is a signed elapsed-time count per the field's DurationType unit.
type Duration int64

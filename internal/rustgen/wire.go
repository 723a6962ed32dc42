// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

package rustgen

import (
	"fmt"

	"github.com/ObsidianMinor/protrust/internal/schema"
)

// WireType is the 3-bit encoding shape carried alongside a field number in
// every serialized tag.
type WireType uint32

const (
	WireVarint          WireType = 0
	WireFixed64         WireType = 1
	WireLengthDelimited WireType = 2
	WireStartGroup      WireType = 3
	WireEndGroup        WireType = 4
	WireFixed32         WireType = 5
)

// MaxFieldNumber is the largest legal field number (2^29 - 1).
const MaxFieldNumber = 1<<29 - 1

// WireTypeFor maps a scalar kind to its wire type. A kind outside the
// supported set is a schema precondition violation and fails the run.
func WireTypeFor(k schema.Kind) (WireType, error) {
	switch k {
	case schema.KindFixed64, schema.KindSfixed64, schema.KindDouble:
		return WireFixed64, nil
	case schema.KindFixed32, schema.KindSfixed32, schema.KindFloat:
		return WireFixed32, nil
	case schema.KindInt32, schema.KindInt64,
		schema.KindUint32, schema.KindUint64,
		schema.KindSint32, schema.KindSint64,
		schema.KindBool, schema.KindEnum:
		return WireVarint, nil
	case schema.KindMessage, schema.KindBytes, schema.KindString:
		return WireLengthDelimited, nil
	case schema.KindGroup:
		return WireStartGroup, nil
	default:
		return 0, fmt.Errorf("unknown field kind %v", k)
	}
}

// MakeTag packs a field number and wire type into the tag value written
// before the field's payload.
func MakeTag(number int32, wt WireType) uint32 {
	return uint32(number)<<3 | uint32(wt)
}

// SplitTag recovers the (field number, wire type) pair from a tag value.
func SplitTag(tag uint32) (int32, WireType) {
	return int32(tag >> 3), WireType(tag & 7)
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package opcua

import (
	"math"
	"strconv"

	"github.com/absmach/opcua-cli/pkg/errors"
)

// DataType enumerates the node value types this client can convert to. It
// mirrors the OPC-UA built-in scalar types that carry readable values.
type DataType int

const (
	TypeUnknown DataType = iota
	TypeBoolean
	TypeSByte
	TypeByte
	TypeInt16
	TypeUInt16
	TypeInt32
	TypeUInt32
	TypeInt64
	TypeUInt64
	TypeFloat
	TypeDouble
	TypeString
)

var typeNames = map[DataType]string{
	TypeBoolean: "bool",
	TypeSByte:   "int8",
	TypeByte:    "byte",
	TypeInt16:   "int16",
	TypeUInt16:  "uint16",
	TypeInt32:   "int32",
	TypeUInt32:  "uint32",
	TypeInt64:   "int64",
	TypeUInt64:  "uint64",
	TypeFloat:   "float32",
	TypeDouble:  "float64",
	TypeString:  "string",
}

func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

var errBadBool = errors.New("boolean value must be 0 or 1")

// Convert coerces a raw string to the node's declared data type. Integer
// widths are preserved and range-checked since the write request must carry
// the exact wire type.
func Convert(t DataType, raw string) (interface{}, error) {
	switch t {
	case TypeBoolean:
		switch raw {
		case "0":
			return false, nil
		case "1":
			return true, nil
		default:
			return nil, errors.Wrap(ErrConversion, errBadBool)
		}
	case TypeSByte:
		v, err := strconv.ParseInt(raw, 10, 8)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return int8(v), nil
	case TypeByte:
		v, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return byte(v), nil
	case TypeInt16:
		v, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return int16(v), nil
	case TypeUInt16:
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return uint16(v), nil
	case TypeInt32:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return int32(v), nil
	case TypeUInt32:
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return uint32(v), nil
	case TypeInt64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return v, nil
	case TypeUInt64:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return v, nil
	case TypeFloat:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return float32(v), nil
	case TypeDouble:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrap(ErrConversion, err)
		}
		return v, nil
	case TypeString:
		return raw, nil
	default:
		return nil, errors.Wrap(ErrUnsupportedType, errors.New(t.String()))
	}
}

// Read-back values of floating point nodes may differ from the written
// value after the float32 round trip, so they compare within a relative
// tolerance instead of exactly.
const floatTolerance = 1e-6

// Match reports whether a verification read-back equals the written value.
func Match(written, readBack interface{}) bool {
	switch w := written.(type) {
	case float32:
		r, ok := readBack.(float32)
		return ok && closeEnough(float64(w), float64(r))
	case float64:
		r, ok := readBack.(float64)
		return ok && closeEnough(w, r)
	default:
		return written == readBack
	}
}

func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= largest*floatTolerance
}

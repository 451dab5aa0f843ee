// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package gopcua

import (
	"fmt"
	"testing"

	"github.com/gopcua/opcua/id"
	"github.com/stretchr/testify/assert"

	"github.com/absmach/opcua-cli/opcua"
)

func TestMapDataType(t *testing.T) {
	cases := []struct {
		desc     string
		typeID   uint32
		dataType opcua.DataType
	}{
		{"boolean", id.Boolean, opcua.TypeBoolean},
		{"sbyte", id.SByte, opcua.TypeSByte},
		{"byte", id.Byte, opcua.TypeByte},
		{"int16", id.Int16, opcua.TypeInt16},
		{"uint16", id.UInt16, opcua.TypeUInt16},
		{"int32", id.Int32, opcua.TypeInt32},
		{"uint32", id.UInt32, opcua.TypeUInt32},
		{"int64", id.Int64, opcua.TypeInt64},
		{"uint64", id.UInt64, opcua.TypeUInt64},
		{"float", id.Float, opcua.TypeFloat},
		{"double", id.Double, opcua.TypeDouble},
		{"string", id.String, opcua.TypeString},
		{"datetime is not supported", id.DateTime, opcua.TypeUnknown},
		{"bytestring is not supported", id.ByteString, opcua.TypeUnknown},
		{"structure is not supported", id.Structure, opcua.TypeUnknown},
	}

	for _, tc := range cases {
		dt := mapDataType(tc.typeID)
		assert.Equal(t, tc.dataType, dt, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.dataType, dt))
	}
}

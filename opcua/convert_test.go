// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package opcua_test

import (
	"fmt"
	"testing"

	"github.com/absmach/opcua-cli/opcua"
	"github.com/absmach/opcua-cli/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		desc     string
		dataType opcua.DataType
		raw      string
		value    interface{}
		err      error
	}{
		{
			desc:     "int32 value",
			dataType: opcua.TypeInt32,
			raw:      "17",
			value:    int32(17),
		},
		{
			desc:     "negative int16 value",
			dataType: opcua.TypeInt16,
			raw:      "-42",
			value:    int16(-42),
		},
		{
			desc:     "int16 out of range",
			dataType: opcua.TypeInt16,
			raw:      "70000",
			err:      opcua.ErrConversion,
		},
		{
			desc:     "sbyte value",
			dataType: opcua.TypeSByte,
			raw:      "-5",
			value:    int8(-5),
		},
		{
			desc:     "byte value",
			dataType: opcua.TypeByte,
			raw:      "200",
			value:    byte(200),
		},
		{
			desc:     "uint16 value",
			dataType: opcua.TypeUInt16,
			raw:      "65535",
			value:    uint16(65535),
		},
		{
			desc:     "uint32 value",
			dataType: opcua.TypeUInt32,
			raw:      "4294967295",
			value:    uint32(4294967295),
		},
		{
			desc:     "int64 value",
			dataType: opcua.TypeInt64,
			raw:      "-9223372036854775808",
			value:    int64(-9223372036854775808),
		},
		{
			desc:     "uint64 value",
			dataType: opcua.TypeUInt64,
			raw:      "18446744073709551615",
			value:    uint64(18446744073709551615),
		},
		{
			desc:     "negative value for unsigned type",
			dataType: opcua.TypeUInt32,
			raw:      "-1",
			err:      opcua.ErrConversion,
		},
		{
			desc:     "non-numeric value for integer type",
			dataType: opcua.TypeInt64,
			raw:      "forty-two",
			err:      opcua.ErrConversion,
		},
		{
			desc:     "float value",
			dataType: opcua.TypeFloat,
			raw:      "3.5",
			value:    float32(3.5),
		},
		{
			desc:     "double value",
			dataType: opcua.TypeDouble,
			raw:      "2.25",
			value:    2.25,
		},
		{
			desc:     "non-numeric value for double type",
			dataType: opcua.TypeDouble,
			raw:      "fast",
			err:      opcua.ErrConversion,
		},
		{
			desc:     "boolean true",
			dataType: opcua.TypeBoolean,
			raw:      "1",
			value:    true,
		},
		{
			desc:     "boolean false",
			dataType: opcua.TypeBoolean,
			raw:      "0",
			value:    false,
		},
		{
			desc:     "boolean out of range",
			dataType: opcua.TypeBoolean,
			raw:      "2",
			err:      opcua.ErrConversion,
		},
		{
			desc:     "boolean spelled out",
			dataType: opcua.TypeBoolean,
			raw:      "true",
			err:      opcua.ErrConversion,
		},
		{
			desc:     "string value",
			dataType: opcua.TypeString,
			raw:      "hello",
			value:    "hello",
		},
		{
			desc:     "empty string value",
			dataType: opcua.TypeString,
			raw:      "",
			value:    "",
		},
		{
			desc:     "unknown data type",
			dataType: opcua.TypeUnknown,
			raw:      "17",
			err:      opcua.ErrUnsupportedType,
		},
	}

	for _, tc := range cases {
		value, err := opcua.Convert(tc.dataType, tc.raw)
		if tc.err != nil {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected error %v got %v\n", tc.desc, tc.err, err))
			continue
		}
		assert.NoError(t, err, fmt.Sprintf("%s: unexpected error %v\n", tc.desc, err))
		assert.Equal(t, tc.value, value, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.value, value))
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		desc     string
		written  interface{}
		readBack interface{}
		match    bool
	}{
		{"equal int32", int32(17), int32(17), true},
		{"different int32", int32(17), int32(18), false},
		{"different integer widths", int32(17), int64(17), false},
		{"equal strings", "on", "on", true},
		{"equal booleans", true, true, true},
		{"float32 within tolerance", float32(0.1), float32(0.1), true},
		{"float64 within tolerance", 1.0, 1.0 + 1e-9, true},
		{"float64 outside tolerance", 1.0, 1.1, false},
		{"float32 read back as float64", float32(1.5), 1.5, false},
	}

	for _, tc := range cases {
		match := opcua.Match(tc.written, tc.readBack)
		assert.Equal(t, tc.match, match, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.match, match))
	}
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "int32", opcua.TypeInt32.String())
	assert.Equal(t, "bool", opcua.TypeBoolean.String())
	assert.Equal(t, "unknown", opcua.TypeUnknown.String())
	assert.Equal(t, "unknown", opcua.DataType(255).String())
}

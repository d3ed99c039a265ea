package ev3dev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinDataFormat(t *testing.T) {
	tests := []struct {
		token       string
		expected    BinDataFormat
		expectError bool
	}{
		{token: "u8", expected: U8},
		{token: "s8", expected: S8},
		{token: "u16", expected: U16},
		{token: "s16", expected: S16},
		{token: "s16_be", expected: S16BE},
		{token: "s32", expected: S32},
		{token: "s32_be", expected: S32BE},
		{token: "float", expected: Float32},
		{token: "s64", expectError: true},
		{token: "", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			format, err := ParseBinDataFormat(tc.token)
			if tc.expectError {
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, format)
				assert.Equal(t, tc.token, format.String())
			}
		})
	}
}

func TestBinDataFormatSize(t *testing.T) {
	assert.Equal(t, 1, U8.Size())
	assert.Equal(t, 1, S8.Size())
	assert.Equal(t, 2, U16.Size())
	assert.Equal(t, 2, S16.Size())
	assert.Equal(t, 2, S16BE.Size())
	assert.Equal(t, 4, S32.Size())
	assert.Equal(t, 4, S32BE.Size())
	assert.Equal(t, 4, Float32.Size())
}

func TestDecodeIntsS16(t *testing.T) {
	// Three color components followed by one unfilled value slot.
	data := []byte{0xfc, 0x03, 0x00, 0x02, 0x10, 0x00, 0xff, 0xff}

	values, err := S16.DecodeInts(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{1020, 512, 16}, values)
}

func TestDecodeIntsTable(t *testing.T) {
	tests := []struct {
		name     string
		format   BinDataFormat
		data     []byte
		count    int
		expected []int32
	}{
		{
			name:     "u8",
			format:   U8,
			data:     []byte{0x00, 0x7f, 0xff},
			count:    3,
			expected: []int32{0, 127, 255},
		},
		{
			name:     "s8 negative",
			format:   S8,
			data:     []byte{0xff, 0x80},
			count:    2,
			expected: []int32{-1, -128},
		},
		{
			name:     "u16",
			format:   U16,
			data:     []byte{0xff, 0xff},
			count:    1,
			expected: []int32{65535},
		},
		{
			name:     "s16 negative",
			format:   S16,
			data:     []byte{0xff, 0xff},
			count:    1,
			expected: []int32{-1},
		},
		{
			name:     "s16_be",
			format:   S16BE,
			data:     []byte{0x03, 0xfc},
			count:    1,
			expected: []int32{1020},
		},
		{
			name:     "s32",
			format:   S32,
			data:     []byte{0x78, 0x56, 0x34, 0x12},
			count:    1,
			expected: []int32{0x12345678},
		},
		{
			name:     "s32_be",
			format:   S32BE,
			data:     []byte{0x12, 0x34, 0x56, 0x78},
			count:    1,
			expected: []int32{0x12345678},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := tc.format.DecodeInts(tc.data, tc.count)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, values)
		})
	}
}

func TestDecodeIntsShortData(t *testing.T) {
	_, err := S16.DecodeInts([]byte{0x01, 0x02, 0x03}, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestDecodeNegativeCount(t *testing.T) {
	_, err := S16.DecodeInts([]byte{0x01, 0x02}, -2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")

	_, err = Float32.DecodeFloats([]byte{0x00, 0x00, 0x80, 0x3f}, -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestDecodeIntsFloatUnsupported(t *testing.T) {
	_, err := Float32.DecodeInts([]byte{0, 0, 0x80, 0x3f}, 1)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "float", unsupported.Format)
}

func TestDecodeFloats(t *testing.T) {
	// 1.0 and -2.5 in little-endian IEEE 754.
	data := []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x20, 0xc0}

	values, err := Float32.DecodeFloats(data, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.0, -2.5}, values)
}

func TestDecodeFloatsWrongFormat(t *testing.T) {
	_, err := S16.DecodeFloats([]byte{0x00, 0x00}, 1)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "s16", unsupported.Format)
}

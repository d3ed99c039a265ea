package ev3dev

import (
	"encoding/binary"
	"fmt"
	"math"
)

// BinDataFormat describes the encoding of one value inside a bin_data
// attribute block, as reported by the bin_data_format attribute.
type BinDataFormat int

const (
	// U8 is an unsigned 8-bit integer.
	U8 BinDataFormat = iota
	// S8 is a signed 8-bit integer.
	S8
	// U16 is an unsigned 16-bit integer, little endian.
	U16
	// S16 is a signed 16-bit integer, little endian.
	S16
	// S16BE is a signed 16-bit integer, big endian.
	S16BE
	// S32 is a signed 32-bit integer, little endian.
	S32
	// S32BE is a signed 32-bit integer, big endian.
	S32BE
	// Float32 is an IEEE 754 32-bit floating point number.
	Float32
)

// ParseBinDataFormat maps a bin_data_format token to its format. An
// unknown token fails with a *ParseError.
func ParseBinDataFormat(s string) (BinDataFormat, error) {
	switch s {
	case "u8":
		return U8, nil
	case "s8":
		return S8, nil
	case "u16":
		return U16, nil
	case "s16":
		return S16, nil
	case "s16_be":
		return S16BE, nil
	case "s32":
		return S32, nil
	case "s32_be":
		return S32BE, nil
	case "float":
		return Float32, nil
	}
	return 0, &ParseError{Value: s, Want: "bin_data format"}
}

func (f BinDataFormat) String() string {
	switch f {
	case U8:
		return "u8"
	case S8:
		return "s8"
	case U16:
		return "u16"
	case S16:
		return "s16"
	case S16BE:
		return "s16_be"
	case S32:
		return "s32"
	case S32BE:
		return "s32_be"
	case Float32:
		return "float"
	}
	return fmt.Sprintf("BinDataFormat(%d)", int(f))
}

// Size returns the width in bytes of one encoded value.
func (f BinDataFormat) Size() int {
	switch f {
	case U8, S8:
		return 1
	case U16, S16, S16BE:
		return 2
	}
	return 4
}

// DecodeInts decodes the first count integer values from data. Bytes
// past count*Size() are ignored; they belong to value slots the
// current mode does not fill. Float32 blocks must be decoded with
// DecodeFloats and fail here with an *UnsupportedFormatError.
func (f BinDataFormat) DecodeInts(data []byte, count int) ([]int32, error) {
	if f == Float32 {
		return nil, &UnsupportedFormatError{Format: f.String()}
	}
	if count < 0 {
		return nil, fmt.Errorf("bin_data value count %d is negative", count)
	}

	size := f.Size()
	if len(data) < count*size {
		return nil, fmt.Errorf("bin_data block too short: want %d values of %d bytes, got %d bytes", count, size, len(data))
	}

	values := make([]int32, count)
	for i := range values {
		chunk := data[i*size:]
		switch f {
		case U8:
			values[i] = int32(chunk[0])
		case S8:
			values[i] = int32(int8(chunk[0]))
		case U16:
			values[i] = int32(binary.LittleEndian.Uint16(chunk))
		case S16:
			values[i] = int32(int16(binary.LittleEndian.Uint16(chunk)))
		case S16BE:
			values[i] = int32(int16(binary.BigEndian.Uint16(chunk)))
		case S32:
			values[i] = int32(binary.LittleEndian.Uint32(chunk))
		case S32BE:
			values[i] = int32(binary.BigEndian.Uint32(chunk))
		}
	}
	return values, nil
}

// DecodeFloats decodes the first count 32-bit floats from data. Only
// the Float32 format is a float block; every other format fails with
// an *UnsupportedFormatError.
func (f BinDataFormat) DecodeFloats(data []byte, count int) ([]float32, error) {
	if f != Float32 {
		return nil, &UnsupportedFormatError{Format: f.String()}
	}
	if count < 0 {
		return nil, fmt.Errorf("bin_data value count %d is negative", count)
	}

	size := f.Size()
	if len(data) < count*size {
		return nil, fmt.Errorf("bin_data block too short: want %d values of %d bytes, got %d bytes", count, size, len(data))
	}

	values := make([]float32, count)
	for i := range values {
		bits := binary.LittleEndian.Uint32(data[i*size:])
		values[i] = math.Float32frombits(bits)
	}
	return values, nil
}

package domain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// Windows GDI enumerants serialized into LOGFONTW records and registry
// values. The numeric values are a wire contract and must not change.

// FontWeight is the weight of the font in the range 0 through 1000.
// 400 is normal and 700 is bold.
type FontWeight int32

const (
	WeightDontCare   FontWeight = 0
	WeightThin       FontWeight = 100
	WeightExtraLight FontWeight = 200
	WeightLight      FontWeight = 300
	WeightNormal     FontWeight = 400
	WeightMedium     FontWeight = 500
	WeightSemiBold   FontWeight = 600
	WeightBold       FontWeight = 700
	WeightExtraBold  FontWeight = 800
	WeightBlack      FontWeight = 900
)

// CharacterSet selects the font character set.
type CharacterSet uint8

// DefaultCharset selects the character set based on the system locale.
const DefaultCharset CharacterSet = 1

// OutputPrecision controls how closely the output must match the requested
// font attributes.
type OutputPrecision uint8

// OutDefaultPrecis specifies the default font mapper behaviour.
const OutDefaultPrecis OutputPrecision = 0

// ClipPrecision defines how to clip characters partially outside the
// clipping region.
type ClipPrecision uint8

// ClipDefaultPrecis specifies default clipping behaviour.
const ClipDefaultPrecis ClipPrecision = 0

// FontQuality controls output quality.
type FontQuality uint8

// DefaultQuality means the appearance of the font does not matter.
const DefaultQuality FontQuality = 0

// FontPitch occupies the two low-order bits of lfPitchAndFamily.
type FontPitch uint8

const VariablePitch FontPitch = 0x02

// FontFamily occupies bits 4 through 7 of lfPitchAndFamily.
type FontFamily uint8

// FamilySwiss means proportional stroke width without serifs.
const FamilySwiss FontFamily = 0x20

// FaceNameSize is the size in bytes of the fixed lfFaceName field
// (LF_FULLFACESIZE UTF-16 code units).
const FaceNameSize = 64

// LogFontSize is the encoded size of a LogFont record: five 32-bit fields,
// eight single bytes, then the 64-byte face name.
const LogFontSize = 4*5 + 8 + FaceNameSize

// LogFont mirrors the Windows LOGFONTW structure.
type LogFont struct {
	Height         int32
	Width          int32
	Escapement     int32
	Orientation    int32
	Weight         FontWeight
	Italic         bool
	Underline      bool
	StrikeOut      bool
	CharSet        CharacterSet
	OutPrecision   OutputPrecision
	ClipPrecision  ClipPrecision
	Quality        FontQuality
	PitchAndFamily uint8
	FaceName       string
}

// Encode serializes the record into its fixed 92-byte little-endian layout.
// Face names whose UTF-16LE encoding exceeds 64 bytes are rejected rather
// than truncated.
func (f LogFont) Encode() ([]byte, error) {
	units := utf16.Encode([]rune(f.FaceName))
	if len(units)*2 > FaceNameSize {
		return nil, fmt.Errorf("face name %q exceeds %d bytes in UTF-16LE", f.FaceName, FaceNameSize)
	}

	buf := bytes.NewBuffer(make([]byte, 0, LogFontSize))
	for _, v := range []int32{f.Height, f.Width, f.Escapement, f.Orientation, int32(f.Weight)} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}
	buf.Write([]byte{
		boolByte(f.Italic),
		boolByte(f.Underline),
		boolByte(f.StrikeOut),
		uint8(f.CharSet),
		uint8(f.OutPrecision),
		uint8(f.ClipPrecision),
		uint8(f.Quality),
		f.PitchAndFamily,
	})
	face := make([]byte, FaceNameSize)
	for i, u := range units {
		binary.LittleEndian.PutUint16(face[i*2:], u)
	}
	buf.Write(face)
	return buf.Bytes(), nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

package domain_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

func notoLogFont(weight domain.FontWeight) domain.LogFont {
	return domain.LogFont{
		Height:         -12,
		Weight:         weight,
		CharSet:        domain.DefaultCharset,
		OutPrecision:   domain.OutDefaultPrecis,
		ClipPrecision:  domain.ClipDefaultPrecis,
		Quality:        domain.DefaultQuality,
		PitchAndFamily: uint8(domain.VariablePitch) | uint8(domain.FamilySwiss),
		FaceName:       "Noto Sans",
	}
}

func TestLogFontEncodeLayout(t *testing.T) {
	record, err := notoLogFont(domain.WeightNormal).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(record) != domain.LogFontSize {
		t.Fatalf("got %d bytes, want %d", len(record), domain.LogFontSize)
	}

	wantInts := []int32{-12, 0, 0, 0, 400}
	for i, want := range wantInts {
		got := int32(binary.LittleEndian.Uint32(record[i*4:]))
		if got != want {
			t.Errorf("int field %d = %d, want %d", i, got, want)
		}
	}

	// Italic, underline, strikeout, charset, out precision, clip precision,
	// quality, pitch and family.
	wantBytes := []byte{0, 0, 0, 1, 0, 0, 0, 0x22}
	if !bytes.Equal(record[20:28], wantBytes) {
		t.Errorf("flag bytes = %v, want %v", record[20:28], wantBytes)
	}

	wantFace := make([]byte, domain.FaceNameSize)
	copy(wantFace, []byte{
		'N', 0, 'o', 0, 't', 0, 'o', 0, ' ', 0, 'S', 0, 'a', 0, 'n', 0, 's', 0,
	})
	if !bytes.Equal(record[28:], wantFace) {
		t.Errorf("face name bytes = %v, want %v", record[28:], wantFace)
	}
}

func TestLogFontEncodeBoldWeight(t *testing.T) {
	record, err := notoLogFont(domain.WeightBold).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := int32(binary.LittleEndian.Uint32(record[16:])); got != 700 {
		t.Errorf("weight = %d, want 700", got)
	}
}

func TestLogFontEncodeDeterministic(t *testing.T) {
	first, err := notoLogFont(domain.WeightNormal).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	second, err := notoLogFont(domain.WeightNormal).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated encodings differ")
	}
}

func TestLogFontEncodeRejectsLongFaceName(t *testing.T) {
	font := notoLogFont(domain.WeightNormal)
	font.FaceName = strings.Repeat("x", 33) // 66 bytes in UTF-16LE
	if _, err := font.Encode(); err == nil {
		t.Fatal("expected error for face name longer than 64 bytes")
	}
}

func TestLogFontEncodeMaximumFaceName(t *testing.T) {
	font := notoLogFont(domain.WeightNormal)
	font.FaceName = strings.Repeat("x", 32) // exactly 64 bytes
	record, err := font.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(record) != domain.LogFontSize {
		t.Fatalf("got %d bytes, want %d", len(record), domain.LogFontSize)
	}
}

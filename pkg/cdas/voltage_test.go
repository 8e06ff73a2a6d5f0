// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"errors"
	"math"
	"testing"
)

func TestEncodeVoltage_Anchors(t *testing.T) {
	tests := []struct {
		name  string
		volts float64
		want  [2]byte
	}{
		{"zero", 0.0, [2]byte{0x80, 0x80}},
		{"full-scale positive", 5.0, [2]byte{0xBF, 0xFF}},
		{"full-scale negative", -5.0, [2]byte{0xC0, 0x81}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeVoltage(tt.volts)
			if err != nil {
				t.Fatalf("EncodeVoltage(%v): %v", tt.volts, err)
			}
			if got != tt.want {
				t.Errorf("EncodeVoltage(%v) = %02X %02X, want %02X %02X",
					tt.volts, got[0], got[1], tt.want[0], tt.want[1])
			}

			back, err := DecodeVoltage(got[0], got[1])
			if err != nil {
				t.Fatalf("DecodeVoltage(%02X, %02X): %v", got[0], got[1], err)
			}
			if back != tt.volts {
				t.Errorf("round trip of anchor %v = %v, want exact", tt.volts, back)
			}
		})
	}
}

func TestEncodeVoltage_OutOfRange(t *testing.T) {
	for _, volts := range []float64{5.001, -5.001, 12.0, -12.0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := EncodeVoltage(volts); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("EncodeVoltage(%v) error = %v, want ErrOutOfRange", volts, err)
		}
	}
}

func TestEncodeVoltage_Bit7AlwaysSet(t *testing.T) {
	for volts := -5.0; volts <= 5.0; volts += 0.0625 {
		field, err := EncodeVoltage(volts)
		if err != nil {
			t.Fatalf("EncodeVoltage(%v): %v", volts, err)
		}
		if field[0]&0x80 == 0 || field[1]&0x80 == 0 {
			t.Fatalf("EncodeVoltage(%v) = %02X %02X: bit 7 clear", volts, field[0], field[1])
		}
	}
}

func TestDecodeVoltage_InvalidField(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo byte
	}{
		{"both clear", 0x3F, 0x7F},
		{"high clear", 0x3F, 0xFF},
		{"low clear", 0xBF, 0x7F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeVoltage(tt.hi, tt.lo); !errors.Is(err, ErrInvalidField) {
				t.Errorf("DecodeVoltage(%02X, %02X) error = %v, want ErrInvalidField",
					tt.hi, tt.lo, err)
			}
		})
	}
}

func TestVoltage_RoundTripWithinQuantization(t *testing.T) {
	for volts := -5.0; volts <= 5.0; volts += 0.01 {
		field, err := EncodeVoltage(volts)
		if err != nil {
			t.Fatalf("EncodeVoltage(%v): %v", volts, err)
		}
		back, err := DecodeVoltage(field[0], field[1])
		if err != nil {
			t.Fatalf("DecodeVoltage(%02X, %02X): %v", field[0], field[1], err)
		}
		if math.Abs(back-volts) > VoltsPerCount/2 {
			t.Fatalf("round trip of %v = %v, off by more than half a count", volts, back)
		}
	}
}

func TestInt14_RoundTripFullRange(t *testing.T) {
	for count := Int14Min; count <= Int14Max; count++ {
		field, err := EncodeInt14(count)
		if err != nil {
			t.Fatalf("EncodeInt14(%d): %v", count, err)
		}
		back, err := DecodeInt14(field[0], field[1])
		if err != nil {
			t.Fatalf("DecodeInt14(%02X, %02X): %v", field[0], field[1], err)
		}
		if back != count {
			t.Fatalf("EncodeInt14(%d) round trip = %d", count, back)
		}
	}
}

func TestEncodeInt14_Bounds(t *testing.T) {
	for _, count := range []int{Int14Max + 1, Int14Min - 1, 1 << 20, -(1 << 20)} {
		if _, err := EncodeInt14(count); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("EncodeInt14(%d) error = %v, want ErrOutOfRange", count, err)
		}
	}
}

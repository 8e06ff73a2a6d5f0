// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"fmt"
	"math"
)

// Voltage fields are 14-bit two's complement integers split across two
// bytes with bit 7 forced high on each, so a field byte can never collide
// with SOM, EOM or XON/XOFF. The byte packing is explicit: the high byte
// carries counts bits 13..7, the low byte bits 6..0.

// EncodeInt14 packs a 14-bit two's complement count into its two wire
// bytes. The count must lie in [Int14Min, Int14Max].
func EncodeInt14(count int) ([2]byte, error) {
	if count < Int14Min || count > Int14Max {
		return [2]byte{}, fmt.Errorf("%w: count %d outside [%d, %d]",
			ErrOutOfRange, count, Int14Min, Int14Max)
	}
	return [2]byte{
		0x80 | byte((count>>7)&0x7F),
		0x80 | byte(count&0x7F),
	}, nil
}

// DecodeInt14 unpacks two wire bytes into a 14-bit two's complement
// count. Both bytes must have bit 7 set.
func DecodeInt14(hi, lo byte) (int, error) {
	if hi&0x80 == 0 || lo&0x80 == 0 {
		return 0, fmt.Errorf("%w: bit 7 clear in %02X %02X", ErrInvalidField, hi, lo)
	}
	count := int(hi&0x7F)<<7 | int(lo&0x7F)
	if count > Int14Max {
		count -= 1 << 14 // sign extend
	}
	return count, nil
}

// EncodeVoltage converts a channel voltage in [-5V, +5V] to its 2-byte
// field. The mapping is linear at 8191 counts per 5 volts: 0V encodes to
// 0x80 0x80, full-scale +5V to 0xBF 0xFF.
func EncodeVoltage(volts float64) ([2]byte, error) {
	if math.IsNaN(volts) || volts < VoltageMin || volts > VoltageMax {
		return [2]byte{}, fmt.Errorf("%w: %.3fV outside [%.0fV, %.0fV]",
			ErrOutOfRange, volts, VoltageMin, VoltageMax)
	}
	count := int(math.Round(volts * Int14Max / VoltageMax))
	return EncodeInt14(count)
}

// DecodeVoltage is the inverse of EncodeVoltage, within the quantization
// step of the 14-bit range. Fails if either byte has bit 7 clear.
func DecodeVoltage(hi, lo byte) (float64, error) {
	count, err := DecodeInt14(hi, lo)
	if err != nil {
		return 0, err
	}
	// Multiply before dividing so the three documented anchors survive
	// the round trip exactly.
	return float64(count) * VoltageMax / Int14Max, nil
}

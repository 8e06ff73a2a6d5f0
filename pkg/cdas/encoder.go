// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"bytes"
	"fmt"
)

// EncodeFrame builds a complete wire frame from a variant, its ordered
// field voltages and a status string:
//
//	[SOM][ID][field bytes...][status][CKSUM][EOM]
//
// The field count must match the variant's documented layout and the
// status must end with '\n'. Pure function; no state across calls.
func EncodeFrame(variant Variant, fields []float64, status []byte) ([]byte, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownVariant, byte(variant))
	}
	if len(fields) != variant.FieldCount() {
		return nil, fmt.Errorf("%w: variant %s expects %d fields, got %d",
			ErrFieldCountMismatch, variant, variant.FieldCount(), len(fields))
	}
	if len(status) == 0 || !bytes.HasSuffix(status, []byte{'\n'}) {
		return nil, fmt.Errorf("%w: %q not newline-terminated", ErrInvalidStatus, status)
	}

	data := make([]byte, 0, 1+2*len(fields)+len(status))
	data = append(data, byte(variant))
	for i, volts := range fields {
		field, err := EncodeVoltage(volts)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", variant.FieldNames()[i], err)
		}
		data = append(data, field[0], field[1])
	}
	data = append(data, status...)

	frame := make([]byte, 0, len(data)+3)
	frame = append(frame, SOM)
	frame = append(frame, data...)
	frame = append(frame, Checksum(data), EOM)
	return frame, nil
}

// EncodePacket encodes a Packet back to wire format.
func EncodePacket(p *Packet) ([]byte, error) {
	return EncodeFrame(p.variant, p.fields, p.status)
}

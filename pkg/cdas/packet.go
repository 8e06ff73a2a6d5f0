// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"fmt"
	"strings"
	"time"
)

// Packet represents a decoded CDAS physiology-data packet. A packet is
// built fresh for each transmission tick and has no persistent identity.
type Packet struct {
	variant   Variant
	fields    []float64
	status    []byte
	timestamp time.Time
}

// NewPacket creates a packet from a variant, its ordered field voltages
// and a status string. The field count must match the variant's layout
// and the status must end with '\n'.
func NewPacket(variant Variant, fields []float64, status string) (*Packet, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownVariant, byte(variant))
	}
	if len(fields) != variant.FieldCount() {
		return nil, fmt.Errorf("%w: variant %s expects %d fields, got %d",
			ErrFieldCountMismatch, variant, variant.FieldCount(), len(fields))
	}
	if !strings.HasSuffix(status, "\n") {
		return nil, fmt.Errorf("%w: %q not newline-terminated", ErrInvalidStatus, status)
	}
	return &Packet{
		variant:   variant,
		fields:    append([]float64(nil), fields...),
		status:    []byte(status),
		timestamp: time.Now(),
	}, nil
}

// Variant returns the packet's layout ID.
func (p *Packet) Variant() Variant {
	return p.variant
}

// Fields returns the packet's field voltages in wire order.
func (p *Packet) Fields() []float64 {
	return append([]float64(nil), p.fields...)
}

// Status returns the packet's raw status bytes.
func (p *Packet) Status() []byte {
	return append([]byte(nil), p.status...)
}

// Timestamp returns the packet's decode or construction time.
func (p *Packet) Timestamp() time.Time {
	return p.timestamp
}

// ECGX returns the ECG X voltage. Present in every variant.
func (p *Packet) ECGX() float64 {
	return p.fields[0]
}

// ECGY returns the ECG Y voltage. Present in every variant.
func (p *Packet) ECGY() float64 {
	return p.fields[1]
}

// ECGZ returns the ECG Z voltage and whether the variant carries it.
func (p *Packet) ECGZ() (float64, bool) {
	if p.variant == VariantECG3 || p.variant == VariantECG3Phys {
		return p.fields[2], true
	}
	return 0, false
}

// PPU returns the peripheral pulse voltage and whether the variant carries it.
func (p *Packet) PPU() (float64, bool) {
	switch p.variant {
	case VariantECGPhys:
		return p.fields[2], true
	case VariantECG3Phys:
		return p.fields[3], true
	}
	return 0, false
}

// Resp returns the respiration voltage and whether the variant carries it.
func (p *Packet) Resp() (float64, bool) {
	switch p.variant {
	case VariantECGPhys:
		return p.fields[3], true
	case VariantECG3Phys:
		return p.fields[4], true
	}
	return 0, false
}

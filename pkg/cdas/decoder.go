// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"fmt"
	"time"
)

// Parse validates and decodes a complete wire frame. It checks framing
// (SOM first, EOM last), the variant ID, the minimum length for the
// declared variant, the checksum, and finally the field and status
// contents. Checksum verification runs before content decoding so a
// corrupted frame reports ErrChecksumMismatch rather than whichever
// field the corruption happened to land in.
func Parse(buf []byte) (*Packet, error) {
	// SOM + ID + '\n' + CKSUM + EOM is the absolute floor.
	if len(buf) < 5 {
		return nil, fmt.Errorf("%w: frame too short (%d bytes)", ErrFramingError, len(buf))
	}
	if buf[0] != SOM {
		return nil, fmt.Errorf("%w: missing SOM (got 0x%02X)", ErrFramingError, buf[0])
	}
	if buf[len(buf)-1] != EOM {
		return nil, fmt.Errorf("%w: missing EOM (got 0x%02X)", ErrFramingError, buf[len(buf)-1])
	}
	data := buf[1 : len(buf)-2]
	cksum := buf[len(buf)-2]
	if !VerifyChecksum(data, cksum) {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X",
			ErrChecksumMismatch, Checksum(data), cksum)
	}

	variant := Variant(data[0])
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownVariant, data[0])
	}

	// SOM + ID + fields + status(>=1) + CKSUM + EOM
	minLen := 1 + 1 + 2*variant.FieldCount() + 1 + 1 + 1
	if len(buf) < minLen {
		return nil, fmt.Errorf("%w: %d bytes, variant %s needs at least %d",
			ErrFramingError, len(buf), variant, minLen)
	}

	fields := make([]float64, variant.FieldCount())
	for i := range fields {
		hi, lo := data[1+2*i], data[2+2*i]
		volts, err := DecodeVoltage(hi, lo)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", variant.FieldNames()[i], err)
		}
		fields[i] = volts
	}

	status := data[1+2*variant.FieldCount():]
	if status[len(status)-1] != '\n' {
		return nil, fmt.Errorf("%w: %q not newline-terminated", ErrInvalidStatus, status)
	}

	return &Packet{
		variant:   variant,
		fields:    fields,
		status:    append([]byte(nil), status...),
		timestamp: time.Now(),
	}, nil
}

// Decoder implements a streaming CDAS packet decoder state machine for
// use against a live byte source. It resynchronizes on SOM, so it can
// join a frame stream mid-flight.
type Decoder struct {
	state       int
	variant     Variant
	data        []byte
	fieldBytes  int // field bytes still expected
	statusBytes int
	cksum       byte
}

// NewDecoder creates a new streaming decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		state: stateIdle,
		data:  make([]byte, 0, MaxFrameSize),
	}
}

// Reset returns the decoder to idle, discarding any partial frame.
func (d *Decoder) Reset() {
	d.state = stateIdle
	d.variant = 0
	d.data = d.data[:0]
	d.fieldBytes = 0
	d.statusBytes = 0
	d.cksum = 0
}

// DecodeByte processes a single byte through the decoder state machine.
// It returns a completed packet, or nil while the frame is incomplete.
// A SOM byte always starts a new frame, discarding any partial one.
func (d *Decoder) DecodeByte(b byte) (*Packet, error) {
	if b == SOM {
		d.Reset()
		d.state = stateVariant
		return nil, nil
	}

	if b == EOM {
		if d.state != stateEnd {
			state := d.state
			d.Reset()
			if state == stateIdle {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: EOM inside frame (state %d)", ErrFramingError, state)
		}
		return d.finish()
	}

	switch d.state {
	case stateIdle:
		// Waiting for SOM.
		return nil, nil

	case stateVariant:
		d.variant = Variant(b)
		if !d.variant.Valid() {
			d.Reset()
			return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownVariant, b)
		}
		d.data = append(d.data, b)
		d.fieldBytes = 2 * d.variant.FieldCount()
		d.state = stateFields
		return nil, nil

	case stateFields:
		d.data = append(d.data, b)
		d.fieldBytes--
		if d.fieldBytes == 0 {
			d.state = stateStatus
		}
		return nil, nil

	case stateStatus:
		if d.statusBytes >= MaxStatusSize {
			d.Reset()
			return nil, fmt.Errorf("%w: unterminated status string", ErrFramingError)
		}
		d.data = append(d.data, b)
		d.statusBytes++
		if b == '\n' {
			d.state = stateChecksum
		}
		return nil, nil

	case stateChecksum:
		d.cksum = b
		d.state = stateEnd
		return nil, nil

	case stateEnd:
		// Only EOM is legal after the checksum byte.
		d.Reset()
		return nil, fmt.Errorf("%w: expected EOM, got 0x%02X", ErrFramingError, b)

	default:
		d.Reset()
		return nil, fmt.Errorf("%w: invalid decoder state", ErrFramingError)
	}
}

// finish validates the buffered frame and builds the packet.
func (d *Decoder) finish() (*Packet, error) {
	defer d.Reset()

	if !VerifyChecksum(d.data, d.cksum) {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X",
			ErrChecksumMismatch, Checksum(d.data), d.cksum)
	}

	fields := make([]float64, d.variant.FieldCount())
	for i := range fields {
		volts, err := DecodeVoltage(d.data[1+2*i], d.data[2+2*i])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", d.variant.FieldNames()[i], err)
		}
		fields[i] = volts
	}

	return &Packet{
		variant:   d.variant,
		fields:    fields,
		status:    append([]byte(nil), d.data[1+2*d.variant.FieldCount():]...),
		timestamp: time.Now(),
	}, nil
}

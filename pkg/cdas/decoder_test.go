// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"errors"
	"testing"
)

// feed pushes a byte slice through the decoder, collecting completed
// packets and errors.
func feed(d *Decoder, stream []byte) ([]*Packet, []error) {
	var packets []*Packet
	var errs []error
	for _, b := range stream {
		p, err := d.DecodeByte(b)
		if err != nil {
			errs = append(errs, err)
		}
		if p != nil {
			packets = append(packets, p)
		}
	}
	return packets, errs
}

func TestDecoder_BackToBackFrames(t *testing.T) {
	stream := append(RestFrame(), TriggerFrame()...)
	stream = append(stream, RestFrame()...)

	packets, errs := feed(NewDecoder(), stream)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(packets) != 3 {
		t.Fatalf("got %d packets, want 3", len(packets))
	}

	if pp, _ := packets[0].PPU(); pp != 0 {
		t.Errorf("frame 0 PPU = %v, want 0V", pp)
	}
	if pp, _ := packets[1].PPU(); pp != VoltageMax {
		t.Errorf("frame 1 PPU = %v, want +5V", pp)
	}
	if pp, _ := packets[2].PPU(); pp != 0 {
		t.Errorf("frame 2 PPU = %v, want 0V", pp)
	}
}

func TestDecoder_JoinsStreamMidFrame(t *testing.T) {
	// The tail of one frame followed by a complete one: the decoder must
	// discard bytes until the next SOM.
	full := TriggerFrame()
	stream := append(full[9:], full...)

	packets, errs := feed(NewDecoder(), stream)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(packets) != 1 {
		t.Fatalf("got %d packets, want 1", len(packets))
	}
}

func TestDecoder_ResyncsOnSOM(t *testing.T) {
	// A frame cut short by the start of the next one: the partial frame
	// is silently dropped, the complete one decodes.
	partial := RestFrame()[:8]
	stream := append(partial, TriggerFrame()...)

	packets, errs := feed(NewDecoder(), stream)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(packets) != 1 {
		t.Fatalf("got %d packets, want 1", len(packets))
	}
	if pp, _ := packets[0].PPU(); pp != VoltageMax {
		t.Errorf("PPU = %v, want +5V", pp)
	}
}

func TestDecoder_EOMInsideFrame(t *testing.T) {
	d := NewDecoder()
	d.DecodeByte(SOM)
	if _, err := d.DecodeByte(0x82); err != nil {
		t.Fatalf("variant byte: %v", err)
	}
	if _, err := d.DecodeByte(EOM); !errors.Is(err, ErrFramingError) {
		t.Errorf("error = %v, want ErrFramingError", err)
	}

	// The decoder must be usable again immediately.
	packets, errs := feed(d, RestFrame())
	if len(errs) != 0 || len(packets) != 1 {
		t.Errorf("after framing error: packets=%d errs=%v, want 1 packet", len(packets), errs)
	}
}

func TestDecoder_UnknownVariant(t *testing.T) {
	d := NewDecoder()
	d.DecodeByte(SOM)
	if _, err := d.DecodeByte(0x42); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("error = %v, want ErrUnknownVariant", err)
	}
}

func TestDecoder_ChecksumMismatch(t *testing.T) {
	frame := RestFrame()
	frame[3] ^= 0x01 // corrupt a field byte

	_, errs := feed(NewDecoder(), frame)
	if len(errs) != 1 || !errors.Is(errs[0], ErrChecksumMismatch) {
		t.Errorf("errors = %v, want one ErrChecksumMismatch", errs)
	}
}

func TestDecoder_UnterminatedStatus(t *testing.T) {
	stream := []byte{SOM, 0x80, 0x80, 0x80, 0x80, 0x80}
	for i := 0; i <= MaxStatusSize; i++ {
		stream = append(stream, 'X')
	}

	_, errs := feed(NewDecoder(), stream)
	if len(errs) != 1 || !errors.Is(errs[0], ErrFramingError) {
		t.Errorf("errors = %v, want one ErrFramingError", errs)
	}
}

func TestDecoder_TrailingGarbageAfterChecksum(t *testing.T) {
	frame := RestFrame()
	stream := append(frame[:len(frame)-1], 0x55) // checksum then junk, no EOM

	_, errs := feed(NewDecoder(), stream)
	if len(errs) != 1 || !errors.Is(errs[0], ErrFramingError) {
		t.Errorf("errors = %v, want one ErrFramingError", errs)
	}
}

func TestDecoder_IdleIgnoresNoise(t *testing.T) {
	noise := []byte{0x00, 0xFF, 0x41, EOM, 0x80}
	packets, errs := feed(NewDecoder(), noise)
	if len(packets) != 0 || len(errs) != 0 {
		t.Errorf("idle decoder produced packets=%d errs=%v", len(packets), errs)
	}
}

func TestDecoder_AgreesWithParse(t *testing.T) {
	frame, err := EncodeFrame(VariantECG3Phys, []float64{1.5, -1.5, 0.75, 5.0, -5.0}, []byte(StatusRESPActive))
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	fromParse, err := Parse(frame)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	packets, errs := feed(NewDecoder(), frame)
	if len(errs) != 0 || len(packets) != 1 {
		t.Fatalf("streaming decode: packets=%d errs=%v", len(packets), errs)
	}

	fromStream := packets[0]
	if fromStream.Variant() != fromParse.Variant() {
		t.Errorf("variant: stream=%s parse=%s", fromStream.Variant(), fromParse.Variant())
	}
	if string(fromStream.Status()) != string(fromParse.Status()) {
		t.Errorf("status: stream=%q parse=%q", fromStream.Status(), fromParse.Status())
	}
	for i := range fromParse.Fields() {
		if fromStream.Fields()[i] != fromParse.Fields()[i] {
			t.Errorf("field %d: stream=%v parse=%v", i, fromStream.Fields()[i], fromParse.Fields()[i])
		}
	}
}

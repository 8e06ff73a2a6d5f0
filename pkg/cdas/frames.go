// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import "fmt"

// The two frames the PPU emulator ever transmits. Both use the
// Vx/Vy/PP/RESP layout with the PPU-active status: the rest frame is the
// idle heartbeat between triggers, the trigger frame carries a
// full-scale pulse on the PP channel.
var (
	restFrame    = mustEncodeFrame(VariantECGPhys, []float64{0, 0, 0, 0})
	triggerFrame = mustEncodeFrame(VariantECGPhys, []float64{0, 0, VoltageMax, 0})
)

func mustEncodeFrame(variant Variant, fields []float64) []byte {
	frame, err := EncodeFrame(variant, fields, []byte(StatusPPUActive))
	if err != nil {
		panic(fmt.Sprintf("cdas: encode canonical frame: %v", err))
	}
	return frame
}

// RestFrame returns the wire image of the idle heartbeat frame
// (all channels 0V). The caller owns the returned slice.
func RestFrame() []byte {
	return append([]byte(nil), restFrame...)
}

// TriggerFrame returns the wire image of a single trigger pulse
// (full-scale +5V on the PP channel). The caller owns the returned slice.
func TriggerFrame() []byte {
	return append([]byte(nil), triggerFrame...)
}

// NewRestPacket builds the idle heartbeat packet: variant 0x82 with
// Vx, Vy, PP and RESP all at 0V, status PPU-active.
func NewRestPacket() *Packet {
	p, err := NewPacket(VariantECGPhys, []float64{0, 0, 0, 0}, StatusPPUActive)
	if err != nil {
		panic(fmt.Sprintf("cdas: build rest packet: %v", err))
	}
	return p
}

// NewTriggerPacket builds a single trigger pulse packet: variant 0x82
// with +5V on the PP channel, status PPU-active.
func NewTriggerPacket() *Packet {
	p, err := NewPacket(VariantECGPhys, []float64{0, 0, VoltageMax, 0}, StatusPPUActive)
	if err != nil {
		panic(fmt.Sprintf("cdas: build trigger packet: %v", err))
	}
	return p
}

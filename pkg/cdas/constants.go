// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

// Package cdas implements the Philips CDAS physiology-data packet protocol.
//
// CDAS is the scanner-side control/trigger interface; a peripheral
// physiology unit (PPU) streams byte-framed packets to it over a serial
// link. This package provides voltage field encoding/decoding, checksum
// calculation, packet framing, and the canonical rest/trigger frames used
// to fire scan triggers.
package cdas

// Protocol framing bytes
const (
	SOM = 0x02 // Start of message
	EOM = 0x0D // End of message
)

// Reserved link-control bytes. The checksum fold must never emit one of
// these, otherwise the frame would collide with framing or software flow
// control (XON/XOFF) on the wire.
const (
	XON  = 0x11
	XOFF = 0x13
)

// 14-bit two's complement voltage field bounds
const (
	Int14Max = 8191
	Int14Min = -8192
)

// Voltage range of a physiology channel, in volts
const (
	VoltageMin = -5.0
	VoltageMax = 5.0
)

// VoltsPerCount is the quantization step of the 14-bit voltage field.
const VoltsPerCount = VoltageMax / Int14Max

// Variant identifies one of the four fixed packet field layouts.
type Variant byte

// Packet variant IDs. ECG X and Y fields are always present; 0x81 and
// 0x83 add ECG Z; 0x82 and 0x83 add the PPU and RESP fields.
const (
	VariantECG      Variant = 0x80 // Vx, Vy
	VariantECG3     Variant = 0x81 // Vx, Vy, Vz
	VariantECGPhys  Variant = 0x82 // Vx, Vy, PP, RESP
	VariantECG3Phys Variant = 0x83 // Vx, Vy, Vz, PP, RESP
)

// Status strings, of the form 'S<SIGNAL>0<MODE>\n'. SIGNAL is V, S or R
// for ECG, PPU and RESP; MODE is 0, 1 or 3 for normal, connected and
// active. (SIGNAL values C and M, nurse call and MEB, exist in the
// vendor documentation but are not emitted by this package.)
const (
	StatusECGNormal     = "SV00\n"
	StatusECGConnected  = "SV01\n"
	StatusECGActive     = "SV03\n"
	StatusPPUNormal     = "SS00\n"
	StatusPPUConnected  = "SS01\n"
	StatusPPUActive     = "SS03\n"
	StatusRESPNormal    = "SR00\n"
	StatusRESPConnected = "SR01\n"
	StatusRESPActive    = "SR03\n"
)

// Frame size limits
const (
	// MaxStatusSize bounds the status suffix when decoding; the
	// documented strings are 5 bytes but the decoder tolerates longer
	// vendor strings up to this limit before declaring a framing error.
	MaxStatusSize = 16

	// MaxFrameSize is the largest well-formed frame: SOM + ID + five
	// 2-byte fields + status + checksum + EOM.
	MaxFrameSize = 1 + 1 + 5*2 + MaxStatusSize + 1 + 1
)

// Decoder states (internal)
const (
	stateIdle = iota
	stateVariant
	stateFields
	stateStatus
	stateChecksum
	stateEnd
)

// FieldCount returns the number of voltage fields for the variant,
// or 0 if the variant ID is not one of the four documented layouts.
func (v Variant) FieldCount() int {
	switch v {
	case VariantECG:
		return 2
	case VariantECG3:
		return 3
	case VariantECGPhys:
		return 4
	case VariantECG3Phys:
		return 5
	}
	return 0
}

// Valid reports whether the variant ID is one of the four documented layouts.
func (v Variant) Valid() bool {
	return v.FieldCount() != 0
}

// FieldNames returns the channel names of the variant's fields, in wire order.
func (v Variant) FieldNames() []string {
	switch v {
	case VariantECG:
		return []string{"Vx", "Vy"}
	case VariantECG3:
		return []string{"Vx", "Vy", "Vz"}
	case VariantECGPhys:
		return []string{"Vx", "Vy", "PP", "RESP"}
	case VariantECG3Phys:
		return []string{"Vx", "Vy", "Vz", "PP", "RESP"}
	}
	return nil
}

// String returns the human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantECG:
		return "ECG"
	case VariantECG3:
		return "ECG_VZ"
	case VariantECGPhys:
		return "ECG_PHYS"
	case VariantECG3Phys:
		return "ECG_VZ_PHYS"
	}
	return "UNKNOWN"
}

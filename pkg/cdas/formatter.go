// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"fmt"
	"strings"
)

// FormatPacket formats a packet into a human-readable string.
func FormatPacket(p *Packet) string {
	timestamp := p.timestamp.Format("15:04:05.000")

	var s strings.Builder
	fmt.Fprintf(&s, "[%s] %s (0x%02X) status=%s\n",
		timestamp, p.variant, byte(p.variant), FormatStatus(p.status))

	names := p.variant.FieldNames()
	for i, volts := range p.fields {
		fmt.Fprintf(&s, "  %-4s % .4fV\n", names[i], volts)
	}
	return s.String()
}

// FormatStatus renders status bytes as a readable name, falling back to
// a quoted literal for strings outside the documented set.
func FormatStatus(status []byte) string {
	switch string(status) {
	case StatusECGNormal:
		return "ECG_NORMAL"
	case StatusECGConnected:
		return "ECG_CONNECTED"
	case StatusECGActive:
		return "ECG_ACTIVE"
	case StatusPPUNormal:
		return "PPU_NORMAL"
	case StatusPPUConnected:
		return "PPU_CONNECTED"
	case StatusPPUActive:
		return "PPU_ACTIVE"
	case StatusRESPNormal:
		return "RESP_NORMAL"
	case StatusRESPConnected:
		return "RESP_CONNECTED"
	case StatusRESPActive:
		return "RESP_ACTIVE"
	}
	return fmt.Sprintf("%q", status)
}

// FormatFrame renders a wire frame as annotated hex, one section per
// line. It assumes (but does not require) a well-formed frame.
func FormatFrame(frame []byte) string {
	var s strings.Builder
	fmt.Fprintf(&s, "  raw: % X\n", frame)

	p, err := Parse(frame)
	if err != nil {
		fmt.Fprintf(&s, "  parse: %v\n", err)
		return s.String()
	}

	fmt.Fprintf(&s, "  SOM=%02X ID=%02X (%s) CKSUM=%02X EOM=%02X\n",
		frame[0], frame[1], p.variant, frame[len(frame)-2], frame[len(frame)-1])
	names := p.variant.FieldNames()
	for i, volts := range p.fields {
		fmt.Fprintf(&s, "  %-4s = % X (% .4fV)\n",
			names[i], frame[2+2*i:4+2*i], volts)
	}
	fmt.Fprintf(&s, "  status = %s\n", FormatStatus(p.status))
	return s.String()
}

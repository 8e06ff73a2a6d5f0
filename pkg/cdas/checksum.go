// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

// Checksum computes the CDAS checksum: a bitwise XOR fold over every
// DATA byte. If the fold lands on a reserved link byte (SOM, EOM, XON,
// XOFF) the one's complement is emitted instead, so a well-formed frame
// stays transparent to framing and software flow control.
func Checksum(data []byte) byte {
	var cksum byte
	for _, b := range data {
		cksum ^= b
	}
	switch cksum {
	case SOM, EOM, XON, XOFF:
		cksum = ^cksum
	}
	return cksum
}

// VerifyChecksum reports whether cksum is the valid checksum for data.
func VerifyChecksum(data []byte, cksum byte) bool {
	return Checksum(data) == cksum
}

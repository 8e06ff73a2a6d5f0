// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import "errors"

// Error classes returned by the codec and framer. All failures are local
// and synchronous; callers decide whether to resynchronize or abort.
// Wrap sites add detail, so classify with errors.Is.
var (
	// ErrOutOfRange means a voltage outside the ±5V channel range.
	ErrOutOfRange = errors.New("voltage out of range")

	// ErrInvalidField means a 2-byte voltage field with bit 7 clear.
	ErrInvalidField = errors.New("invalid voltage field")

	// ErrFieldCountMismatch means the supplied field values do not match
	// the variant's documented layout.
	ErrFieldCountMismatch = errors.New("field count mismatch")

	// ErrInvalidStatus means a status string not terminated by '\n'.
	ErrInvalidStatus = errors.New("invalid status string")

	// ErrFramingError means a missing or misplaced SOM/EOM, or a buffer
	// too short for the declared variant.
	ErrFramingError = errors.New("framing error")

	// ErrChecksumMismatch means the trailing checksum does not match the
	// recomputed fold over DATA.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownVariant means a DATA ID byte outside {0x80..0x83}.
	ErrUnknownVariant = errors.New("unknown packet variant")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatistics_ClassifiesOutcomes(t *testing.T) {
	s := NewStatistics()

	p, err := Parse(RestFrame())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s.Update(p, nil)
	s.Update(nil, fmt.Errorf("wrapped: %w", ErrChecksumMismatch))
	s.Update(nil, fmt.Errorf("wrapped: %w", ErrUnknownVariant))
	s.Update(nil, fmt.Errorf("wrapped: %w", ErrInvalidField))
	s.Update(nil, fmt.Errorf("wrapped: %w", ErrInvalidStatus))
	s.Update(nil, fmt.Errorf("wrapped: %w", ErrFramingError))
	s.Update(nil, errors.New("read failure"))

	if s.TotalFrames != 7 {
		t.Errorf("TotalFrames = %d, want 7", s.TotalFrames)
	}
	if s.ValidFrames != 1 {
		t.Errorf("ValidFrames = %d, want 1", s.ValidFrames)
	}
	if s.ChecksumErrors != 1 || s.UnknownVariants != 1 || s.FieldErrors != 1 || s.StatusErrors != 1 {
		t.Errorf("per-class counters = %d/%d/%d/%d, want 1 each",
			s.ChecksumErrors, s.UnknownVariants, s.FieldErrors, s.StatusErrors)
	}
	if s.FramingErrors != 2 {
		t.Errorf("FramingErrors = %d, want 2 (explicit + unclassified)", s.FramingErrors)
	}
	if s.Errors() != 6 {
		t.Errorf("Errors() = %d, want 6", s.Errors())
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

package cdas

import (
	"errors"
	"fmt"
	"time"
)

// Statistics tracks decoded frame counts and error rates for a receive
// stream.
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	TotalFrames     uint64
	ValidFrames     uint64
	ChecksumErrors  uint64
	FramingErrors   uint64
	UnknownVariants uint64
	FieldErrors     uint64
	StatusErrors    uint64

	// Rates (calculated)
	FrameRate float64 // frames/sec
	ErrorRate float64 // errors/sec
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update records one decode outcome: a packet, or the error that
// replaced it.
func (s *Statistics) Update(packet *Packet, decodeErr error) {
	s.TotalFrames++

	switch {
	case decodeErr == nil && packet != nil:
		s.ValidFrames++
	case errors.Is(decodeErr, ErrChecksumMismatch):
		s.ChecksumErrors++
	case errors.Is(decodeErr, ErrUnknownVariant):
		s.UnknownVariants++
	case errors.Is(decodeErr, ErrInvalidField):
		s.FieldErrors++
	case errors.Is(decodeErr, ErrInvalidStatus):
		s.StatusErrors++
	default:
		s.FramingErrors++
	}

	s.LastUpdateTime = time.Now()
}

// Errors returns the total number of failed decodes.
func (s *Statistics) Errors() uint64 {
	return s.TotalFrames - s.ValidFrames
}

// CalculateRates recalculates frame and error rates over the stream's
// lifetime.
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed <= 0 {
		return
	}
	s.FrameRate = float64(s.TotalFrames) / elapsed
	s.ErrorRate = float64(s.Errors()) / elapsed
}

// Summary returns a one-line summary of the stream.
func (s *Statistics) Summary() string {
	s.CalculateRates()
	return fmt.Sprintf("frames=%d valid=%d errors=%d (%.1f frames/s)",
		s.TotalFrames, s.ValidFrames, s.Errors(), s.FrameRate)
}

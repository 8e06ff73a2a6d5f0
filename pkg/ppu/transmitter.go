// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 NIMLab

// Package ppu drives a CDAS trigger input by emulating the scanner
// vendor's peripheral physiology unit: a continuous stream of rest
// frames on a fixed cadence, interrupted by a burst of trigger frames
// when a scan trigger is requested.
package ppu

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/nimlab/scantrig/pkg/cdas"
)

// State is the transmitter's position in its two-state cycle.
type State int32

// Transmitter states. Rest is initial; a trigger request moves the
// transmitter to Trigger for the duration of the pulse burst, then back.
const (
	StateRest State = iota
	StateTrigger
)

// String returns the human-readable state name.
func (s State) String() string {
	if s == StateTrigger {
		return "TRIGGER"
	}
	return "REST"
}

// Default timing, per the vendor convention: one frame every 2 ms, and
// a trigger pulse held for 50 frames.
const (
	DefaultResolution = 2 * time.Millisecond
	DefaultRepeat     = 50
)

// Option configures a Transmitter.
type Option func(*Transmitter)

// WithResolution sets the frame cadence.
func WithResolution(d time.Duration) Option {
	return func(t *Transmitter) { t.resolution = d }
}

// WithRepeat sets how many consecutive trigger frames one trigger
// request emits.
func WithRepeat(n int) Option {
	return func(t *Transmitter) { t.repeat = n }
}

// Transmitter streams CDAS frames to a transport writer. Trigger and
// the counter accessors are safe to call concurrently with Run.
type Transmitter struct {
	w          io.Writer
	resolution time.Duration
	repeat     int

	pending atomic.Bool
	state   atomic.Int32

	framesSent    atomic.Uint64
	triggersFired atomic.Uint64
}

// NewTransmitter creates a transmitter writing frames to w.
func NewTransmitter(w io.Writer, opts ...Option) *Transmitter {
	t := &Transmitter{
		w:          w,
		resolution: DefaultResolution,
		repeat:     DefaultRepeat,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Trigger requests a scan trigger. The next ticks emit the trigger
// burst; a request during an ongoing burst is absorbed into it.
func (t *Transmitter) Trigger() {
	t.pending.Store(true)
}

// State returns the transmitter's current state.
func (t *Transmitter) State() State {
	return State(t.state.Load())
}

// FramesSent returns the total number of frames written.
func (t *Transmitter) FramesSent() uint64 {
	return t.framesSent.Load()
}

// TriggersFired returns the number of trigger bursts started.
func (t *Transmitter) TriggersFired() uint64 {
	return t.triggersFired.Load()
}

// Run streams frames until the context is cancelled or a write fails.
// Ticks are spaced on an absolute schedule so frame timing does not
// drift with write latency.
func (t *Transmitter) Run(ctx context.Context) error {
	rest := cdas.RestFrame()
	trigger := cdas.TriggerFrame()

	counter := 0
	next := time.Now().Add(t.resolution)
	timer := time.NewTimer(t.resolution)
	defer timer.Stop()

	for {
		frame := rest
		if t.pending.Load() {
			if counter == 0 {
				t.state.Store(int32(StateTrigger))
				t.triggersFired.Add(1)
			}
			frame = trigger
			counter++
		}

		if _, err := t.w.Write(frame); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		t.framesSent.Add(1)

		if counter >= t.repeat {
			t.pending.Store(false)
			t.state.Store(int32(StateRest))
			counter = 0
		}

		timer.Reset(time.Until(next))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		next = next.Add(t.resolution)
	}
}

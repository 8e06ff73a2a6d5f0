// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 NIMLab

package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nimlab/scantrig/pkg/ppu"
)

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "Interactive TUI for firing scan triggers",
	Long: `Stream CDAS rest frames to the scanner and fire triggers interactively.

The transmitter starts in the REST state and sends the idle heartbeat
frame on the configured cadence. Pressing space (or 't') fires a scan
trigger: a full-scale +5V pulse on the PP channel, held for the
configured number of frames, then back to REST.

Keys:
  space, t   fire a trigger
  q, ctrl+c  quit

Supports both serial and WebSocket connections.`,
	RunE: runControl,
}

func init() {
	rootCmd.AddCommand(controlCmd)
}

func runControl(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	tx := ppu.NewTransmitter(conn,
		ppu.WithResolution(frameInterval),
		ppu.WithRepeat(pulseRepeat),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- tx.Run(ctx)
	}()

	m := initialControlModel(tx, connInfo)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Forward a transmitter failure into the TUI so it can shut down
	go func() {
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			p.Send(txErrorMsg{err: err})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}

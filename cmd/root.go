// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 NIMLab

package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Transmitter timing flags
	frameInterval time.Duration
	pulseRepeat   int
)

var rootCmd = &cobra.Command{
	Use:   "scantrig",
	Short: "CDAS PPU trigger emulator",
	Long: `Scantrig - emulate an MRI scanner's peripheral physiology unit (PPU)
over a serial link and fire scan triggers on demand.

The tool streams CDAS rest frames on a fixed cadence and, on a trigger
request, holds a full-scale pulse on the PP channel for a configurable
number of frames.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 115200]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the
SCANTRIG_PASSWORD environment variable, or prompted interactively if not
set. The --password flag is intentionally not provided to avoid leaking
credentials in shell history.`,
	Version: "1.0.0",
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	// WebSocket bridge flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	// Transmitter timing flags
	rootCmd.PersistentFlags().DurationVar(&frameInterval, "interval", 2*time.Millisecond, "Frame cadence")
	rootCmd.PersistentFlags().IntVar(&pulseRepeat, "repeat", 50, "Trigger frames per pulse")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

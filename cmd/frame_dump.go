// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 NIMLab

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimlab/scantrig/pkg/cdas"
)

var frameDumpCmd = &cobra.Command{
	Use:   "frame_dump",
	Short: "Print the canonical rest and trigger frames",
	Long: `Print the two frames the emulator transmits, as annotated hex.

Handy for eyeballing wire captures or feeding a frame into another tool.
No connection is opened.`,
	Run: runFrameDump,
}

func init() {
	rootCmd.AddCommand(frameDumpCmd)
}

func runFrameDump(cmd *cobra.Command, args []string) {
	fmt.Printf("Rest frame (%d bytes):\n", len(cdas.RestFrame()))
	fmt.Print(cdas.FormatFrame(cdas.RestFrame()))
	fmt.Printf("\nTrigger frame (%d bytes):\n", len(cdas.TriggerFrame()))
	fmt.Print(cdas.FormatFrame(cdas.TriggerFrame()))
}

// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 NIMLab
//
// Scantrig - CDAS PPU trigger emulator
//
// Emulates an MRI scanner's peripheral physiology unit over a serial
// link and fires scan triggers on demand.

package main

import (
	"os"

	"github.com/nimlab/scantrig/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 NIMLab

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/nimlab/scantrig/pkg/cdas"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Decode and display inbound CDAS frames",
	Long: `Continuously decode CDAS frames from the connection and print each in
human-readable form.

The decoder resynchronizes on the next SOM after an invalid frame, so it
can join a stream mid-flight. Mainly useful with a loopback plug or when
monitoring another PPU's transmit line.

Supports both serial and WebSocket connections.`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Scantrig - Frame Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	decoder := cdas.NewDecoder()
	stats := cdas.NewStatistics()
	buf := make([]byte, 128)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			// A WebSocket read error means the bridge is gone for good
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				fmt.Printf("\n%s\n", stats.Summary())
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for i := 0; i < n; i++ {
			packet, err := decoder.DecodeByte(buf[i])
			if err != nil {
				stats.Update(nil, err)
				fmt.Printf("[ERROR] %v\n", err)
				continue
			}
			if packet != nil {
				stats.Update(packet, nil)
				fmt.Print(cdas.FormatPacket(packet))
			}
		}
	}
}

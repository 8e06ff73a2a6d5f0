// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 NIMLab

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimlab/scantrig/pkg/ppu"
)

var (
	pulseTestCount    int
	pulseTestInterval time.Duration
)

var pulseTestCmd = &cobra.Command{
	Use:   "pulse_test [delay-seconds...]",
	Short: "Fire triggers on a timed schedule",
	Long: `Stream rest frames and fire a trigger after each listed delay.

Delays are given in seconds as positional arguments. With no arguments,
a trigger fires every --test-interval, --count times (default: every 2
seconds, 100 times).

Useful for verifying trigger timing against the scanner's physiology
log. Interrupt with Ctrl+C.`,
	RunE: runPulseTest,
}

func init() {
	rootCmd.AddCommand(pulseTestCmd)
	pulseTestCmd.Flags().IntVar(&pulseTestCount, "count", 100, "Number of triggers when no delays are given")
	pulseTestCmd.Flags().DurationVar(&pulseTestInterval, "test-interval", 2*time.Second, "Delay between triggers when no delays are given")
}

func runPulseTest(cmd *cobra.Command, args []string) error {
	delays := make([]time.Duration, 0, len(args))
	for _, arg := range args {
		secs, err := strconv.ParseFloat(arg, 64)
		if err != nil || secs < 0 {
			return fmt.Errorf("invalid delay %q: expected seconds", arg)
		}
		delays = append(delays, time.Duration(secs*float64(time.Second)))
	}
	if len(delays) == 0 {
		for i := 0; i < pulseTestCount; i++ {
			delays = append(delays, pulseTestInterval)
		}
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Scantrig - Pulse Test\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Cadence: %v, %d trigger frames per pulse\n", frameInterval, pulseRepeat)
	fmt.Printf("Schedule: %d triggers\n\n", len(delays))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tx := ppu.NewTransmitter(conn,
		ppu.WithResolution(frameInterval),
		ppu.WithRepeat(pulseRepeat),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- tx.Run(ctx)
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for i, delay := range delays {
		timer.Reset(delay)
		select {
		case <-ctx.Done():
			fmt.Printf("\nInterrupted after %d triggers\n", i)
			return nil
		case err := <-errCh:
			return fmt.Errorf("transmitter stopped: %w", err)
		case <-timer.C:
		}

		tx.Trigger()
		fmt.Printf("[%s] SCAN trigger %d/%d\n",
			time.Now().Format("15:04:05.000"), i+1, len(delays))
	}

	stop()
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("transmitter stopped: %w", err)
	}

	fmt.Printf("\nDone: %d frames sent, %d triggers fired\n",
		tx.FramesSent(), tx.TriggersFired())
	return nil
}

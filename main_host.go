//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"sierpinski/app"
	"sierpinski/hal"
	"sierpinski/internal/buildinfo"
	"sierpinski/internal/log"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "sierpinski draws the chaos game triangle",
	Long:         "sierpinski paints a gradient, then plots the chaos game Sierpinski triangle on top of it.",
	Version:      buildinfo.String(),
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

var (
	hostCfg = hal.HostConfig{
		Sink:   hal.SinkWindow,
		Width:  640,
		Height: 480,
		Scale:  1,
	}
	appCfg = app.Config{Banner: true}

	verboseFlag bool
	traceFlag   bool
	debugFlag   bool
)

func init() {
	cobra.EnablePrefixMatching = true
	f := rootCmd.Flags()
	f.StringVar(&hostCfg.Sink, `sink`, hostCfg.Sink, `display: window, sixel, fbdev, png or memory`)
	f.IntVar(&hostCfg.Width, `width`, hostCfg.Width, `display width in pixels (fbdev uses the device size)`)
	f.IntVar(&hostCfg.Height, `height`, hostCfg.Height, `display height in pixels (fbdev uses the device size)`)
	f.IntVar(&hostCfg.Scale, `scale`, hostCfg.Scale, `window magnification; sixel shrink divisor`)
	f.IntVar(&hostCfg.Hz, `hz`, 0, `present at most this many frames per second (0 = unpaced)`)
	f.StringVarP(&hostCfg.Out, `out`, `o`, `sierpinski.png`, `output file of the png sink`)
	f.Uint64Var(&hostCfg.Seed, `seed`, 0, `use a deterministic random source with this seed`)

	f.Uint64VarP(&appCfg.Steps, `steps`, `n`, 0, `stop after N points (default: run until interrupted)`)
	f.Uint64Var(&appCfg.PresentEvery, `present-every`, 1, `present after every N points`)
	f.DurationVar(&appCfg.PresentTimeout, `present-timeout`, 0, `fail when a present takes longer than this (0 = wait)`)
	f.DurationVar(&appCfg.Stall, `stall`, 0, `wait this long after the greeting`)
	f.BoolVar(&appCfg.Banner, `banner`, appCfg.Banner, `show the greeting on screen while stalling`)

	f.BoolVarP(&verboseFlag, `verbose`, `v`, false, `log progress`)
	f.BoolVar(&traceFlag, `vv`, false, `log everything`)
	f.BoolVarP(&debugFlag, `debug`, `d`, false, `print error stacks`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	switch {
	case traceFlag:
		log.SetLevel(log.Debug)
	case verboseFlag:
		log.SetLevel(log.Info)
	}

	flags := cmd.Flags()
	appCfg.Bounded = flags.Changed(`steps`)
	hostCfg.Seeded = flags.Changed(`seed`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := func(ctx context.Context, h hal.HAL) error {
		return app.Start(ctx, h, appCfg)
	}

	began := time.Now()
	var err error
	if hostCfg.Sink == hal.SinkWindow {
		err = hal.RunWindow(ctx, hostCfg, start)
	} else {
		err = hal.RunHeadless(ctx, hostCfg, start)
	}
	if err == nil || errors.Is(err, context.Canceled) {
		log.New("main").Infof("finished after %v", time.Since(began).Round(time.Millisecond))
		return nil
	}

	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	cmd.SilenceErrors = true
	return err
}

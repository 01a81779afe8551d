// Package main provides a demo host for the animation engine: it registers
// one unit of every kind and runs a short showcase of each.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"flicker/internal/config"
	"flicker/internal/manager"
	"flicker/internal/signal"
	"flicker/internal/surface"
	"flicker/internal/table"
)

func main() {
	// Set up signal handling for graceful shutdown
	signal.RunWithContext(main0)
}

func main0(ctx context.Context) {
	// Load configuration (falls back to defaults when config.yaml is absent)
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	surf := surface.New(os.Stdout)
	mgr := manager.New(surf, log, manager.Options{
		TickInterval:       cfg.TickInterval(),
		SpinnerStyle:       cfg.Animation.SpinnerStyle,
		ParticleWidth:      cfg.Particles.Width,
		ParticleHeight:     cfg.Particles.Height,
		ParticleMaxAge:     cfg.Particles.MaxAge,
		VisualizerCapacity: cfg.Visualizer.BufferCapacity,
		VisualizerWidth:    cfg.Visualizer.Width,
		VisualizerStyle:    cfg.Visualizer.Style,
	})
	// Animations must not leave the terminal in a dirty state, whatever
	// ends the showcase.
	defer mgr.StopAll()

	if err := register(mgr); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering animations: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Registered animations (Ctrl+C to quit):")
	printRegistry(mgr)
	fmt.Println()

	runShowcase(ctx, mgr)
}

// register creates one unit of every animation kind.
func register(mgr *manager.Manager) error {
	creates := []func() error{
		func() error { _, err := mgr.CreateSpinner("spinner", "loading", ""); return err },
		func() error { _, err := mgr.CreateProgressBar("progress", 100, 30, "downloading"); return err },
		func() error { _, err := mgr.CreatePulse("pulse", "recording"); return err },
		func() error { _, err := mgr.CreateWave("wave", "processing"); return err },
		func() error { _, err := mgr.CreateParticleSystem("particles", 40); return err },
		func() error { _, err := mgr.CreateGeometric("geometry", "circle"); return err },
		func() error { _, err := mgr.CreateWaveform("waveform"); return err },
		func() error { _, err := mgr.CreateVisualizer("visualizer", ""); return err },
	}
	for _, create := range creates {
		if err := create(); err != nil {
			return err
		}
	}
	return nil
}

// printRegistry lists the registry contents as a table.
func printRegistry(mgr *manager.Manager) {
	t := table.New(
		table.Column{Header: "NAME", MinWidth: 10},
		table.Column{Header: "KIND", MinWidth: 10},
		table.Column{Header: "STATE", MinWidth: 8},
	)
	for _, name := range mgr.List() {
		u, err := mgr.Get(name)
		if err != nil {
			continue // removed concurrently
		}
		t.AddRow(u.Name(), u.Kind().String(), u.State().String())
	}
	t.Fprint(os.Stdout)
}

// showFor runs the named animation for the given duration, driving it with
// the optional drive callback once per tick-ish interval.
func showFor(ctx context.Context, mgr *manager.Manager, name string, d time.Duration, drive func(elapsed time.Duration)) {
	if err := mgr.Start(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	defer mgr.Stop(name)

	start := time.Now()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			if elapsed >= d {
				return
			}
			if drive != nil {
				drive(elapsed)
			}
		}
	}
}

// runShowcase demonstrates every registered animation in sequence, then a
// pair of them running concurrently.
func runShowcase(ctx context.Context, mgr *manager.Manager) {
	const sceneLength = 3 * time.Second

	showFor(ctx, mgr, "spinner", sceneLength, nil)

	showFor(ctx, mgr, "progress", sceneLength, func(elapsed time.Duration) {
		current := int(100 * elapsed / sceneLength)
		mgr.UpdateProgress("progress", current)
	})

	showFor(ctx, mgr, "pulse", sceneLength, nil)
	showFor(ctx, mgr, "wave", sceneLength, nil)
	showFor(ctx, mgr, "particles", 2*sceneLength, nil)
	showFor(ctx, mgr, "geometry", 2*sceneLength, nil)
	showFor(ctx, mgr, "waveform", sceneLength, nil)

	// Feed the visualizer from a synthetic producer goroutine and switch
	// styles midway, while the sampling keeps running.
	producerCtx, stopProducer := context.WithCancel(ctx)
	defer stopProducer()
	go produceSamples(producerCtx, mgr, "visualizer")

	showFor(ctx, mgr, "visualizer", sceneLength, nil)
	if err := mgr.ChangeStyle("visualizer", "wave"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	showFor(ctx, mgr, "visualizer", sceneLength, nil)
	stopProducer()

	if ctx.Err() != nil {
		return
	}
	fmt.Println("Done.")
}

// produceSamples pushes bursty synthetic amplitude samples (a sine with
// noise) into the named visualizer until the context is cancelled. It stands
// in for a live audio capture pipeline.
func produceSamples(ctx context.Context, mgr *manager.Manager, name string) {
	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()

	phase := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			burst := 2 + rand.IntN(6)
			samples := make([]float64, burst)
			for i := range samples {
				phase += 0.2
				samples[i] = 0.7*math.Sin(phase) + 0.3*(rand.Float64()*2-1)
			}
			if err := mgr.Feed(name, samples...); err != nil {
				return
			}
		}
	}
}

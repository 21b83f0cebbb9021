package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cyberfolio/internal/audio"
	"cyberfolio/internal/config"
	"cyberfolio/internal/trace"
	"cyberfolio/internal/ui"
	"cyberfolio/internal/wake"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "cyberfolio")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	exporter, err := trace.NewOTLPExporter(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		log.Printf("trace: exporter disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	opts := ui.Options{
		Observer:      trace.NewSessionTracer(exporter.Tracer()),
		FrameInterval: cfg.FrameInterval(),
		MatrixSeed:    cfg.MatrixSeed,
	}
	if cfg.Audio {
		opts.Cue = wake.Cue(audio.NewPlayer(audio.BootSweep))
	}

	app := ui.NewAppModel(opts)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	app.Teardown()
	return err
}

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/shell-layout/internal/app"
	"github.com/treykane/shell-layout/internal/config"
	"github.com/treykane/shell-layout/internal/eventbus"
	"github.com/treykane/shell-layout/internal/layout"
	"github.com/treykane/shell-layout/internal/logging"
	"github.com/treykane/shell-layout/internal/shell"
)

var mainLog = logging.New("main")

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New(ctx)
	defer bus.Shutdown()

	sh := shell.New(cfg)
	lm := layout.New(sh.Deps(bus))
	lm.Start()
	defer lm.Stop()

	rotations, _ := bus.Subscribe(layout.OrientationChange, 8)
	go func() {
		for n := range rotations {
			mainLog.Debug("notification", "topic", string(n))
		}
	}()

	p := tea.NewProgram(app.New(cfg, sh, lm), tea.WithAltScreen())
	bus.SetProgram(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run simulator: %w", err)
	}
	return nil
}

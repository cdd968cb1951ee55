package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/agiangrant/menukit"
	"github.com/agiangrant/menukit/backend/ebitenhost"
	"github.com/agiangrant/menukit/retained"
)

// Run implements the 'menudemo run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file (default menukit.toml)")
	debug := fs.Bool("debug", false, "Log dropped input and focus changes")
	fs.Parse(args)

	cfg, err := menukit.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *debug || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	retained.SetLogger(logger)

	font := ebitenhost.DefaultFont(cfg.Window.FontSize)
	if cfg.Window.Font != "" {
		data, err := os.ReadFile(cfg.Window.Font)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		if font, err = ebitenhost.LoadFont(data, cfg.Window.FontSize); err != nil {
			return err
		}
	}

	host := ebitenhost.New(ebitenhost.Options{
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Title:         cfg.Window.Title,
		WheelInterval: cfg.WheelInterval(),
		CloseOnEscape: true,
		Logger:        logger,
	})

	form, err := BuildDemo(cfg, ebitenhost.NewAssets(font, ebitenhost.DefaultPalette))
	if err != nil {
		return err
	}
	host.Attach(form)
	form.Show()

	logger.Info("opening demo menu", "width", cfg.Window.Width, "height", cfg.Window.Height)
	return host.Run()
}

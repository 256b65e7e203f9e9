package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/minibingo/internal/config"
	"github.com/lox/minibingo/internal/game"
	"github.com/lox/minibingo/internal/simulator"
	"github.com/lox/minibingo/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Players  int           `short:"p" help:"Number of players."`
	Names    []string      `help:"Player names, one per player."`
	Seed     *int64        `help:"Master seed for reproducible games."`
	Auto     bool          `help:"Auto-draw until the first bingo or exhaustion, then exit."`
	TUI      bool          `name:"tui" help:"Run the full-screen terminal UI."`
	Simulate int           `help:"Play N simulated games and report statistics instead of playing."`
	Workers  int           `default:"1" help:"Concurrent games when simulating."`
	Delay    time.Duration `help:"Delay between auto-called numbers."`
	Config   string        `default:"minibingo.hcl" type:"path" help:"Path to HCL config file."`
	Debug    bool          `help:"Enable debug logging."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("minibingo"),
		kong.Description("Play 75-ball bingo in the terminal."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}
	applyFlags(cfg, &cli)

	if err := run(cfg, &cli); err != nil {
		log.Fatal("minibingo failed", "error", err)
	}
	kctx.Exit(0)
}

// applyFlags merges CLI flags over file config; flags win.
func applyFlags(cfg *config.GameConfig, cli *CLI) {
	if cli.Players > 0 {
		cfg.Game.Players = cli.Players
	}
	if len(cli.Names) > 0 {
		cfg.Game.Names = cli.Names
	}
	if cli.Seed != nil {
		cfg.Game.Seed = cli.Seed
	}
	if cli.Delay > 0 {
		cfg.UI.AutoDelayMS = int(cli.Delay.Milliseconds())
	}
	if cli.Debug {
		cfg.UI.LogLevel = "debug"
	}
}

func run(cfg *config.GameConfig, cli *CLI) error {
	delay := time.Duration(cfg.UI.AutoDelayMS) * time.Millisecond

	if cli.Simulate > 0 {
		return runSimulation(cfg, cli)
	}

	if cli.TUI {
		return runTUI(cfg, delay)
	}

	g, err := game.New(game.Config{
		Players: cfg.Game.Players,
		Names:   cfg.Game.Names,
		Seed:    cfg.Game.Seed,
		Logger:  newLogger(cfg),
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	printBanner(cfg)
	r := newREPL(g, delay, os.Stdin, os.Stdout)
	if cli.Auto {
		r.printHeader()
		return r.autoToFirstWin(signalContext())
	}
	return r.loop(signalContext())
}

func runSimulation(cfg *config.GameConfig, cli *CLI) error {
	seed := int64(0)
	if cfg.Game.Seed != nil {
		seed = *cfg.Game.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	sim := simulator.New(simulator.Config{
		Games:       cli.Simulate,
		Players:     cfg.Game.Players,
		Seed:        seed,
		Parallelism: cli.Workers,
		Logger:      newLogger(cfg),
	})
	stats, err := sim.Run(signalContext())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	fmt.Printf("Simulated %d games of %d players (seed %d)\n\n", cli.Simulate, cfg.Game.Players, seed)
	fmt.Println(stats.Summary())
	return nil
}

func runTUI(cfg *config.GameConfig, delay time.Duration) error {
	// The alternate screen owns the terminal, so debug output goes to a file
	// instead.
	debugFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           parseLevel(cfg.UI.LogLevel),
	})

	g, err := game.New(game.Config{
		Players: cfg.Game.Players,
		Names:   cfg.Game.Names,
		Seed:    cfg.Game.Seed,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return tui.Run(g, delay, logger)
}

func newLogger(cfg *config.GameConfig) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLevel(cfg.UI.LogLevel),
	})
}

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func printBanner(cfg *config.GameConfig) {
	banner := " ● MINI BINGO — Terminal Edition ● "
	if cfg.UI.NoColor || termenv.ColorProfile() == termenv.Ascii {
		fmt.Println(banner)
	} else {
		fmt.Println(titleStyle.Render(banner))
	}
	fmt.Println()
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()
	return ctx
}

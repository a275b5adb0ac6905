// Package main is the entry point for GridQuest.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/samdwyer/gridquest/internal/config"
	"github.com/samdwyer/gridquest/internal/game"
	"github.com/samdwyer/gridquest/internal/telemetry"
)

func main() {
	var (
		envFile string
		variant string
		seed    int64
		script  string
	)
	flag.StringVar(&envFile, "env", ".env", "dotenv file to load")
	flag.StringVar(&variant, "variant", "", "rule set: classic or scaled (default from env or classic)")
	flag.Int64Var(&seed, "seed", 0, "random seed, 0 for a random one")
	flag.StringVar(&script, "script", "", "play from a command file instead of the terminal UI (- for stdin)")
	flag.Parse()

	// Load .env file for local development
	if err := config.LoadDotEnv(envFile); err != nil {
		log.Printf("Note: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if variant != "" {
		cfg.Variant = variant
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv(cfg)
		frontend := "tui"
		if script != "" {
			frontend = "script"
		}
		shutdown, err := telemetry.Setup(ctx, telemetry.RunInfo{
			Variant:  cfg.Variant,
			Seed:     cfg.Seed,
			Frontend: frontend,
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				// The run context may already be cancelled; flush regardless.
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if script != "" {
		if cfg.LogFile != "" {
			defer redirectLog(cfg.LogFile)()
		}
		if err := runScript(ctx, game.ConfigFrom(cfg), script); err != nil {
			log.Fatalf("Script error: %v", err)
		}
		return
	}

	restoreLog := redirectLog(cfg.LogFile)
	g, err := game.New(game.ConfigFrom(cfg))
	if err != nil {
		restoreLog()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	err = g.Run(ctx)
	restoreLog()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// runScript plays the game headless from a command file or stdin.
func runScript(ctx context.Context, cfg game.Config, path string) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	// No pacing without a screen to watch.
	cfg.EnemyDelay, cfg.HasEnemyDelay = 0, true
	engine, _, err := game.Build(cfg)
	if err != nil {
		return err
	}
	return game.NewSession(engine, os.Stdout).Run(ctx, in)
}

// redirectLog keeps log output off the terminal while the UI owns it.
// Logs go to path, or nowhere when path is empty. The returned function
// restores stderr.
func redirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Note: cannot open log file %s: %v", path, err)
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb unless an endpoint is already set.
func setupOTelEnv(cfg config.Config) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if headers := cfg.OTelHeaders(); headers != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers)
	}
}

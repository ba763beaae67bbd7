package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/bsgelman/Marble-Madness-Game/internal/audio"
	"github.com/bsgelman/Marble-Madness-Game/internal/config"
	"github.com/bsgelman/Marble-Madness-Game/internal/data"
	"github.com/bsgelman/Marble-Madness-Game/internal/game"
	"github.com/bsgelman/Marble-Madness-Game/internal/level"
	"github.com/bsgelman/Marble-Madness-Game/internal/scripting"
	"github.com/bsgelman/Marble-Madness-Game/internal/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

const defaultConfigPath = "config/game.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to the TOML config (default $MARBLEMAZE_CONFIG or "+defaultConfigPath+")")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("run", uuid.NewString()))

	actors := data.DefaultActorTable()
	if cfg.Data.ActorTable != "" {
		actors, err = data.LoadActorTable(cfg.Data.ActorTable)
		if err != nil {
			return fmt.Errorf("load actor table: %w", err)
		}
	}
	log.Info("actor table loaded", zap.Int("kinds", actors.Count()))

	rules, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("init lua: %w", err)
	}
	defer rules.Close()

	seed := uint64(cfg.Game.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("random seed", zap.Uint64("seed", seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	closeScreen := sync.OnceFunc(screen.Fini)
	defer closeScreen()

	view := terminal.NewView(screen)
	keys := terminal.NewKeyboard(screen)
	sounds := audio.NewPlayer(cfg.Audio, log)
	defer sounds.Close()

	ctrl := game.NewController(game.Options{
		Levels: level.NewSource(cfg.Game.AssetsDir, cfg.Game.Width, cfg.Game.Height),
		Actors: actors,
		Rules:  rules,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Input:  keys,
		Status: view,
		Sounds: sounds,
		Lives:  cfg.Game.StartLives,
		Log:    log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var outcome Outcome
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return keys.Run(gctx)
	})
	g.Go(func() error {
		// Fini unblocks the keyboard reader.
		defer closeScreen()
		ticker := time.NewTicker(cfg.Game.TickRate)
		defer ticker.Stop()
		var err error
		outcome, err = play(gctx, ctrl, cfg.Game.StartLevel, ticker.C, cfg.Game.TickRate,
			func() { view.Draw(ctrl.World()) }, log)
		if err != nil {
			return err
		}
		view.SetMessage(outcome.Banner())
		view.Draw(ctrl.World())
		select {
		case <-gctx.Done():
		case <-time.After(2 * time.Second):
		}
		return nil
	})

	err = g.Wait()
	closeScreen()
	if err != nil && !errors.Is(err, terminal.ErrInterrupted) && !errors.Is(err, context.Canceled) {
		log.Error("game stopped", zap.Error(err))
		return err
	}
	log.Info("game over",
		zap.String("result", outcome.Result.String()),
		zap.Int("score", outcome.Board.Score),
		zap.Int("level", outcome.Board.Level))
	printSummary(outcome)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("MARBLEMAZE_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, fmt.Errorf("load config: %w", err)
}

func printSummary(o Outcome) {
	fmt.Println()
	fmt.Printf("  \033[33m── %s %s\033[0m\n", o.Banner(), strings.Repeat("─", 30))
	printStat("Score", o.Board.Score)
	printStat("Level", o.Board.Level)
	printStat("Lives", o.Board.Lives)
	fmt.Println()
}

func printStat(label string, n int) {
	num := fmt.Sprintf("%d", n)
	dots := 30 - len(label) - len(num)
	if dots < 3 {
		dots = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dots), num)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// the terminal owns stdout and stderr while the game runs
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}

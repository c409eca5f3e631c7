package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/audio"
	"github.com/lixenwraith/lane-racer/config"
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/render/renderers"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to the log directory")
	seedFlag   = flag.Uint64("seed", 0, "Obstacle spawn seed, 0 for time-based")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lane-racer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	settings, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(settings)

	logger, logFile, err := setupLogging(settings.Log.Dir, settings.Log.Debug, settings.LogLevel())
	if err != nil {
		// Terminal not yet owned by tcell, report and run without a log
		fmt.Fprintf(os.Stderr, "lane-racer: logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().
		Str("config", settings.File).
		Uint64("seed", settings.Game.Seed).
		Bool("audio", settings.Audio.Enabled).
		Msg("starting")

	keys, err := settings.KeyTable()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)
	screen.HideCursor()

	// Audio failures degrade to silence
	sound := audio.NewSoundManager(&settings.Audio)
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("continuing without audio")
	}
	defer sound.Cleanup()

	session := engine.NewSession(settings.Game)
	// Announces the run so presenters play the start cue
	session.Reset()

	driver, err := engine.NewFrameDriver(
		session,
		input.NewMapper(keys, settings.Input.ReleaseDelay),
		engine.WithInterval(settings.Frame.Interval),
		engine.WithLogger(logger),
		engine.WithPresenter(renderers.NewScene(screen, keys)),
		engine.WithPresenter(sound),
	)
	if err != nil {
		return fmt.Errorf("frame driver: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, parameter.InputEventBuffer)
	core.Go(func() { pollEvents(ctx, screen, events) })

	err = driver.Run(ctx, events)
	logger.Info().Int64("score", session.Score()).Uint64("ticks", session.Ticks()).Msg("exiting")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyFlags lets command-line flags override loaded settings
func applyFlags(s *config.Settings) {
	if *debugFlag {
		s.Log.Debug = true
	}
	if *muteFlag {
		s.Audio.Enabled = false
	}
	if *seedFlag != 0 {
		s.Game.Seed = *seedFlag
	}
}

// pollEvents forwards terminal events until the screen is finalized or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

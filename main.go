package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/circle-collisions/internal/audio"
	"github.com/iburimskiy/circle-collisions/internal/config"
	"github.com/iburimskiy/circle-collisions/internal/game"
	"github.com/iburimskiy/circle-collisions/internal/sim"
	"github.com/iburimskiy/circle-collisions/internal/term"
)

const windowTitle = "Circles - click to pop, Space: pause, O: sound, Esc/Q: quit"

func main() {
	log.SetPrefix("circles: ")
	log.SetFlags(log.Ltime)

	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	resolve, err := sim.ParseResolveMode(cfg.Resolve)
	if err != nil {
		log.Fatal(err)
	}
	spawn := sim.DefaultSpawnOptions()
	spawn.MaxAttempts = cfg.MaxSpawnAttempts
	opts := sim.Options{
		Rand:    rand.New(rand.NewSource(seed)),
		Spawn:   spawn,
		Resolve: resolve,
	}

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(cfg, opts)
	default:
		err = runWindow(cfg, opts)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runWindow(cfg config.Config, opts sim.Options) error {
	s := sim.New(sim.Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height)}, opts)
	if err := populate(s, cfg); err != nil {
		game.ShowError(err)
		return err
	}

	var sound game.Sounder
	if player := newPlayer(cfg); player != nil {
		defer player.Close()
		sound = player
	}

	return game.Run(game.NewGame(s, sound, cfg.Verbose), windowTitle)
}

func runTerminal(cfg config.Config, opts sim.Options) error {
	// Log lines would corrupt the screen.
	if cfg.Verbose {
		f, err := os.OpenFile("circles.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	s := sim.New(term.Viewport(screen, config.CellWidth, config.CellHeight), opts)
	if err := populate(s, cfg); err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		return err
	}
	defer screen.Fini()

	d := term.NewDriver(screen, s, config.CellWidth, config.CellHeight, config.TicksPerSecond)
	d.SetVerbose(cfg.Verbose)
	if player := newPlayer(cfg); player != nil {
		defer player.Close()
		d.SetSound(player)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return d.Run(ctx)
}

func populate(s *sim.Simulation, cfg config.Config) error {
	if err := s.Populate(cfg.Count); err != nil {
		return err
	}
	if cfg.Verbose {
		vp := s.Viewport()
		log.Printf("spawned %d circles in %.0fx%.0f, %d placements retried, resolve=%v",
			s.Len(), vp.Width, vp.Height, s.Spawner().Retries(), s.Resolve())
		for _, c := range s.Circles() {
			col, _ := colorful.MakeColor(c.Color)
			log.Printf("  %s r=%.1f at (%.0f, %.0f) v=(%.2f, %.2f) %s", c.Label, c.Radius, c.Pos.X, c.Pos.Y, c.Vel.X, c.Vel.Y, col.Hex())
		}
	}
	return nil
}

// newPlayer returns nil when sound is off or unavailable; the game runs
// without audio in that case.
func newPlayer(cfg config.Config) *audio.Player {
	if !cfg.Sound {
		return nil
	}
	player, err := audio.NewPlayer()
	if err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return nil
	}
	if cfg.SoundFile != "" {
		if err := player.LoadFile(cfg.SoundFile); err != nil {
			log.Printf("Sound file %s: %v (using default pop)", cfg.SoundFile, err)
		}
	}
	return player
}

package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"

	envPrefix = "CIRCLES_"
)

// Config holds the runtime settings. Values come from defaults, then the
// environment (optionally seeded from a .env file), then command-line flags.
type Config struct {
	Count            int
	Width            int
	Height           int
	Seed             int64
	Backend          string
	Resolve          string
	MaxSpawnAttempts int
	Sound            bool
	SoundFile        string
	Verbose          bool
}

func Default() Config {
	return Config{
		Count:            DefaultCount,
		Width:            WindowWidth,
		Height:           WindowHeight,
		Backend:          BackendWindow,
		Resolve:          "pairwise",
		MaxSpawnAttempts: MaxSpawnAttempts,
		Sound:            true,
	}
}

// Load builds a Config from envFile (ignored when missing), CIRCLES_*
// variables and args, which should not include the program name.
func Load(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, pkgerrors.Wrapf(err, "load %s", envFile)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("circles", flag.ContinueOnError)
	fset.IntVar(&cfg.Count, "n", cfg.Count, "initial number of circles")
	fset.IntVar(&cfg.Width, "width", cfg.Width, "viewport width in pixels")
	fset.IntVar(&cfg.Height, "height", cfg.Height, "viewport height in pixels")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fset.StringVar(&cfg.Backend, "backend", cfg.Backend, "front-end: window or terminal")
	fset.StringVar(&cfg.Resolve, "resolve", cfg.Resolve, "collision resolution: pairwise or once")
	fset.IntVar(&cfg.MaxSpawnAttempts, "max-attempts", cfg.MaxSpawnAttempts, "placement attempts per circle before giving up")
	fset.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play a sound when a circle is removed")
	fset.StringVar(&cfg.SoundFile, "sound-file", cfg.SoundFile, "wav, mp3 or flac file used as the removal sound")
	fset.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log simulation events")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	ints := map[string]*int{
		"COUNT":        &c.Count,
		"WIDTH":        &c.Width,
		"HEIGHT":       &c.Height,
		"MAX_ATTEMPTS": &c.MaxSpawnAttempts,
	}
	for key, dst := range ints {
		v := getenv(envPrefix + key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return pkgerrors.Wrapf(err, "%s%s", envPrefix, key)
		}
		*dst = n
	}

	if v := getenv(envPrefix + "SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return pkgerrors.Wrapf(err, "%sSEED", envPrefix)
		}
		c.Seed = n
	}

	bools := map[string]*bool{
		"SOUND":   &c.Sound,
		"VERBOSE": &c.Verbose,
	}
	for key, dst := range bools {
		v := getenv(envPrefix + key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return pkgerrors.Wrapf(err, "%s%s", envPrefix, key)
		}
		*dst = b
	}

	if v := getenv(envPrefix + "BACKEND"); v != "" {
		c.Backend = v
	}
	if v := getenv(envPrefix + "RESOLVE"); v != "" {
		c.Resolve = v
	}
	if v := getenv(envPrefix + "SOUND_FILE"); v != "" {
		c.SoundFile = v
	}
	return nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return pkgerrors.Errorf("circle count must not be negative, got %d", c.Count)
	case c.Width <= 0 || c.Height <= 0:
		return pkgerrors.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	case c.MaxSpawnAttempts <= 0:
		return pkgerrors.Errorf("max spawn attempts must be positive, got %d", c.MaxSpawnAttempts)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return pkgerrors.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Resolve {
	case "pairwise", "once":
	default:
		return pkgerrors.Errorf("unknown resolve mode %q", c.Resolve)
	}
	return nil
}

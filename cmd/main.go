package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chasinglogic/appdirs"
	"github.com/dustin/go-humanize"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/smasonuk/starflight"
	"github.com/smasonuk/starflight/game"
)

const (
	appName     = "starflight"
	logFileName = "starflight.log"
)

var (
	levelFlag    logLevelFlag
	configFlag   = flag.String("config", "", "YAML config file")
	soundsFlag   = flag.String("sounds", "", "directory with the WAV sound cues")
	seedFlag     = flag.Uint64("seed", 0, "random seed (0 keeps the configured seed)")
	logFileFlag  = flag.Bool("logfile", false, "write logs to a file instead of the console")
	headlessFlag = flag.Bool("headless", false, "run without a window")
	hzFlag       = flag.Int("hz", 0, "tick rate in headless mode (0 = loop.fps from the config)")
	ticksFlag    = flag.Uint64("ticks", 0, "stop after N ticks in headless mode (0 = run forever)")
	thrustFlag   = flag.Bool("thrust", false, "hold thrust in headless mode")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	if *logFileFlag {
		fn, err := initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}

	cfg := starflight.DefaultConfig()
	if *configFlag != "" {
		c, err := starflight.LoadConfig(*configFlag)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	if *soundsFlag != "" {
		cfg.Audio.Dir = *soundsFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	if *headlessFlag {
		if err := runHeadless(cfg, rng); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := game.Run(cfg, rng); err != nil {
		slog.Error("game stopped", "err", err)
		os.Exit(1)
	}
}

func runHeadless(cfg starflight.Config, rng *rand.Rand) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim, err := starflight.NewSimState(cfg, rng)
	if err != nil {
		return err
	}
	loop := starflight.NewLoop(sim, nil)
	hc := starflight.NewHeadlessConfig(cfg, *hzFlag, *ticksFlag)
	if *thrustFlag {
		hc.Input = func(uint64) starflight.Input {
			return starflight.Input{Held: starflight.Actions(0).With(starflight.ActThrust)}
		}
	}
	slog.Info("headless run", "hz", hc.Hz, "ticks", hc.Ticks)
	err = starflight.RunHeadless(ctx, loop, nil, hc)
	slog.Info("headless done",
		"frames", humanize.Comma(int64(loop.Frames())),
		"speed", humanize.Commaf(sim.Flight.Speed),
		"impacts", sim.Impacts,
		"particles", sim.Particles.Len(),
		"maxParticles", sim.Particles.Max(),
		"dropped", humanize.Comma(int64(sim.Particles.Dropped())),
		"dropPolicy", sim.Particles.Policy(),
	)
	return err
}

func initLogFile() (string, error) {
	dir := appdirs.New(appName).UserLog()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

package main

import (
	"context"
	"flag"
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"pixelskyline"
	"pixelskyline/scorer"
	"pixelskyline/sink"
)

type options struct {
	cfg       pixelskyline.Config
	seed      uint64
	pick      int
	out       string
	framesDir string
	workers   int
	gifPath   string
	gifStride int
	quiet     bool
	verbose   bool
}

func parseFlags() options {
	o := options{cfg: pixelskyline.DefaultConfig()}

	flag.IntVar(&o.cfg.PixelSize, "pixel", o.cfg.PixelSize, "output pixels per logical pixel")
	flag.IntVar(&o.cfg.MinFloors, "min-floors", o.cfg.MinFloors, "lowest building floor count")
	flag.IntVar(&o.cfg.MaxFloors, "max-floors", o.cfg.MaxFloors, "highest building floor count (inclusive)")
	flag.IntVar(&o.cfg.MinWidth, "min-width", o.cfg.MinWidth, "narrowest building in logical pixels")
	flag.IntVar(&o.cfg.MaxWidth, "max-width", o.cfg.MaxWidth, "building width upper bound (exclusive)")
	flag.IntVar(&o.cfg.SkylineWidth, "width", o.cfg.SkylineWidth, "skyline width in logical pixels, also the frame count")
	flag.IntVar(&o.cfg.ViewportWidth, "viewport", o.cfg.ViewportWidth, "frame width in output pixels")
	flag.IntVar(&o.cfg.MaxAttempts, "max-attempts", o.cfg.MaxAttempts, "building generation attempts before giving up")
	flag.Uint64Var(&o.seed, "seed", 0, "random seed (0 picks one)")
	flag.IntVar(&o.pick, "pick", 0, "try this many seeds and keep the most varied skyline")
	flag.StringVar(&o.out, "out", "output.png", "skyline image path")
	flag.StringVar(&o.framesDir, "frames-dir", "Frames", "directory for animation frames (empty skips frames)")
	flag.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "frames rendered in parallel")
	flag.StringVar(&o.gifPath, "gif", "", "also write an animated GIF preview to this path")
	flag.IntVar(&o.gifStride, "gif-stride", 4, "keep every n-th frame in the GIF preview")
	flag.BoolVar(&o.quiet, "q", false, "no progress line")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	return o
}

func main() {
	o := parseFlags()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixelskyline.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, logger); err != nil {
		logger.Error("run failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, logger *slog.Logger) error {
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	seed := o.seed
	if o.pick > 0 {
		best, err := scorer.BestSeeds(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), o.cfg, o.pick, 1)
		if err != nil {
			return err
		}
		seed = best[0].Seed
		logger.Info("picked seed", "seed", seed, "score", best[0].Score, "tries", o.pick)
	} else if seed == 0 {
		seed = rand.Uint64()
	}

	sky, err := pixelskyline.Generate(seed, o.cfg)
	if err != nil {
		return err
	}

	n, err := sink.WriteImage(o.out, sky.Image)
	if err != nil {
		return err
	}
	logger.Info("wrote skyline", "path", o.out, "bytes", n, "seed", seed)

	if o.framesDir == "" {
		return nil
	}
	return writeFrames(ctx, o, sky)
}

func writeFrames(ctx context.Context, o options, sky *pixelskyline.Skyline) (err error) {
	dir, err := sink.OpenDir(o.framesDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dir.Close(); err == nil {
			err = cerr
		}
	}()

	var progress *sink.Progress
	if !o.quiet {
		progress = sink.NewProgress(os.Stderr, o.cfg.FrameCount())
		defer progress.Done()
	}

	var preview *sink.GIF
	if o.gifPath != "" {
		preview = sink.NewGIF(o.cfg.Palette.Colors(), o.gifStride, 4)
	}

	emit := func(_ context.Context, i int, frame *image.RGBA) error {
		if err := dir.Write(i, frame); err != nil {
			return err
		}
		if preview != nil {
			preview.Add(i, frame)
		}
		_, bytes := dir.Stats()
		progress.Step(bytes)
		return nil
	}

	if err := pixelskyline.Animate(ctx, sky.Image, o.cfg, o.workers, emit); err != nil {
		return err
	}

	if preview != nil {
		if err := preview.Save(o.gifPath); err != nil {
			return err
		}
		pixelskyline.Logger().Info("wrote preview", "path", o.gifPath, "frames", preview.Len())
	}

	frames, bytes := dir.Stats()
	pixelskyline.Logger().Info("wrote frames",
		"dir", filepath.Clean(dir.Path()), "frames", frames, "bytes", bytes)
	return nil
}

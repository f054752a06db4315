package pixelskyline

import (
	"context"
	"image"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// EmitFunc receives frame i of the loop. With more than one worker it is
// called concurrently, once per index, in no particular order.
type EmitFunc func(ctx context.Context, i int, frame *image.RGBA) error

// Animate produces one frame per skyline column, scrolling the skyline left
// by one logical pixel per frame, and hands each to emit. sky is only read.
// workers <= 1 emits frames sequentially in increasing index order.
func Animate(ctx context.Context, sky *image.RGBA, cfg Config, workers int, emit EmitFunc) error {
	n := cfg.FrameCount()
	Logger().Info("animating skyline",
		slog.Int("frames", n),
		slog.Int("workers", max(workers, 1)))

	if workers <= 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(ctx, i, Frame(sky, cfg.FrameOffset(i), cfg.ViewportWidth)); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return emit(gctx, i, Frame(sky, cfg.FrameOffset(i), cfg.ViewportWidth))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

package pixelskyline

import (
	"log/slog"

	"github.com/pkg/errors"
)

// ErrPlanExhausted means the planner used up Config.MaxAttempts before every
// column was covered.
var ErrPlanExhausted = errors.New("coverage plan exhausted")

// Plan is the ordered list of buildings that together cover every column.
type Plan struct {
	Buildings []Building
	Attempts  int // buildings generated, accepted or not
}

// PlanSkyline generates buildings until every column of the skyline is
// covered. A building is kept only if it covers at least one column nothing
// else has claimed yet, so each accepted building strictly adds coverage.
func PlanSkyline(r Rand, cfg Config) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}

	covered := make([]bool, cfg.SkylineWidth)
	remaining := cfg.SkylineWidth

	var p Plan
	for remaining > 0 {
		if p.Attempts >= cfg.MaxAttempts {
			return Plan{}, errors.Wrapf(ErrPlanExhausted,
				"%d of %d columns covered after %d attempts",
				cfg.SkylineWidth-remaining, cfg.SkylineWidth, p.Attempts)
		}
		p.Attempts++

		b := GenerateBuilding(r, cfg)

		fresh := false
		b.Columns(cfg.SkylineWidth, func(col int) {
			if !covered[col] {
				fresh = true
			}
		})
		if !fresh {
			continue
		}

		b.Columns(cfg.SkylineWidth, func(col int) {
			if !covered[col] {
				covered[col] = true
				remaining--
			}
		})
		p.Buildings = append(p.Buildings, b)
	}

	Logger().Debug("skyline planned",
		slog.Int("buildings", len(p.Buildings)),
		slog.Int("attempts", p.Attempts))

	return p, nil
}

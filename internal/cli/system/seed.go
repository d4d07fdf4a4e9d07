package system

import (
	"fmt"
	"math/rand"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/sample"
)

type SeedCmd struct {
	Seed int64 `help:"Random seed for the generated completions (default: current time)."`
}

func (c *SeedCmd) Run(ctx *cli.Context) error {
	cal, _, err := ctx.Calendar()
	if err != nil {
		return err
	}

	now := ctx.Clock()
	seed := c.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	added, skipped := 0, 0
	for _, h := range sample.Habits(cal, now, rng) {
		if _, err := ctx.Store.GetHabitByName(h.Name); err == nil {
			skipped++
			continue
		}
		if err := ctx.Store.AddHabit(h); err != nil {
			return fmt.Errorf("failed to add sample habit %q: %w", h.Name, err)
		}
		added++
	}

	logger.Info("Sample habits seeded", "added", added, "skipped", skipped, "seed", seed)
	ctx.Printf("Added %d sample habits", added)
	if skipped > 0 {
		ctx.Printf(" (%d already present)", skipped)
	}
	ctx.Println()
	return nil
}

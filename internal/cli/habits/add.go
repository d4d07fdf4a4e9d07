package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/tracker"
)

type HabitAddCmd struct {
	Name   string `arg:"" optional:"" help:"Habit name. Prompts when omitted."`
	Icon   string `help:"Icon tag." default:"heart.fill"`
	Color  string `help:"Color: red, orange, yellow, green, blue, purple, pink, indigo, teal or cyan." default:"red"`
	Target *int   `help:"Optional daily target count."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		if err := c.prompt(); err != nil {
			return err
		}
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	color, err := models.ParseColor(c.Color)
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(name); err == nil {
		return fmt.Errorf("%w: %q", tracker.ErrDuplicateHabit, name)
	}

	if c.Target != nil && *c.Target < 1 {
		return fmt.Errorf("target must be at least 1")
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Icon:        models.Icon(c.Icon).OrDefault(),
		Color:       color,
		CreatedAt:   ctx.Clock(),
		TargetCount: c.Target,
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}

	logger.Info("Habit added", "id", habit.ID, "name", habit.Name)
	ctx.Printf("Added habit: %s\n", habit.Name)
	return nil
}

// prompt fills the name, icon and color from an interactive form.
func (c *HabitAddCmd) prompt() error {
	options := make([]huh.Option[string], 0, len(models.Palette))
	for _, color := range models.Palette {
		options = append(options, huh.NewOption(string(color), string(color)))
	}
	if c.Icon == "" {
		c.Icon = constants.DefaultIcon
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Value(&c.Icon),
			huh.NewSelect[string]().
				Title("Color").
				Options(options...).
				Value(&c.Color),
		),
	)
	return form.Run()
}

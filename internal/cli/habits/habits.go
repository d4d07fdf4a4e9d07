package habits

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" aliases:"ls" help:"List habits."`
	Edit      HabitEditCmd      `cmd:"" help:"Edit a habit's name, icon, color or target."`
	Toggle    HabitToggleCmd    `cmd:"" aliases:"mark" help:"Toggle a habit's completion for a day."`
	Show      HabitShowCmd      `cmd:"" help:"Show a habit's statistics and heatmap."`
	Log       HabitLogCmd       `cmd:"" help:"Show the last days for every habit."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Unarchive a habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit (soft delete)."`
	Restore   HabitRestoreCmd   `cmd:"" help:"Restore a deleted habit."`
}

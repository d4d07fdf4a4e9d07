package constants

const (
	AppName            = "habitkit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitkit/habitkit.db"
	DefaultConfigFile  = "~/.config/habitkit/config.json"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is a fixed-width RFC3339 layout so stored UTC instants sort as text
	TimestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitkit-"
	BackupFileSuffix = ".db"

	// TrendDailyInterval and TrendWeeklyInterval are the sampling steps in days
	TrendDailyInterval  = 1
	TrendWeeklyInterval = 7

	// DefaultIcon is the icon tag assigned when none is given
	DefaultIcon = "heart.fill"
)

// EpochYear is the lower bound of the "all" statistics range.
const EpochYear = 2000

package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CutoffHour       int
	GlobalDailyLimit int
	DefaultZoneLimit int
	HorizonDays      int
	FallbackZone     string

	DuplicateWindow time.Duration
	ReminderAfter   time.Duration
	AutoCancelAfter time.Duration

	OperatorContacts []string
}

package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Logs   LogsConfig   `mapstructure:"logs" validate:"required"`
	Clock  ClockConfig  `mapstructure:"clock"`
	Goal   GoalConfig   `mapstructure:"goal"`
	Sync   SyncConfig   `mapstructure:"sync"`
	Watch  WatchConfig  `mapstructure:"watch"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// LogsConfig locates the reading event logs on disk.
type LogsConfig struct {
	Dir         string `mapstructure:"dir" validate:"required"`
	Prefix      string `mapstructure:"prefix" validate:"required,logprefix"`
	ArchiveFile string `mapstructure:"archive_file" validate:"required"`
	ScratchFile string `mapstructure:"scratch_file" validate:"required,nefield=ArchiveFile"`
}

// ClockConfig selects the time zone used for calendar days. Empty means the host zone.
type ClockConfig struct {
	Timezone string `mapstructure:"timezone" validate:"omitempty,timezone"`
}

// GoalConfig holds the daily reading target.
type GoalConfig struct {
	DailyTargetMinutes int `mapstructure:"daily_target_minutes" validate:"min=10,max=180"`
}

// SyncConfig holds cloud sync configuration.
type SyncConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Domain        string `mapstructure:"domain" validate:"required,hostname|hostname_port"`
	TokenFile     string `mapstructure:"token_file" validate:"required_if=Enabled true"`
	StateFile     string `mapstructure:"state_file" validate:"required_if=Enabled true"`
	Timeout       int    `mapstructure:"timeout" validate:"min=1"` // seconds
	UploadOnStart bool   `mapstructure:"upload_on_start"`
}

// WatchConfig controls reloading when the current period file changes.
type WatchConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Debounce int  `mapstructure:"debounce" validate:"min=0"` // milliseconds
}

// Location resolves the configured time zone.
func (c ClockConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

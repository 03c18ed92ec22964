package configs

import (
	"errors"
	"fmt"
	"strings"

	"reading-stats/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "READING_STATS"

// setDefaults matches the file layout of the extension installed on the e-reader.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logs.prefix", "metrics_reader_")
	v.SetDefault("logs.archive_file", "/mnt/us/extensions/kykky/log/history.gz")
	v.SetDefault("logs.scratch_file", "/tmp/kykky_history.log")
	v.SetDefault("goal.daily_target_minutes", 30)
	v.SetDefault("sync.domain", "reading.tqhyg.net")
	v.SetDefault("sync.timeout", 30)
	v.SetDefault("watch.debounce", 2000)
}

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// READING_STATS_LOGS_DIR overrides logs.dir, etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Sync.Domain = stripScheme(cfg.Sync.Domain)

	if err := validators.New().Struct(&cfg); err != nil {
		var fieldErrors validators.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		msgs := make([]string, 0, len(fieldErrors))
		for _, e := range fieldErrors {
			msgs = append(msgs, formatValidationError(e))
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(msgs, ", "))
	}

	return &cfg, nil
}

// stripScheme accepts "https://host" in the sync domain and keeps only the host part.
func stripScheme(domain string) string {
	if i := strings.Index(domain, "://"); i >= 0 {
		domain = domain[i+3:]
	}
	return strings.TrimSuffix(domain, "/")
}

// formatValidationError renders one failed rule as "<yaml path> (<rule>)", e.g. "goal.dailytargetminutes (min=10)".
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	// StructNamespace is "Config.Goal.DailyTargetMinutes"; drop the root type.
	if _, path, ok := strings.Cut(e.StructNamespace(), "."); ok {
		field = strings.ToLower(path)
	}

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	case validators.TagLogPrefix:
		return fmt.Sprintf("%s (must be a plain file name prefix)", field)
	case "timezone":
		return fmt.Sprintf("%s (unknown IANA time zone)", field)
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}

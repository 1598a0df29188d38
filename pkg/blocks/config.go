package blocks

import "github.com/dmitrymomot/fieldkit/pkg/config"

// Config holds environment-driven pagination limits.
type Config struct {
	DefaultLimit int `env:"FIELDKIT_DEFAULT_LIMIT" envDefault:"10"`
	MaxLimit     int `env:"FIELDKIT_MAX_LIMIT" envDefault:"100"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts cfg into builder options.
func (c Config) Options() []Option {
	return []Option{WithDefaultLimit(c.DefaultLimit), WithMaxLimit(c.MaxLimit)}
}

// PaginationFromConfig is BuildPagination using cfg's limits.
func PaginationFromConfig(cfg Config) Block {
	return BuildPagination(cfg.Options()...)
}

package config

import (
	"fmt"
	"time"

	"go-splendor/game"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	RedisAddr     string `env:"REDIS_ADDR"` // empty: in-memory store
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	MySQLDSN      string `env:"MYSQL_DSN"` // empty: no archive

	MinSeats     int         `env:"GAME_MIN_SEATS" envDefault:"2"`
	MaxSeats     int         `env:"GAME_MAX_SEATS" envDefault:"4"`
	TokenSupply  map[int]int `env:"TOKEN_SUPPLY" envDefault:"2:4,3:5,4:7" envSeparator:"," envKeyValSeparator:":"`
	GoldSupply   int         `env:"GOLD_SUPPLY" envDefault:"5"`
	WinningScore int         `env:"WINNING_SCORE" envDefault:"15"`

	SaveRetries int           `env:"SAVE_RETRIES" envDefault:"3"`
	LockTTL     time.Duration `env:"LOCK_TTL" envDefault:"5s"`

	JWTAccessSecret  string        `env:"JWT_ACCESS_SECRET" envDefault:"go-splendor-access"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET" envDefault:"go-splendor-refresh"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"2h"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
}

// Load reads the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MinSeats < 1 || c.MinSeats > c.MaxSeats {
		return fmt.Errorf("invalid seat bounds [%d, %d]", c.MinSeats, c.MaxSeats)
	}
	for seats := c.MinSeats; seats <= c.MaxSeats; seats++ {
		if n, ok := c.TokenSupply[seats]; !ok || n < 1 {
			return fmt.Errorf("TOKEN_SUPPLY has no entry for %d seats", seats)
		}
	}
	if c.GoldSupply < 0 {
		return fmt.Errorf("GOLD_SUPPLY must not be negative")
	}
	if c.WinningScore < 1 {
		return fmt.Errorf("WINNING_SCORE must be positive")
	}
	if c.SaveRetries < 1 {
		return fmt.Errorf("SAVE_RETRIES must be at least 1")
	}
	return nil
}

// GameConfig is the rule set new games are created with.
func (c *Config) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.MinSeats = c.MinSeats
	cfg.MaxSeats = c.MaxSeats
	cfg.TokenSupply = make(map[int]int, len(c.TokenSupply))
	for seats, n := range c.TokenSupply {
		cfg.TokenSupply[seats] = n
	}
	cfg.GoldSupply = c.GoldSupply
	cfg.WinningScore = c.WinningScore
	return cfg
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

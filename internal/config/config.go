package config

import (
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// StoreRedis keeps games in Redis
	StoreRedis = "redis"

	// StoreMemory keeps games in process memory
	StoreMemory = "memory"
)

// Config holds process configuration read from the environment
type Config struct {
	AppEnv   string `env:"APP_ENV"   envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Store         string `env:"STORE"          envDefault:"redis" validate:"oneof=redis memory"`
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0" validate:"min=0"`

	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	MaxPlayers int   `env:"MAX_PLAYERS" envDefault:"4" validate:"min=1,max=4"`
	DiceSeed   int64 `env:"DICE_SEED"   envDefault:"0"`
}

// Load reads the given dotenv files (".env" when none are named), then the
// environment. Missing dotenv files are ignored; variables already set in
// the environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load %s", file)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

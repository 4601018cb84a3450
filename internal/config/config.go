package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

const (
	MinSearchDepth = 1
	MaxSearchDepth = 12
)

type Config struct {
	BoardRows     int
	BoardColumns  int
	BotDifficulty bot.Difficulty
	HardDepth     int
	ExpertDepth   int
	RedisURL      string // empty disables the decision cache
	DecisionTTL   time.Duration
	LogLevel      string
	LogPretty     bool
}

func LoadConfig() *Config {
	return &Config{
		BoardRows:     GetEnvAsInt("BOARD_ROWS", domain.DefaultRows),
		BoardColumns:  GetEnvAsInt("BOARD_COLUMNS", domain.DefaultColumns),
		BotDifficulty: bot.ParseDifficulty(GetEnv("BOT_DIFFICULTY", string(bot.DifficultyMedium))),
		HardDepth:     GetEnvAsInt("HARD_DEPTH", bot.DefaultSettings().HardDepth),
		ExpertDepth:   GetEnvAsInt("EXPERT_DEPTH", bot.DefaultSettings().ExpertDepth),
		RedisURL:      GetEnv("REDIS_URL", ""),
		DecisionTTL:   time.Duration(GetEnvAsInt("DECISION_TTL_MINUTES", 60)) * time.Minute,
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		LogPretty:     GetEnvAsBool("LOG_PRETTY", true),
	}
}

// Validate rejects board sizes and search depths the engine does not support.
func (c *Config) Validate() error {
	if c.BoardRows < domain.MinDimension || c.BoardRows > domain.MaxDimension ||
		c.BoardColumns < domain.MinDimension || c.BoardColumns > domain.MaxDimension {
		return fmt.Errorf("board %dx%d: %w", c.BoardRows, c.BoardColumns, domain.ErrBoardSize)
	}
	for name, depth := range map[string]int{"HARD_DEPTH": c.HardDepth, "EXPERT_DEPTH": c.ExpertDepth} {
		if depth < MinSearchDepth || depth > MaxSearchDepth {
			return fmt.Errorf("%s must be between %d and %d, got %d", name, MinSearchDepth, MaxSearchDepth, depth)
		}
	}
	return nil
}

// BotSettings returns the engine settings derived from the config.
func (c *Config) BotSettings() bot.Settings {
	return bot.Settings{HardDepth: c.HardDepth, ExpertDepth: c.ExpertDepth}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean value, using default")
		return defaultValue
	}
	return value
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds process configuration read from the environment
type Config struct {
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	DiscordToken  string `mapstructure:"DISCORD_TOKEN"`
	ApplicationID string `mapstructure:"APPLICATION_ID"`
	GuildID       string `mapstructure:"GUILD_ID"`

	// AnnounceChannelID receives season announcements when set
	AnnounceChannelID string `mapstructure:"ANNOUNCE_CHANNEL_ID"`

	HTTPAddr  string `mapstructure:"HTTP_ADDR"`
	JWTSecret string `mapstructure:"JWT_SECRET"`

	Timezone         string `mapstructure:"TIMEZONE"`
	CampStartDate    string `mapstructure:"CAMP_START_DATE"`
	CampDurationDays int    `mapstructure:"CAMP_DURATION_DAYS"`
	DailyGoalMinutes int    `mapstructure:"DAILY_GOAL_MINUTES"`
	AdminIDs         string `mapstructure:"ADMIN_IDS"`
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DISCORD_TOKEN", "")
	v.SetDefault("APPLICATION_ID", "")
	v.SetDefault("GUILD_ID", "")
	v.SetDefault("ANNOUNCE_CHANNEL_ID", "")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("CAMP_START_DATE", "")
	v.SetDefault("CAMP_DURATION_DAYS", 30)
	v.SetDefault("DAILY_GOAL_MINUTES", 240)
	v.SetDefault("ADMIN_IDS", "")

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Admins returns the set of user ids granted admin actions.
func (c Config) Admins() map[string]bool {
	admins := make(map[string]bool)
	for _, id := range strings.Split(c.AdminIDs, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			admins[id] = true
		}
	}
	return admins
}

package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug            bool   `envconfig:"debug"`
	Port             int    `envconfig:"port" default:"5000"`
	Env              string `envconfig:"env"`
	PostgresHost     string `envconfig:"postgres_host"`
	PostgresUser     string `envconfig:"postgres_user"`
	PostgresDB       string `envconfig:"postgres_db"`
	PostgresPort     int    `envconfig:"postgres_port"`
	PostgresPassword string `envconfig:"postgres_password"`
	SessionSecret    string `envconfig:"session_secret" default:"change_this_in_prod"`
	CookieSecure     bool   `envconfig:"cookie_secure"`
	AllowedOrigins   string `envconfig:"allowed_origins" default:"http://localhost:5000,http://127.0.0.1:5000"`
	StaticDir        string `envconfig:"static_dir" default:"./static"`

	// Nickname pools for server-generated report pseudonyms. Comma-separated
	// so deployments can swap the vocabulary without a rebuild.
	NicknameAdjectives string `envconfig:"nickname_adjectives" default:"瘋狂的,可愛的,懶惰的,勇敢的,神秘的,悄悄的"`
	NicknameAnimals    string `envconfig:"nickname_animals" default:"水獺,貓咪,狐狸,刺蝟,貓頭鷹,兔子"`
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("dormwatch", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AllowedOriginList splits the configured comma-separated origin list.
func (c *Config) AllowedOriginList() []string {
	return splitAndTrim(c.AllowedOrigins)
}

// AdjectivePool returns the configured nickname adjectives.
func (c *Config) AdjectivePool() []string {
	return splitAndTrim(c.NicknameAdjectives)
}

// AnimalPool returns the configured nickname animal nouns.
func (c *Config) AnimalPool() []string {
	return splitAndTrim(c.NicknameAnimals)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

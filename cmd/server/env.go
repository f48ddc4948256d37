package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/notify"
)

type Environment struct {
	Environment   string
	ServerAddress string

	ContentAPIURL     string
	ContentTimeout    time.Duration
	ContentCacheTTL   time.Duration
	HeroInterval      time.Duration
	BrochureMirrorTTL time.Duration

	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL    string
	MQTTClientID     string
	MQTTContentTopic string
	MQTTEnquiryTopic string

	SecretKey         string
	AdminPasswordHash string

	UploadsDir      string
	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
}

func (e Environment) Development() bool { return e.Environment == "development" }

// loadDotEnv reads .env when present. Variables already set win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using the process environment")
	}
}

// LoadEnvironment reads and validates env vars.
func LoadEnvironment() (Environment, error) {
	env := Environment{
		Environment:   getenv("APP_ENV", "production"),
		ServerAddress: getenv("SERVER_ADDRESS", ":8080"),

		ContentAPIURL: os.Getenv("CONTENT_API_URL"),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "./migrations"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL:    os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:     getenv("MQTT_CLIENT_ID", "clubsite"),
		MQTTContentTopic: getenv("MQTT_CONTENT_TOPIC", notify.DefaultContentTopic),
		MQTTEnquiryTopic: getenv("MQTT_ENQUIRY_TOPIC", notify.DefaultEnquiryTopic),

		SecretKey:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		UploadsDir:      getenv("UPLOADS_DIR", "./uploads"),
		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
	}

	var err error
	durations := []struct {
		key string
		dst *time.Duration
		def time.Duration
	}{
		{"CONTENT_TIMEOUT", &env.ContentTimeout, content.DefaultTimeout},
		{"CONTENT_CACHE_TTL", &env.ContentCacheTTL, content.DefaultCacheTTL},
		{"HERO_INTERVAL", &env.HeroInterval, 6 * time.Second},
		{"BROCHURE_MIRROR_TTL", &env.BrochureMirrorTTL, 24 * time.Hour},
	}
	for _, d := range durations {
		if *d.dst, err = getDuration(d.key, d.def); err != nil {
			return Environment{}, err
		}
	}

	if env.ContentAPIURL == "" {
		return Environment{}, errors.New("CONTENT_API_URL is required")
	}
	if env.AdminPasswordHash != "" && env.SecretKey == "" {
		return Environment{}, errors.New("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}
	if env.UseSpaces && (env.SpacesBucket == "" || env.SpacesEndpoint == "") {
		return Environment{}, errors.New("SPACES_ENDPOINT and SPACES_BUCKET are required when USE_SPACES=true")
	}

	return env, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

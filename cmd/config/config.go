package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/muhammadheryan/pendaftaran/constant"
)

type Config struct {
	Environment string
	Server      ServerConfig
	API         APIConfig
	Form        FormConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// APIConfig points at the external services that own the data.
type APIConfig struct {
	PendaftaranURL string
	NilaiURL       string
	Timeout        time.Duration
}

type FormConfig struct {
	RedirectDelay     time.Duration
	SubmissionLockTTL time.Duration
	// DisplayLocation is the zone registration dates are shown in.
	DisplayLocation *time.Location
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		API: APIConfig{
			PendaftaranURL: getEnv("PENDAFTARAN_API_URL", "https://gin-connect-production-pkpl.up.railway.app"),
			NilaiURL:       getEnv("NILAI_API_URL", "https://gin-connect-production.up.railway.app"),
			Timeout:        getEnvDuration("API_TIMEOUT", 10*time.Second),
		},
		Form: FormConfig{
			RedirectDelay:     getEnvDuration("REDIRECT_DELAY", constant.DefaultRedirectDelay),
			SubmissionLockTTL: getEnvDuration("SUBMISSION_LOCK_TTL", constant.DefaultSubmissionLockTTL),
			DisplayLocation:   getEnvLocation("DISPLAY_TIMEZONE", constant.DefaultDisplayTimezone),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getEnvLocation loads the IANA zone named by key. An unknown name falls back
// to the default zone, and that to a fixed UTC+7.
func getEnvLocation(key, fallback string) *time.Location {
	for _, name := range []string{os.Getenv(key), fallback} {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone("WIB", 7*60*60)
}

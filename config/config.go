package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	TimeZone          string `mapstructure:"TIMEZONE"`

	// Proxies whose X-Forwarded-For / X-Real-IP headers are believed. Empty
	// means client IPs come from the TCP peer only.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Redis configuration.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int           `mapstructure:"REDIS_QUEUE_DB"`
	SnapshotCache bool          `mapstructure:"SNAPSHOT_CACHE"`
	SnapshotTTL   time.Duration `mapstructure:"SNAPSHOT_TTL"`

	// "ticker" refreshes widgets in-process, "queue" goes through asynq.
	RefreshMode string        `mapstructure:"REFRESH_MODE"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`

	// Upstream endpoints.
	PriceAPIURL      string `mapstructure:"PRICE_API_URL"`
	QuoteAPIURL      string `mapstructure:"QUOTE_API_URL"`
	WeatherAPIURL    string `mapstructure:"WEATHER_API_URL"`
	WeatherCity      string `mapstructure:"WEATHER_CITY"`
	JokeAPIURL       string `mapstructure:"JOKE_API_URL"`
	ImageURL         string `mapstructure:"IMAGE_URL"`
	ImageFallbackURL string `mapstructure:"IMAGE_FALLBACK_URL"`
	CalendarICSURL   string `mapstructure:"CALENDAR_ICS_URL"`

	// Refresh intervals. Zero means fetch once at startup and on user action.
	PriceInterval    time.Duration `mapstructure:"PRICE_INTERVAL"`
	QuoteInterval    time.Duration `mapstructure:"QUOTE_INTERVAL"`
	WeatherInterval  time.Duration `mapstructure:"WEATHER_INTERVAL"`
	NameDayInterval  time.Duration `mapstructure:"NAMEDAY_INTERVAL"`
	JokeInterval     time.Duration `mapstructure:"JOKE_INTERVAL"`
	ClockInterval    time.Duration `mapstructure:"CLOCK_INTERVAL"`
	ImageInterval    time.Duration `mapstructure:"IMAGE_INTERVAL"`
	CalendarInterval time.Duration `mapstructure:"CALENDAR_INTERVAL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("TIMEZONE", "Europe/Paris")
	v.SetDefault("TRUSTED_PROXIES", []string{})

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("SNAPSHOT_CACHE", false)
	v.SetDefault("SNAPSHOT_TTL", time.Hour)

	v.SetDefault("REFRESH_MODE", "ticker")
	v.SetDefault("HTTP_TIMEOUT", 10*time.Second)

	v.SetDefault("PRICE_API_URL", "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd,eur&include_last_updated_at=true")
	v.SetDefault("QUOTE_API_URL", "https://api.quotable.io/random?tags=technology,business,success")
	v.SetDefault("WEATHER_API_URL", "https://goweather.herokuapp.com/weather/")
	v.SetDefault("WEATHER_CITY", "Paris")
	v.SetDefault("JOKE_API_URL", "https://icanhazdadjoke.com/")
	v.SetDefault("IMAGE_URL", "https://source.unsplash.com/800x600/?startup,technology,office")
	v.SetDefault("IMAGE_FALLBACK_URL", "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?crop=entropy&cs=tinysrgb&fit=crop&fm=jpg&h=600&q=80&w=800")
	v.SetDefault("CALENDAR_ICS_URL", "")

	v.SetDefault("PRICE_INTERVAL", time.Minute)
	v.SetDefault("QUOTE_INTERVAL", time.Hour)
	v.SetDefault("WEATHER_INTERVAL", 15*time.Minute)
	v.SetDefault("NAMEDAY_INTERVAL", time.Hour)
	v.SetDefault("JOKE_INTERVAL", time.Duration(0))
	v.SetDefault("CLOCK_INTERVAL", time.Second)
	v.SetDefault("IMAGE_INTERVAL", time.Duration(0))
	v.SetDefault("CALENDAR_INTERVAL", time.Minute)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves TIMEZONE, falling back to the host's local zone.
func Location() *time.Location {
	if AppConfig.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(AppConfig.TimeZone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using local time: %v", AppConfig.TimeZone, err)
		return time.Local
	}
	return loc
}

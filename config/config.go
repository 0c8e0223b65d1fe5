package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL string `mapstructure:"API_BASE_URL"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	// Request timeouts, in seconds. The upload timeout applies only to
	// multipart ticket attachments and is deliberately generous.
	HTTPTimeoutSeconds   int `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	UploadTimeoutSeconds int `mapstructure:"UPLOAD_TIMEOUT_SECONDS"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Payment redirect configuration. The hosted payment page finishes by
	// navigating to PAYMENT_REDIRECT_BASE; the local watcher listens on
	// PAYMENT_CALLBACK_ADDR for that navigation.
	PaymentRedirectBase string `mapstructure:"PAYMENT_REDIRECT_BASE"`
	PaymentCallbackAddr string `mapstructure:"PAYMENT_CALLBACK_ADDR"`

	// StorageDir is where the session artifacts (profile blob, encrypted
	// token files, device ID) live.
	StorageDir string `mapstructure:"STORAGE_DIR"`
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

	// Set default values.
	viper.SetDefault("API_BASE_URL", "https://staging.cocoliving.in")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("UPLOAD_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("PAYMENT_REDIRECT_BASE", "https://staging.cocoliving.in/payment/redirect")
	viper.SetDefault("PAYMENT_CALLBACK_ADDR", "127.0.0.1:8745")
	viper.SetDefault("STORAGE_DIR", defaultStorageDir())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cocoliving"
	}
	return filepath.Join(home, ".cocoliving")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	MealDB    MealDBConfig    `mapstructure:"mealdb"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	LogLevel  string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// MealDBConfig 外部食譜 API（TheMealDB）配置
type MealDBConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（允許不存在）
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("mealdb.base_url", "MEALDB_BASE_URL")
	viper.BindEnv("mealdb.api_key", "MEALDB_API_KEY")
	viper.BindEnv("mealdb.timeout", "MEALDB_TIMEOUT")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration", "mealdb_base_url:", viper.GetString("mealdb.base_url"), "mealdb_api_key:", MaskAPIKey(viper.GetString("mealdb.api_key")))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-tools")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// TheMealDB 設定（"1" 為官方公開測試金鑰）
	viper.SetDefault("mealdb.base_url", "https://www.themealdb.com/api/json/v1")
	viper.SetDefault("mealdb.api_key", "1")
	viper.SetDefault("mealdb.timeout", "10s")

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證外部 API 設定
	if config.MealDB.BaseURL == "" {
		return fmt.Errorf("mealdb base url is required")
	}
	if config.MealDB.APIKey == "" {
		return fmt.Errorf("mealdb api key is required")
	}
	if config.MealDB.Timeout <= 0 {
		return fmt.Errorf("invalid mealdb timeout")
	}

	// 驗證限流設定
	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit requests")
		}
		if config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window")
		}
	}

	return nil
}

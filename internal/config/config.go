package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultLRCLibURL      = "https://lrclib.net/api"
	DefaultUserAgent      = "lyrics-cli/1.0"
	DefaultRequestTimeout = 5 * time.Second
	DefaultMaxRetries     = 3

	// DefaultInstrumentalText 纯音乐占位文本
	DefaultInstrumentalText = "This track is an instrumental, no lyrics to display"
)

// TomlConfig TOML配置文件结构
type TomlConfig struct {
	App struct {
		InstrumentalText string `toml:"instrumental_text"`
	} `toml:"app"`

	LRCLib struct {
		BaseURL        string `toml:"base_url"`
		UserAgent      string `toml:"user_agent"`
		RequestTimeout string `toml:"request_timeout"`
		MaxRetries     int    `toml:"max_retries"`
	} `toml:"lrclib"`
}

// AppConfig 应用配置
type AppConfig struct {
	InstrumentalText string
}

// LRCLibConfig LRCLib客户端配置
type LRCLibConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
	MaxRetries     int
}

// Config 主配置结构
type Config struct {
	App    AppConfig
	LRCLib LRCLibConfig
}

// getConfigPath 获取配置文件路径
func getConfigPath() string {
	// 优先使用 XDG_CONFIG_HOME 环境变量
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lyrics-cli", "config.toml")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("WARN: Cannot get user home directory: %v", err)
		return "config.toml" // 回退到当前目录
	}

	return filepath.Join(homeDir, ".config", "lyrics-cli", "config.toml")
}

// loadTomlConfig 加载TOML配置文件
func loadTomlConfig() (*TomlConfig, error) {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("INFO: Config file not found at %s, using defaults", configPath)
		return &TomlConfig{}, nil
	}

	var config TomlConfig
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, err
	}

	log.Printf("INFO: Loaded config from %s", configPath)
	return &config, nil
}

func Load() *Config {
	// 加载 .env（不存在则忽略），环境变量优先级高于配置文件
	_ = godotenv.Load()

	tomlConfig, err := loadTomlConfig()
	if err != nil {
		log.Printf("ERROR: Failed to load config file: %v", err)
		log.Printf("INFO: Using default configuration")
		tomlConfig = &TomlConfig{}
	}

	// 设置默认值
	config := &Config{
		App: AppConfig{
			InstrumentalText: DefaultInstrumentalText,
		},
		LRCLib: LRCLibConfig{
			BaseURL:        DefaultLRCLibURL,
			UserAgent:      DefaultUserAgent,
			RequestTimeout: DefaultRequestTimeout,
			MaxRetries:     DefaultMaxRetries,
		},
	}

	// 从TOML配置中覆盖App设置
	if tomlConfig.App.InstrumentalText != "" {
		config.App.InstrumentalText = tomlConfig.App.InstrumentalText
	}

	// 从TOML配置中覆盖LRCLib设置
	if tomlConfig.LRCLib.BaseURL != "" {
		config.LRCLib.BaseURL = tomlConfig.LRCLib.BaseURL
	}

	if tomlConfig.LRCLib.UserAgent != "" {
		config.LRCLib.UserAgent = tomlConfig.LRCLib.UserAgent
	}

	if tomlConfig.LRCLib.RequestTimeout != "" {
		if duration, err := time.ParseDuration(tomlConfig.LRCLib.RequestTimeout); err == nil {
			config.LRCLib.RequestTimeout = duration
		} else {
			log.Printf("WARN: Invalid request_timeout format '%s', using default", tomlConfig.LRCLib.RequestTimeout)
		}
	}

	if tomlConfig.LRCLib.MaxRetries != 0 {
		config.LRCLib.MaxRetries = tomlConfig.LRCLib.MaxRetries
	}

	// 从环境变量中覆盖
	if baseURL := os.Getenv("LRCLIB_BASE_URL"); baseURL != "" {
		config.LRCLib.BaseURL = baseURL
	}

	if userAgent := os.Getenv("LRCLIB_USER_AGENT"); userAgent != "" {
		config.LRCLib.UserAgent = userAgent
	}

	if instrumental := os.Getenv("INSTRUMENTAL_TEXT"); instrumental != "" {
		config.App.InstrumentalText = instrumental
	}

	return config
}

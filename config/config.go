package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 全部运行配置，进程启动时从环境变量读取一次，
// 之后显式传入各组件，核心逻辑里不再读取环境变量
type Config struct {
	// RAWG接口
	APIKey         string        // RAWG_API_KEY，缺失则启动失败
	APIBase        string        // RAWG_API_BASE，默认官方地址
	RequestTimeout time.Duration // 单次请求超时
	MaxRetries     int           // 可重试错误的最大尝试次数
	RetryBackoff   time.Duration // 5xx退避基数，按尝试次数递增
	RetryAfter429  time.Duration // 触发限流后的固定等待

	// 存储
	DBDriver string // mysql 或 sqlite
	DBPath   string // sqlite数据库文件路径

	// 富集策略
	ShotsDir        string        // 本地截图根目录，子目录名即游戏ID
	MaxImages       int           // 单个游戏截图软上限
	ItemDelay       time.Duration // 逐条处理之间的礼貌延迟
	RecheckInterval time.Duration // 补全扫描的重查间隔
	SweepInterval   time.Duration // 定时扫描周期

	// HTTP服务
	HTTPAddr string

	// 运行摘要邮件通知
	Mail MailConfig
}

// MailConfig 运行摘要邮件配置
type MailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Load 从环境变量构建配置。RAWG_API_KEY缺失是唯一的致命配置错误
func Load() (*Config, error) {
	apiKey := os.Getenv("RAWG_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("缺少RAWG_API_KEY，请在.env或环境变量中配置")
	}

	cfg := &Config{
		APIKey:         apiKey,
		APIBase:        getEnv("RAWG_API_BASE", "https://api.rawg.io/api"),
		RequestTimeout: getEnvDuration("LG_REQUEST_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("LG_MAX_RETRIES", 3),
		RetryBackoff:   getEnvDuration("LG_RETRY_BACKOFF", 2*time.Second),
		RetryAfter429:  getEnvDuration("LG_RETRY_429_SLEEP", 60*time.Second),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBPath:   getEnv("LG_DB", "latestgames.db"),

		ShotsDir:        getEnv("LG_SHOTS_DIR", "screenshots"),
		MaxImages:       getEnvInt("LG_MAX_IMAGES", 50),
		ItemDelay:       getEnvDuration("LG_ITEM_DELAY", 200*time.Millisecond),
		RecheckInterval: getEnvDuration("LG_RECHECK_INTERVAL", 24*time.Hour),
		SweepInterval:   getEnvDuration("LG_SWEEP_INTERVAL", 6*time.Hour),

		HTTPAddr: getEnv("LG_HTTP_ADDR", ":8081"),

		Mail: MailConfig{
			Enabled:  getEnv("MAIL_ENABLED", "") == "1",
			Host:     os.Getenv("MAIL_HOST"),
			Port:     getEnvInt("MAIL_PORT", 465),
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
			To:       os.Getenv("MAIL_TO"),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	API       APIConfig       `mapstructure:"api"`
	App       AppConfig       `mapstructure:"app"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	SiteURL        string     `mapstructure:"site_url"` // 用于 OpenGraph 绝对地址
	CORS           CORSConfig `mapstructure:"cors"`
	TrustedProxies []string   `mapstructure:"trusted_proxies"` // 反向代理 IP/CIDR，为空时不信任 X-Forwarded-For
}

// CORSConfig 跨域配置（仅作用于 /api）
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// APIConfig 外部挑战服务配置
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// AppConfig 移动端应用相关配置
type AppConfig struct {
	Name         string `mapstructure:"name"`
	Scheme       string `mapstructure:"scheme"`
	AppStoreURL  string `mapstructure:"app_store_url"`
	PlayStoreURL string `mapstructure:"play_store_url"`
	SupportEmail string `mapstructure:"support_email"`
	LearnMoreURL string `mapstructure:"learn_more_url"`
}

// RedisConfig Redis 配置（仅用于限流，可关闭）
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig 邀请路由限流配置
type RateLimitConfig struct {
	InviteLimit  int           `mapstructure:"invite_limit"`
	InviteWindow time.Duration `mapstructure:"invite_window"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig 链路追踪配置，endpoint 为空时不启用
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.site_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{})
	v.SetDefault("server.trusted_proxies", []string{})

	v.SetDefault("api.base_url", "")

	v.SetDefault("app.name", "Let's Fit Go")
	v.SetDefault("app.scheme", "lfg")
	v.SetDefault("app.app_store_url", "")
	v.SetDefault("app.play_store_url", "")
	v.SetDefault("app.support_email", "support@letsfitgo.com")
	v.SetDefault("app.learn_more_url", "/")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.invite_limit", 30)
	v.SetDefault("rate_limit.invite_window", "1m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.service_name", "lfg-web")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("LFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	cfg.Server.SiteURL = strings.TrimRight(cfg.Server.SiteURL, "/")

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("配置校验失败: api.base_url 不能为空")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("配置校验失败: api.base_url 必须是 http(s) 地址")
	}
	if c.App.Scheme == "" || strings.Contains(c.App.Scheme, "://") {
		return fmt.Errorf("配置校验失败: app.scheme 必须是不含 :// 的协议名")
	}
	if c.RateLimit.InviteLimit <= 0 || c.RateLimit.InviteWindow <= 0 {
		return fmt.Errorf("配置校验失败: rate_limit 参数必须为正数")
	}
	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("配置校验失败: server.trusted_proxies 包含无效地址 %q", p)
			}
		}
	}
	return nil
}

// [自证通过] config/config.go

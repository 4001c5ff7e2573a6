package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithFile(t *testing.T) {
	path := writeConfig(t, "api:\n  base_url: https://api.example.com/\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("期望 port=8080，实际=%d", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("期望去除末尾斜杠，实际=%s", cfg.API.BaseURL)
	}
	if cfg.App.Scheme != "lfg" {
		t.Errorf("期望 scheme=lfg，实际=%s", cfg.App.Scheme)
	}
	if cfg.RateLimit.InviteWindow != time.Minute {
		t.Errorf("期望 invite_window=1m，实际=%s", cfg.RateLimit.InviteWindow)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis 默认应关闭")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "api:\n  base_url: https://api.example.com\napp:\n  scheme: lfg\n")
	t.Setenv("LFG_APP_SCHEME", "letsfitgo")
	t.Setenv("LFG_SERVER_PORT", "9090")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.App.Scheme != "letsfitgo" {
		t.Errorf("期望环境变量覆盖 scheme，实际=%s", cfg.App.Scheme)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望环境变量覆盖 port，实际=%d", cfg.Server.Port)
	}
}

func TestLoad_MissingAPIBaseURL(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")

	if _, err := Load(path); err == nil {
		t.Fatal("缺少 api.base_url 时应返回错误")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:    ServerConfig{Port: 8080},
			API:       APIConfig{BaseURL: "https://api.example.com"},
			App:       AppConfig{Scheme: "lfg"},
			RateLimit: RateLimitConfig{InviteLimit: 10, InviteWindow: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"ftp base url", func(c *Config) { c.API.BaseURL = "ftp://api.example.com" }, true},
		{"base url without host", func(c *Config) { c.API.BaseURL = "https://" }, true},
		{"empty scheme", func(c *Config) { c.App.Scheme = "" }, true},
		{"scheme with separator", func(c *Config) { c.App.Scheme = "lfg://" }, true},
		{"zero window", func(c *Config) { c.RateLimit.InviteWindow = 0 }, true},
		{"trusted proxy ip and cidr", func(c *Config) { c.Server.TrustedProxies = []string{"10.0.0.1", "172.16.0.0/12"} }, false},
		{"invalid trusted proxy", func(c *Config) { c.Server.TrustedProxies = []string{"load-balancer"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

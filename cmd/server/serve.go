package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"letsfitgo/web/config"
	"letsfitgo/web/internal/api/handler"
	"letsfitgo/web/internal/api/middleware"
	"letsfitgo/web/internal/api/router"
	"letsfitgo/web/internal/client"
	"letsfitgo/web/internal/service"
	"letsfitgo/web/internal/web"
	applogger "letsfitgo/web/pkg/logger"
	"letsfitgo/web/pkg/redis"
	"letsfitgo/web/pkg/telemetry"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "启动 HTTP 服务",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	// 1. 加载配置
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 链路追踪
	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("初始化链路追踪失败: %w", err)
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，限流不可用）
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，邀请路由限流将不可用", zap.Error(err))
			rdb = nil
		}
	}

	// 5. 模板
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}

	// 6. 依赖注入: Client → Service → Handler
	challengeClient := client.NewChallengeClient(cfg.API.BaseURL, &http.Client{}, logger)
	svc := service.NewService(challengeClient, logger)
	h := handler.NewHandler(cfg, svc, tmpl, logger)

	// 7. 初始化路由（rdb 为 nil 时不传入，避免非 nil 接口包裹 nil 指针）
	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}
	engine := router.Setup(cfg, h, tmpl, limiter, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	// 邀请页在查询完成前保持连接，不设置 WriteTimeout
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 9. 等待关闭信号
	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("HTTP 服务器异常", zap.Error(err))
			return err
		}
	case <-ctx.Done():
		logger.Info("收到关闭信号，开始优雅关闭...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("链路追踪关闭异常", zap.Error(err))
	}

	// 关闭 Redis 连接
	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("服务器已关闭")
	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/config"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/api/handler"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/api/router"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	applogger "github.com/ilyasbozdemir/personel-duty-tracking/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("NOBET_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开存储（memory / redis / postgres）
	storage, err := repository.OpenStorage(cfg, logger)
	if err != nil {
		logger.Fatal("存储初始化失败", zap.Error(err))
	}

	// 4. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(storage.KV)
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(svc)

	// 5. 初始化路由（仅 redis 驱动下启用导出限流）
	engine := router.Setup(cfg, h, storage.Redis, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	storage.Close()

	logger.Info("服务器已关闭")
}

// Package main はアクセス認可サービスのエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/acct"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/authz"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/config"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/identity"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/nasattr"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/portal"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/quota"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/server"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/session"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/store"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化（JSON形式、INFO以上）
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("app", "access-authd")
	slog.SetDefault(logger)

	slog.Info("starting access authorization service",
		"listen_addr", cfg.ListenAddr,
		"portal_api_url", cfg.PortalAPIURL,
		"default_profile_id", cfg.DefaultProfileID,
	)

	// 3. Valkeyクライアント初期化
	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("failed to connect to Valkey",
			"event_id", "VALKEY_CONN_ERR",
			"error", err,
		)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("connected to Valkey", "addr", cfg.ValkeyAddr())

	// 4. Portal Backendクライアント初期化
	portalClient := portal.NewClient(cfg)

	// 5. Store層生成
	voucherStore := store.NewVoucherStore(valkeyClient)
	userStore := store.NewUserStore(valkeyClient)
	profileStore := store.NewProfileStore(valkeyClient, portalClient, cfg.DefaultProfileID)
	sessionStore := store.NewSessionStore(valkeyClient)

	// 6. 判定コンポーネント生成
	resolver := identity.NewResolver(voucherStore, userStore, profileStore)
	enforcer := quota.NewEnforcer()
	sessionManager := session.NewManager(sessionStore)
	encoders := nasattr.DefaultRegistry()

	// 7. 認可エンジン
	engine := authz.NewEngine(resolver, enforcer, sessionManager, encoders, cfg)

	// 8. アカウンティングプロセッサー
	processor := acct.NewProcessor(userStore, sessionStore)

	// 9. HTTPサーバー
	handler := server.NewHandler(engine, processor)
	srv := server.New(cfg, handler)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// 10. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("signal received, shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("shutdown error", "error", err)
	}

	slog.Info("access authorization service stopped")
}

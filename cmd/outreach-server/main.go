package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"outreach-automation/internal/common/aws"
	"outreach-automation/internal/common/config"
	"outreach-automation/internal/common/logger"
	"outreach-automation/internal/common/observability"
	"outreach-automation/internal/common/sheets"
	"outreach-automation/internal/pipeline/campaign"
	"outreach-automation/internal/pipeline/discovery"
	"outreach-automation/internal/pipeline/dispatcher"
	"outreach-automation/internal/pipeline/extractor"
	"outreach-automation/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting outreach server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("outreach-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// The outreach log is opened up front; a failure here is logged but does
	// not stop the server, so the operator can still reach the dashboard and
	// fix the credential file. Any campaign start will refuse to run.
	var store sheets.Store
	openCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Sheets.Timeout))
	client, err := sheets.Open(openCtx, cfg.Sheets)
	cancel()
	if err != nil {
		zapLog.Warn("outreach log unavailable", zap.Error(err))
	} else {
		store = sheets.NewSheetStore(client)
	}

	sender, err := buildSender(ctx, cfg)
	if err != nil {
		zapLog.Fatal("sender setup failed", zap.Error(err))
	}

	discoverer := discovery.NewService(&discovery.Config{
		BaseURL:    cfg.Search.BaseURL,
		APIKey:     cfg.Search.APIKey,
		Engine:     cfg.Search.Engine,
		Timeout:    config.GetDuration(cfg.Search.Timeout),
		MaxResults: cfg.Campaign.MaxResults,
	}, log)

	extract := extractor.NewService(&extractor.Config{
		FetchTimeout: config.GetDuration(cfg.Campaign.FetchTimeout),
		UserAgent:    cfg.Campaign.UserAgent,
		MaxEmails:    2,
	}, log)

	dispatch := dispatcher.NewService(sender, store, log)
	driver := campaign.NewDriver(cfg, discoverer, extract, dispatch, store, obs, log)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: server.New(cfg, driver, store, log).Handler(),
	}

	go func() {
		zapLog.Info("Dashboard listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down server", zap.Error(err))
	}

	zapLog.Info("Outreach server stopped gracefully")
}

// buildSender selects the delivery backend from config. SMTP credentials are
// not checked here; the campaign driver validates them at start time.
func buildSender(ctx context.Context, cfg *config.Config) (dispatcher.Sender, error) {
	if cfg.Sender.Provider == "ses" {
		client, err := aws.NewSESClient(ctx, cfg.Sender.SES.Region)
		if err != nil {
			return nil, err
		}
		return dispatcher.NewSESSender(client, cfg.Sender.FromEmail), nil
	}

	return dispatcher.NewSMTPSender(&dispatcher.Config{
		SMTPHost:     cfg.Sender.SMTP.Host,
		SMTPPort:     cfg.Sender.SMTP.Port,
		SMTPUsername: cfg.Sender.SMTP.Username,
		SMTPPassword: cfg.Sender.SMTP.Password,
		UseTLS:       cfg.Sender.SMTP.UseTLS,
		FromEmail:    cfg.Sender.FromEmail,
	}), nil
}

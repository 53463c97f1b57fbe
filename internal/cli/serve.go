package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/parallax"
	"github.com/Zachkp/portfolio/internal/resume"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/web"
)

const serviceName = "portfolio"

func serveCmd() *cobra.Command {
	var assetsDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, assetsDir)
		},
	}

	cmd.Flags().StringVar(&assetsDir, "assets", ".", "directory containing static/, images/ and public/")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, assetsDir string) error {
	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	portfolio, err := loadPortfolio(cfg)
	if err != nil {
		return err
	}
	holder := content.NewHolder(portfolio)

	resumeStore, err := buildResumeStore(ctx, cfg)
	if err != nil {
		return err
	}

	sessions := session.NewStore(cfg.Session.IdleTTL, logger.Named("session"))
	sweeper, err := sessions.StartSweeper(cfg.Session.SweepSpec)
	if err != nil {
		return fmt.Errorf("start session sweeper: %w", err)
	}

	contactSvc := contact.NewService(
		buildRelay(cfg, logger.Named("mailer")),
		cfg.Contact.SchedulingURL,
		portfolio.Profile.Email,
		logger.Named("contact"),
	)

	router, err := web.NewRouter(web.Deps{
		ServiceName:      serviceName,
		Version:          cfg.App.Version,
		Logger:           logger.Named("http"),
		Portfolio:        holder,
		Contact:          contactSvc,
		Sessions:         sessions,
		Resume:           resumeStore,
		ResumeFilename:   cfg.Resume.Filename,
		Parallax:         parallax.DefaultSettings,
		ContactPerMinute: cfg.Contact.RatePerMinute,
		ContactBurst:     cfg.Contact.Burst,
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		SecureCookies:    cfg.IsProduction(),
		AssetsDir:        assetsDir,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: router}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if cfg.Content.Path != "" {
		g.Go(func() error {
			if err := content.Watch(gctx, cfg.Content.Path, holder, logger.Named("content")); err != nil {
				logger.Warn("content hot reload disabled", zap.Error(err))
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		<-sweeper.Stop().Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func loadPortfolio(cfg *config.Config) (*content.Portfolio, error) {
	if cfg.Content.Path != "" {
		return content.LoadFile(cfg.Content.Path)
	}
	return content.Default()
}

func buildResumeStore(ctx context.Context, cfg *config.Config) (resume.Store, error) {
	if cfg.Resume.S3Bucket != "" {
		return resume.NewS3StoreFromEnv(ctx, cfg.Resume.Region, cfg.Resume.S3Bucket, cfg.Resume.S3Key)
	}
	return resume.NewFileStore(cfg.Resume.Path), nil
}

// buildRelay prefers EmailJS, falls back to SMTP, and otherwise returns a
// relay that reports every send as not configured.
func buildRelay(cfg *config.Config, logger *zap.Logger) contact.Relay {
	switch {
	case cfg.EmailJS.Configured():
		return mailer.NewEmailJS(mailer.EmailJSConfig{
			ServiceID:  cfg.EmailJS.ServiceID,
			TemplateID: cfg.EmailJS.TemplateID,
			PublicKey:  cfg.EmailJS.PublicKey,
			PrivateKey: cfg.EmailJS.PrivateKey,
			Endpoint:   cfg.EmailJS.Endpoint,
		}, nil, logger)
	case cfg.SMTP.Configured():
		return mailer.NewSMTP(mailer.SMTPConfig{
			Host:    cfg.SMTP.Host,
			Port:    cfg.SMTP.Port,
			User:    cfg.SMTP.User,
			Pass:    cfg.SMTP.Pass,
			ToEmail: cfg.SMTP.ToEmail,
		}, logger)
	default:
		logger.Warn("no email relay configured; contact submissions will be refused")
		return mailer.Unconfigured{}
	}
}

package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/harichselvamc/merakiartist/internal/adapters/httpserver"
	"github.com/harichselvamc/merakiartist/internal/adapters/mail"
	"github.com/harichselvamc/merakiartist/internal/adapters/storage/localfs"
	"github.com/harichselvamc/merakiartist/internal/catalog"
	"github.com/harichselvamc/merakiartist/internal/config"
	"github.com/harichselvamc/merakiartist/internal/domain"
)

type App struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Storage domain.FileStorage
	Mailer  domain.MailSender
}

func NewApp(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &App{
		Config:  cfg,
		Catalog: catalog.New(),
		Storage: localfs.New(cfg.StorageDir, cfg.BaseURL),
		Mailer: mail.New(mail.Config{
			Host:  cfg.SMTPHost,
			Port:  cfg.SMTPPort,
			User:  cfg.SMTPUser,
			Pass:  cfg.SMTPPass,
			From:  cfg.EmailFrom,
			Admin: cfg.AdminEmail,
		}),
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Catalog, a.Storage, a.Mailer, a.Config.StorageDir, a.Config.AllowedOrigin)
}

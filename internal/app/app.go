package app

import (
	"fmt"

	"github.com/rabotyaga1336/doc-helper/core/bootstrap"
	corecmd "github.com/rabotyaga1336/doc-helper/core/cmd"
	"github.com/rabotyaga1336/doc-helper/core/logger"
	coretelegram "github.com/rabotyaga1336/doc-helper/core/telegram"
	"github.com/rabotyaga1336/doc-helper/core/telegram/router"
	"github.com/rabotyaga1336/doc-helper/core/telegram/state"
	"github.com/rabotyaga1336/doc-helper/internal/bot"
	"github.com/rabotyaga1336/doc-helper/internal/dialog"
	"github.com/rabotyaga1336/doc-helper/internal/images"
	"github.com/rabotyaga1336/doc-helper/internal/service"
	"github.com/rabotyaga1336/doc-helper/internal/storage"
)

// App is the bootstrapped application.
type App struct {
	cfg *Config
	bot *bot.Bot
}

// Bootstrap initializes the logger, database, migrations and seeders, then
// wires the content services, the authoring dialog and the bot surface.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
		Modules: bootstrap.Modules{
			Seeders: []bootstrap.Seeder{bootstrap.SeederFunc(seedReferenceData)},
		},
	})
	if err != nil {
		return nil, err
	}

	store := storage.New(res.DB)
	imgs, err := images.NewStore(cfg.Content.ImageDir)
	if err != nil {
		return nil, err
	}

	newsSvc := service.NewNews(store, imgs, cfg.Content.NewsLimit, logger.SVCNews)
	docsSvc := service.NewDocs(store, logger.SVCDocs)
	contactsSvc := service.NewContacts(store, logger.SVCContacts)

	adminID := cfg.Core.Telegram.AdminID
	dlg := dialog.New(adminID, state.NewMemoryManager(), newsSvc, imgs, logger.SVCDialog)
	b := bot.New(adminID, newsSvc, docsSvc, contactsSvc, dlg, imgs, logger.TG)

	return &App{cfg: cfg, bot: b}, nil
}

// TelegramRunOptions assembles the registry, middleware chain and routes for
// the core bot runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.bot.Register(reg)

	fb := a.bot.Fallbacks()
	reg.SetCallbackNotFound(fb.UnknownCallback())

	adminID := a.cfg.Core.Telegram.AdminID
	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:       adminID,
		OnAdminReject: a.bot.RejectNonAdmin(),
	})
	routes = append(routes, router.TextRoutes(a.bot.Dialog().States(), reg, router.TextOptions{
		UnknownText:     fb.UnknownText(),
		UnknownDocument: fb.UnknownDocument(),
		UnknownPhoto:    fb.UnknownPhoto(),
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: fb.UnknownCallback(),
	}))

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
	}, nil
}

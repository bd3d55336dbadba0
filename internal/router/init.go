package router

import (
	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/internal/container"
	"github.com/federalbonds/backend/internal/infrastructure/postgres"
	handlers "github.com/federalbonds/backend/internal/interface/http"
	"github.com/federalbonds/backend/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	users := postgres.NewUserRepository(pool)
	profiles := postgres.NewProfileRepository(pool)
	products := postgres.NewProductRepository(pool)
	investments := postgres.NewInvestmentRepository(pool)
	accounts := postgres.NewAccountRepository(pool)

	accountSvc := &application.AccountService{
		Accounts:    accounts,
		Users:       users,
		Profiles:    profiles,
		JWT:         container.GetJWT(),
		RememberTTL: cfg.RememberTTL,
		Redis:       container.GetRedis(),
		Logger:      logger,
		Pub:         container.GetRabbitPub(),
		MailEnabled: cfg.MailSendEnabled,
	}
	catalogSvc := &application.CatalogService{Products: products, Logger: logger}
	investmentSvc := &application.InvestmentService{Investments: investments, Products: products, Logger: logger}
	profileSvc := &application.ProfileService{
		Profiles:    profiles,
		Investments: investments,
		Accounts:    accounts,
		GCS:         container.GetGCS(),
		GCSBucket:   cfg.GCSBucket,
		Redis:       container.GetRedis(),
		Logger:      logger,
	}

	r.Add(modules.NewAccountModule(
		handlers.NewAccountHandler(accountSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
		container.GetJWT(),
	))
	r.Add(modules.NewHomeModule(handlers.NewHomeHandler(catalogSvc, logger)))
	r.Add(modules.NewCatalogModule(handlers.NewProductHandler(catalogSvc, logger)))
	r.Add(modules.NewInvestmentModule(
		handlers.NewInvestmentHandler(investmentSvc, logger),
		container.GetJWT(),
	))
	r.Add(modules.NewProfileModule(
		handlers.NewProfileHandler(profileSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
		container.GetJWT(),
	))
}

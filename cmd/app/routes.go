package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"

	"remitsvc/internal/api"
	"remitsvc/internal/api/middleware"
	"remitsvc/internal/service"
)

func (app *App) initHTTP(quoteService service.QuoteServiceInterface, transferService service.TransferServiceInterface) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(app.logger, "/healthz", "/readyz"))
	r.Use(chimiddleware.Recoverer)

	r.Post("/quotes", api.HandleCreateQuote(quoteService))
	r.Post("/transfers", api.HandleCreateTransfer(quoteService, transferService))
	r.Get("/transfers", api.HandleListTransfers(transferService))
	r.Get("/transfers/{transfer_id}", api.HandleGetTransfer(transferService))
	r.Get("/currencies", api.HandleListCurrencies(quoteService))
	r.Get("/rates/reference", api.HandleReferenceRates(quoteService))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.db, app.rdbCache, app.rdbAsynq))

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	if app.cfg.Server.ServeAsynqmon {
		mon := asynqmon.New(asynqmon.Options{
			RootPath:     "/monitoring/tasks",
			RedisConnOpt: asynq.RedisClientOpt{Addr: app.cfg.Redis.AsynqAddr},
		})
		r.Mount(mon.RootPath(), mon)
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

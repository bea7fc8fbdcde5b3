package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.elastic.co/apm/module/apmgin"

	_ "github.com/lloydmeta/docsproxy/docs"
	documentController "github.com/lloydmeta/docsproxy/internal/api/controllers/document"
	"github.com/lloydmeta/docsproxy/internal/config"
	"github.com/lloydmeta/docsproxy/internal/domain/document"
	"github.com/lloydmeta/docsproxy/internal/infra/metrics"
	"github.com/lloydmeta/docsproxy/internal/infra/server/routing"
	"github.com/lloydmeta/docsproxy/internal/infra/server/routing/documents"
)

// Components holds everything the server needs to run
type Components struct {
	config *config.App
	setup  Setup
	engine *gin.Engine
}

func NewComponents(conf *config.App) (*Components, error) {
	service, database, err := NewStore(conf.Store)
	if err != nil {
		return nil, err
	}
	registry := prometheus.NewRegistry()
	collectors := metrics.NewCollectors()
	collectors.Register(registry)
	return &Components{
		config: conf,
		setup:  NewSetup(database),
		engine: newEngine(metrics.NewInstrumentedService(service, collectors), registry),
	}, nil
}

func newEngine(service document.Service, registry *prometheus.Registry) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		logger.SetLogger(),
		gzip.Gzip(gzip.DefaultCompression),
		apmgin.Middleware(engine),
	)
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(routing.NoRoute)
	engine.NoMethod(routing.NoMethod)

	topLevelRoutesGroup := routing.NewTopLevelRoutesGroup(engine)
	documentsHandler := documents.RoutesHandler{
		Controller: documentController.New(service),
	}
	documentsHandler.RegisterRoutes(topLevelRoutesGroup)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return engine
}

// Handler returns the http.Handler that serves all routes
func (c *Components) Handler() http.Handler {
	return c.engine
}

// Address is where the server listens
func (c *Components) Address() string {
	return fmt.Sprintf("%s:%d", c.config.BindHost, c.config.Port)
}

// Run serves until SIGINT or SIGTERM, then gives in-flight requests until the configured
// shutdown timeout to finish.
func (c *Components) Run() {
	if c.config.AutoSetup {
		if err := c.setup.RunIfNeeded(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to set up the store")
		}
	} else if err := c.setup.Check(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Store setup check failed, data operations may fail")
	}

	srv := &http.Server{
		Addr:    c.Address(),
		Handler: c.engine,
	}

	go func() {
		log.Info().Str("address", srv.Addr).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), c.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exiting")
}

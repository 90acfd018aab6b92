package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"holohome/internal/assistant"
	"holohome/internal/handlers"
	"holohome/internal/logger"
	"holohome/internal/metrics"
	"holohome/internal/repository"
	"holohome/internal/repository/db"
	"holohome/internal/server"
	"holohome/internal/service"
	"holohome/internal/store"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open the in-memory activity log store
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	st := store.New(store.Seed(), service.TotalPower)
	repos := repository.NewRepository(database)
	mtr := metrics.New(prometheus.DefaultRegisterer)
	mtr.SetTotalPower(st.Status().TotalPowerWatts)

	gen, err := assistant.NewClient(assistant.Config{
		BaseURL: viper.GetString("assistant.base_url"),
		APIKey:  viper.GetString("assistant.api_key"),
		Timeout: viper.GetDuration("assistant.timeout"),
	})
	if err != nil {
		log.Fatalw("failed to init assistant client", "err", err)
	}

	services, err := service.NewService(st, repos, gen, mtr, service.Config{
		SimulatedLatency: viper.GetDuration("assistant.simulated_latency"),
	})
	if err != nil {
		log.Fatalw("failed to init services", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetDefault("port", "8080")
	viper.SetDefault("db.dsn", db.InMemoryDSN)
	viper.SetDefault("assistant.timeout", 15*time.Second)
	viper.SetDefault("assistant.simulated_latency", 1500*time.Millisecond)

	viper.SetEnvPrefix("holohome")
	_ = viper.BindEnv("assistant.api_key", "HOLOHOME_ASSISTANT_API_KEY")

	return viper.ReadInConfig()
}

// openDB initializes the SQLite database backing the activity log.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dsn := viper.GetString("db.dsn")
	if dsn == "" {
		log.Infow("db.dsn not set in config; using in-memory database")
		dsn = db.InMemoryDSN
	}
	return db.InitDB(dsn)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful
// shutdown. Nothing needs flushing: all dashboard state is ephemeral.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

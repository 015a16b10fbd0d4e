package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Strum355/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"melodex/auth"
	"melodex/config"
	"melodex/db_client"
	"melodex/handlers"
	"melodex/middleware"
	"melodex/songs"
	"melodex/yt"
)

var production *bool

func main() {
	// Sets Flag to Debug Mode
	production = flag.Bool("p", false, "enables production with json logging")
	flag.Parse()
	if *production {
		log.InitJSONLogger(&log.Config{Output: os.Stdout})
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	}

	// Sets up Configurations for Viper
	config.InitConfig()
	if err := config.Validate(); err != nil {
		log.WithError(err).Error("Configuration incomplete")
		os.Exit(1)
	}

	db, err := db_client.Init(viper.GetString("database.url"))
	if err != nil {
		log.WithError(err).Error("Unable to connect to database")
		os.Exit(1)
	}

	authSvc := auth.NewService(db, viper.GetString("jwt.secret"))
	songSvc := songs.NewService(db, yt.NewResolver())
	h := handlers.New(authSvc, songSvc)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.CORS())
	h.RegisterRoutes(router, middleware.Auth(authSvc))

	addr := fmt.Sprintf(":%d", viper.GetInt("server.port"))
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.WithFields(log.Fields{"addr": addr}).Info("Music library API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server stopped unexpectedly")
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	gracefulShutdown(srv)
}

// gracefulShutdown drains in-flight requests before exiting
func gracefulShutdown(srv *http.Server) {
	log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}

	log.Info("Cleanly exiting")
}

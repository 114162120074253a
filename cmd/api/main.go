package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vessel-propsim/internal/api/handlers"
	"vessel-propsim/internal/api/middleware"
	"vessel-propsim/internal/simulator"
	"vessel-propsim/internal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	dbPath := os.Getenv("VESSEL_DB")
	if dbPath == "" {
		dbPath = "data/vessel.db"
	}

	st, err := store.Open(dbPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("open store")
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("init schema")
	}
	if err := st.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed reference data")
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	simHandler := handlers.NewSimulationHandler(simulator.New())
	catalogHandler := handlers.NewCatalogHandler(st, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simHandler.RunSimulation)
		api.POST("/compare", simHandler.CompareConfigurations)
		api.POST("/sensitivity", simHandler.FuelPriceSensitivity)

		api.GET("/configurations", catalogHandler.ListConfigurations)
		api.GET("/profiles", catalogHandler.ListProfiles)
		api.GET("/results", catalogHandler.ListResults)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

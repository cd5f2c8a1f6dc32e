package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/commonmark/internal/api"
	"github.com/inkwell-md/commonmark/internal/cache"
	"github.com/inkwell-md/commonmark/internal/config"
	"github.com/inkwell-md/commonmark/internal/logging"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	var c *cache.Cache
	if cfg.CacheDir != "" {
		c, err = cache.Open(cache.Config{Dir: cfg.CacheDir})
		if err != nil {
			return err
		}
		defer c.Close()
	}

	srv := api.New(logger, c, cfg.RateLimitPerSec, cfg.RateLimitBurst)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	srv.Routes(engine)

	logger.Info("listening", "addr", cfg.ListenAddr)
	return engine.Run(cfg.ListenAddr)
}

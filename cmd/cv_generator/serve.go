package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hireable/cv-generator/internal/config"
	"github.com/hireable/cv-generator/internal/conversion"
	"github.com/hireable/cv-generator/internal/db"
	"github.com/hireable/cv-generator/internal/logger"
	"github.com/hireable/cv-generator/internal/parsing"
	"github.com/hireable/cv-generator/internal/pipeline"
	"github.com/hireable/cv-generator/internal/rendering"
	"github.com/hireable/cv-generator/internal/server"
	"github.com/hireable/cv-generator/internal/storage"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating CV documents.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Default()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	store, err := storage.New(ctx, storage.Options{
		Endpoint:       cfg.StorageEndpoint,
		AccessKeyID:    cfg.StorageAccessKey,
		SecretKey:      cfg.StorageSecretKey,
		UseSSL:         cfg.StorageUseSSL,
		TemplateBucket: cfg.TemplateBucket,
		ArtifactBucket: cfg.ArtifactBucket,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to set up object storage: %w", err)
	}

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		log.Info().Msg("generation history enabled")
	}

	pipe := pipeline.New(
		rendering.NewRenderer(store),
		conversion.NewHTTPConverter(cfg.ConverterURL, cfg.ConverterAPIKey),
		storage.NewPublisher(store, cfg.SignedURLTTL),
		profile,
		cfg.DefaultTemplate,
		database,
		log,
	)

	srv, err := server.New(cfg, server.Deps{
		Pipeline: pipe,
		Parser:   parsing.NewClient(cfg.ParserURL),
		DB:       database,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hireable/cv-generator/internal/config"
	"github.com/hireable/cv-generator/internal/conversion"
	"github.com/hireable/cv-generator/internal/logger"
	"github.com/hireable/cv-generator/internal/pipeline"
	"github.com/hireable/cv-generator/internal/rendering"
	"github.com/hireable/cv-generator/internal/storage"
	"github.com/hireable/cv-generator/internal/validation"
)

var generateRequestFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single CV from a request file",
	Long:  `Run the generation pipeline once for a JSON customization request and print the retrieval URL.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateRequestFile, "request", "", "Path to the customization request JSON file")
	_ = generateCmd.MarkFlagRequired("request")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	raw, err := os.ReadFile(generateRequestFile)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	req, err := validation.ParseAndValidate(raw)
	if err != nil {
		return err
	}

	log := logger.Default()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
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

	pipe := pipeline.New(
		rendering.NewRenderer(store),
		conversion.NewHTTPConverter(cfg.ConverterURL, cfg.ConverterAPIKey),
		storage.NewPublisher(store, cfg.SignedURLTTL),
		profile,
		cfg.DefaultTemplate,
		nil,
		log,
	)

	handle, err := pipe.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println(handle.URL)
	return nil
}

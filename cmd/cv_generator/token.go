package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hireable/cv-generator/internal/config"
	"github.com/hireable/cv-generator/internal/server"
)

var tokenClientID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for an API client",
	Long:  `Generate a signed JWT for the given client ID, using JWT_SECRET and JWT_EXPIRATION_HOURS from the environment.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client UUID to embed in the token (default: random)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	clientID := uuid.New()
	if tokenClientID != "" {
		clientID, err = uuid.Parse(tokenClientID)
		if err != nil {
			return fmt.Errorf("invalid client ID: %w", err)
		}
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(clientID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

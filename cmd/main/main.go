package main

import (
	"errors"
	"log"
	"os"

	"github.com/BartekS5/VCM/internal/cli"
	"github.com/BartekS5/VCM/internal/migrate"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, migrate.ErrCancelled) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

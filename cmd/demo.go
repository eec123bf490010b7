package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/psds-microservice/repairshop-service/internal/config"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the HTTP API preloaded with the demo dataset",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.DemoData = true
	return serve(cfg)
}

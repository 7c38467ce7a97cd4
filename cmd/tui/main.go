package main

import (
	"errors"
	"flag"
	"os"

	"solar-profit/internal/config"
	"solar-profit/internal/logging"
	"solar-profit/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := setup(*cfgPath)
	if err != nil {
		logrus.Fatalf("Failed to start: %v", err)
	}
	log := logging.Component("tui")

	if _, err := tea.NewProgram(tui.NewForm(cfg.NewEstimator())).Run(); err != nil {
		log.Fatalf("form: %v", err)
	}
	log.Debug("form closed")
}

// setup loads .env, the config and the environment overrides, then configures logging.
func setup(cfgPath string) (*config.Config, error) {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

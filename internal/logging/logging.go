package logging

import (
	"io"
	"os"
	"strings"

	"solar-profit/internal/config"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the logrus standard logger from cfg.
// With cfg.File set, output goes to stderr and to a size-rotated file.
func Setup(cfg config.LogConfig) error {
	return Configure(logrus.StandardLogger(), cfg)
}

func Configure(l *logrus.Logger, cfg config.LogConfig) error {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	l.SetLevel(lvl)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := io.Writer(os.Stderr)
	if cfg.File != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}
	l.SetOutput(out)
	return nil
}

// Component returns a logger tagged with the component name.
func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}

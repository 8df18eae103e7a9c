// Package logging configures the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/config"
)

// ParseLevel maps the config level names to logrus levels, defaulting to INFO
func ParseLevel(name string) logrus.Level {
	switch name {
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New builds a logger writing text to out and, when cfg.FilePath is set,
// every level to a rotated log file as well.
func New(cfg config.LoggingConfig, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(ParseLevel(cfg.Level))
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(out)

	if cfg.FilePath == "" {
		return log, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	rotated := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    100,
		MaxBackups: 30,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	fileFmt := &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	log.AddHook(lfshook.NewHook(lfshook.WriterMap{
		logrus.PanicLevel: rotated,
		logrus.FatalLevel: rotated,
		logrus.ErrorLevel: rotated,
		logrus.WarnLevel:  rotated,
		logrus.InfoLevel:  rotated,
		logrus.DebugLevel: rotated,
		logrus.TraceLevel: rotated,
	}, fileFmt))
	return log, nil
}

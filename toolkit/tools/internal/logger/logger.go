// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const (
	FileFlag     = "log-file"
	FileFlagHelp = "Path to a file where the log will be written in addition to stderr."

	LevelsFlag        = "log-level"
	LevelsHelp        = "The minimum log level."
	LevelsPlaceholder = "(panic|fatal|error|warn|info|debug|trace)"

	ColorFlag         = "log-color"
	ColorFlagHelp     = "Color setting for log terminal output."
	ColorsPlaceholder = "(always|auto|never)"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"

	defaultLogLevel = logrus.InfoLevel
)

// Log is the process wide logger.
var Log *logrus.Logger

// LogFlags holds the values of the logging command-line flags.
type LogFlags struct {
	LogColor *string
	LogFile  *string
	LogLevel *string
}

func init() {
	Log = newLogger(io.Discard, defaultLogLevel)
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       false,
		FullTimestamp:          true,
		DisableLevelTruncation: true,
	})
	return l
}

// Levels returns the names of the supported log levels.
func Levels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	return levels
}

// Colors returns the names of the supported color modes.
func Colors() []string {
	return []string{ColorAlways, ColorAuto, ColorNever}
}

// InitStderrLog sets up a stderr only logger at the default level.
// Intended for tests.
func InitStderrLog() {
	Log = newLogger(os.Stderr, defaultLogLevel)
}

// InitBestEffort sets up the logger from the command-line flags.
// A failure to open the log file falls back to stderr only logging.
func InitBestEffort(lf *LogFlags) {
	err := Init(lf)
	if err != nil {
		InitStderrLog()
		Log.Warnf("Failed to initialize logger, using stderr only:\n%v", err)
	}
}

// Init sets up the logger from the command-line flags.
func Init(lf *LogFlags) error {
	level := defaultLogLevel
	if lf != nil && lf.LogLevel != nil && *lf.LogLevel != "" {
		parsed, err := logrus.ParseLevel(*lf.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level (%s):\n%w", *lf.LogLevel, err)
		}
		level = parsed
	}

	colorMode := ColorAuto
	if lf != nil && lf.LogColor != nil && *lf.LogColor != "" {
		colorMode = strings.ToLower(*lf.LogColor)
	}

	err := applyColorMode(colorMode)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if lf != nil && lf.LogFile != nil && *lf.LogFile != "" {
		file, err := os.OpenFile(*lf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file (%s):\n%w", *lf.LogFile, err)
		}
		out = io.MultiWriter(os.Stderr, file)
	}

	Log = newLogger(out, level)
	if formatter, ok := Log.Formatter.(*logrus.TextFormatter); ok {
		formatter.ForceColors = colorMode == ColorAlways
		formatter.DisableColors = colorMode == ColorNever
	}

	return nil
}

func applyColorMode(mode string) error {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	case ColorAuto:
		// fatih/color already detects whether stdout is a terminal.
	default:
		return fmt.Errorf("invalid log color value (%s)", mode)
	}
	return nil
}

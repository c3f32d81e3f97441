// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package exekong holds the kong flags shared by the blueprint tools.
package exekong

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/logger"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/telemetry"
)

var (
	KongVars = kong.Vars{
		"logcolorhelp":   logger.ColorFlagHelp,
		"logcolorvalues": strings.Join(logger.Colors(), ", ") + ",",
		"logfilehelp":    logger.FileFlagHelp,
		"loglevelhelp":   logger.LevelsHelp,
		"loglevelvalues": strings.Join(logger.Levels(), ", ") + ",",
	}
)

type LogFlags struct {
	LogColor string `name:"log-color" placeholder:"(always|auto|never)" help:"${logcolorhelp}" enum:"${logcolorvalues}" default:""`
	LogFile  string `name:"log-file" help:"${logfilehelp}"`
	LogLevel string `name:"log-level" placeholder:"(panic|fatal|error|warning|info|debug|trace)" help:"${loglevelhelp}" enum:"${loglevelvalues}" default:""`
}

func (f LogFlags) AsLoggerFlags() *logger.LogFlags {
	return &logger.LogFlags{
		LogColor: &f.LogColor,
		LogFile:  &f.LogFile,
		LogLevel: &f.LogLevel,
	}
}

// CommonFlags is embedded by every tool command.
type CommonFlags struct {
	LogFlags
	DisableTelemetry bool             `name:"disable-telemetry" help:"Disable collection of telemetry traces."`
	Version          kong.VersionFlag `name:"version" help:"Print the tool version and exit."`
}

// Setup initializes logging and telemetry from the parsed flags.
// The returned function flushes telemetry and must be called before the tool exits.
func (f *CommonFlags) Setup(ctx context.Context, toolName string, toolVersion string) func() {
	logger.InitBestEffort(f.AsLoggerFlags())

	err := telemetry.InitTelemetry(ctx, f.DisableTelemetry, toolName, toolVersion)
	if err != nil {
		logger.Log.Warnf("Failed to initialize telemetry:\n%v", err)
	}

	return func() {
		err := telemetry.ShutdownTelemetry(ctx)
		if err != nil {
			logger.Log.Warnf("Failed to shut down telemetry:\n%v", err)
		}
	}
}

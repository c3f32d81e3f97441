// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Tool to import a blueprint file into the image wizard state

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/contentsources"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/exekong"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/logger"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/pkg/blueprintlib"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/pkg/wizardstate"
)

const (
	toolName = "blueprintimport"

	outputFormatJson = "json"
	outputFormatYaml = "yaml"
)

type BlueprintImportCmd struct {
	File              string `name:"file" help:"Path of the blueprint file (.json or .toml) to import." required:""`
	ContentSourcesURL string `name:"content-sources-url" help:"Base URL of the content-sources API. The custom repositories of the blueprint are imported there."`
	OutputFile        string `name:"output-file" help:"Path to write the wizard state to. Defaults to stdout."`
	OutputFormat      string `name:"output-format" placeholder:"(json|yaml)" help:"Format of the wizard state." enum:"json,yaml" default:"json"`
	RepoFile          string `name:"repo-file" help:"Path to write the custom repositories of the blueprint to, as a .repo file."`
	Validate          bool   `name:"validate" help:"Run the wizard step validations and fail if any step is invalid."`
	exekong.CommonFlags
}

func main() {
	ctx := context.Background()

	cli := &BlueprintImportCmd{}

	vars := kong.Vars{
		"version": blueprintlib.ToolVersion,
	}
	maps.Copy(vars, exekong.KongVars)

	_ = kong.Parse(cli,
		vars,
		kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		},
		kong.UsageOnError())

	shutdown := cli.Setup(ctx, toolName, blueprintlib.ToolVersion)

	err := importBlueprint(ctx, cli)
	shutdown()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, blueprintlib.HelperTextParseFailed)
		log.Fatalf("blueprint import failed:\n%v", err)
	}
}

func importBlueprint(ctx context.Context, cli *BlueprintImportCmd) error {
	data, err := os.ReadFile(cli.File)
	if err != nil {
		return fmt.Errorf("failed to read blueprint file (%s):\n%w", cli.File, err)
	}

	var repositoryImporter blueprintlib.RepositoryImporter
	if cli.ContentSourcesURL != "" {
		repositoryImporter = contentsources.NewClient(cli.ContentSourcesURL, nil)
	}

	result, err := blueprintlib.ImportBlueprint(ctx, cli.File, data, repositoryImporter)
	if err != nil {
		return err
	}

	if result.IsOnPrem {
		color.New(color.FgYellow).Fprintln(os.Stderr, result.Message)
	}

	store := wizardstate.NewStore()
	store.Dispatch(wizardstate.LoadWizardState(*result.State))

	if cli.Validate {
		store.Dispatch(wizardstate.ValidateAllSteps())
		err = checkStepValidations(store.State())
		if err != nil {
			return err
		}
	}

	state := store.State()

	if cli.RepoFile != "" {
		err = writeRepoFile(cli.RepoFile, state.Repositories.CustomRepositories)
		if err != nil {
			return err
		}
	}

	output, err := formatState(state, cli.OutputFormat)
	if err != nil {
		return err
	}

	if cli.OutputFile == "" {
		_, err = fmt.Fprint(os.Stdout, output)
		return err
	}

	err = os.WriteFile(cli.OutputFile, []byte(output), 0o644)
	if err != nil {
		return fmt.Errorf("failed to write wizard state (%s):\n%w", cli.OutputFile, err)
	}

	logger.Log.Infof("Wrote wizard state to (%s)", cli.OutputFile)
	return nil
}

func checkStepValidations(state wizardstate.State) error {
	if wizardstate.SelectIsValid(state) {
		return nil
	}

	for stepID, step := range state.StepValidations {
		if step.Validated == wizardstate.ValidatedSuccess {
			continue
		}

		for inputID, isValid := range step.Inputs {
			if !isValid {
				logger.Log.Errorf("Step (%s) input (%s) is invalid", stepID, inputID)
			}
		}
	}

	return fmt.Errorf("imported blueprint has invalid wizard steps")
}

func writeRepoFile(path string, repositories []blueprintapi.CustomRepository) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create repo file (%s):\n%w", path, err)
	}
	defer file.Close()

	err = blueprintlib.WriteRepoFile(file, repositories)
	if err != nil {
		return err
	}

	logger.Log.Infof("Wrote (%d) repositories to (%s)", len(repositories), path)
	return nil
}

func formatState(state wizardstate.State, outputFormat string) (string, error) {
	switch outputFormat {
	case outputFormatYaml:
		output, err := blueprintapi.MarshalYaml(state)
		if err != nil {
			return "", fmt.Errorf("failed to encode wizard state as YAML:\n%w", err)
		}
		return output, nil

	default:
		output, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode wizard state as JSON:\n%w", err)
		}
		return string(output) + "\n", nil
	}
}

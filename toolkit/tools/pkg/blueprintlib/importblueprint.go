// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/logger"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/onpremapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/pkg/wizardstate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	OtelTracerName = "blueprintlib"

	// MaxImportFileSize is the largest blueprint file accepted for import, in bytes.
	MaxImportFileSize = 25000

	HelperTextRejected    = "Must be a valid Blueprint JSON/TOML file no larger than 25 KB"
	HelperTextParseFailed = "Not compatible with the blueprints format."
	HelperTextOnPrem      = "Importing on-premises blueprints is currently in beta. Results may vary."
	HelperTextDefault     = "Upload your blueprint file. Supported formats: JSON, TOML."
)

// ToolVersion is set at build time.
var ToolVersion = ""

type ImportStatus string

const (
	ImportStatusEmpty       ImportStatus = "empty"
	ImportStatusReading     ImportStatus = "reading"
	ImportStatusParsedJson  ImportStatus = "parsed-json"
	ImportStatusParsedToml  ImportStatus = "parsed-toml"
	ImportStatusParseFailed ImportStatus = "parse-failed"
	ImportStatusRejected    ImportStatus = "rejected"
)

// RepositoryImporter imports repositories into the content-sources service.
type RepositoryImporter interface {
	BulkImportRepositories(ctx context.Context, repositories []blueprintapi.ContentSource) error
}

type ImportResult struct {
	Status   ImportStatus
	State    *wizardstate.State
	IsOnPrem bool
	Message  string
	Err      error
}

// BlueprintImporter follows one blueprint file through selection, reading and parsing.
type BlueprintImporter struct {
	lock               sync.Mutex
	repositoryImporter RepositoryImporter
	repositoryImports  sync.WaitGroup

	status   ImportStatus
	filename string
	content  string
	state    *wizardstate.State
	isOnPrem bool
	err      error
}

// NewBlueprintImporter returns an importer. repositoryImporter may be nil, in which case content
// sources are not imported.
func NewBlueprintImporter(repositoryImporter RepositoryImporter) *BlueprintImporter {
	return &BlueprintImporter{
		repositoryImporter: repositoryImporter,
		status:             ImportStatusEmpty,
	}
}

// SelectFile records the chosen file name and drops any previously loaded content.
func (b *BlueprintImporter) SelectFile(filename string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.reset()
	b.filename = filename
	b.status = ImportStatusReading
}

// LoadContent records the file content. Parsing starts once both the file name and the content
// are known.
func (b *BlueprintImporter) LoadContent(ctx context.Context, content string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.content = content
	if b.filename == "" || b.content == "" {
		return
	}

	state, isOnPrem, contentSources, err := parseBlueprintFile(ctx, b.filename, b.content)
	if err != nil {
		logger.Log.Warnf("File is not a valid blueprint:\n%v", err)
		b.status = ImportStatusParseFailed
		b.state = nil
		b.isOnPrem = false
		b.err = err
		return
	}

	b.state = &state
	b.isOnPrem = isOnPrem
	b.err = nil
	b.status = ImportStatusParsedJson
	if isTomlFile(b.filename) {
		b.status = ImportStatusParsedToml
	}

	if len(contentSources) > 0 && b.repositoryImporter != nil {
		b.importRepositories(ctx, contentSources)
	}
}

// Clear forgets the file.
func (b *BlueprintImporter) Clear() {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.reset()
	b.filename = ""
	b.status = ImportStatusEmpty
}

// Reject records that the file picker refused the file.
func (b *BlueprintImporter) Reject() {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.reset()
	b.filename = ""
	b.status = ImportStatusRejected
}

func (b *BlueprintImporter) Result() ImportResult {
	b.lock.Lock()
	defer b.lock.Unlock()

	result := ImportResult{
		Status:   b.status,
		IsOnPrem: b.isOnPrem,
		Message:  b.helperText(),
		Err:      b.err,
	}
	if b.state != nil {
		state := b.state.Clone()
		result.State = &state
	}
	return result
}

// CanProceed reports whether the imported blueprint may be opened in the wizard.
func (b *BlueprintImporter) CanProceed() bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.status != ImportStatusRejected &&
		b.status != ImportStatusParseFailed &&
		b.content != "" &&
		b.state != nil
}

func (b *BlueprintImporter) HelperText() string {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.helperText()
}

// Wait blocks until the repository imports started by LoadContent are done.
func (b *BlueprintImporter) Wait() {
	b.repositoryImports.Wait()
}

func (b *BlueprintImporter) helperText() string {
	switch {
	case b.status == ImportStatusRejected:
		return HelperTextRejected
	case b.status == ImportStatusParseFailed:
		return HelperTextParseFailed
	case b.isOnPrem:
		return HelperTextOnPrem
	default:
		return HelperTextDefault
	}
}

func (b *BlueprintImporter) reset() {
	b.content = ""
	b.state = nil
	b.isOnPrem = false
	b.err = nil
}

// importRepositories sends the content sources of the blueprint in the background. A failure is
// only logged.
func (b *BlueprintImporter) importRepositories(ctx context.Context, contentSources []blueprintapi.ContentSource) {
	repositoryImporter := b.repositoryImporter

	b.repositoryImports.Add(1)
	go func() {
		defer b.repositoryImports.Done()

		err := repositoryImporter.BulkImportRepositories(ctx, contentSources)
		if err != nil {
			logger.Log.Warnf("Failed to import custom repositories:\n%v", err)
			return
		}

		logger.Log.Infof("Imported %d custom repositories", len(contentSources))
	}()
}

// ImportBlueprint imports one blueprint file and waits for the repository import to finish.
func ImportBlueprint(ctx context.Context, filename string, data []byte,
	repositoryImporter RepositoryImporter,
) (ImportResult, error) {
	importer := NewBlueprintImporter(repositoryImporter)

	if len(data) > MaxImportFileSize {
		importer.Reject()
		result := importer.Result()
		result.Err = ErrFileTooLarge
		return result, ErrFileTooLarge
	}

	importer.SelectFile(filename)
	importer.LoadContent(ctx, string(data))
	importer.Wait()

	result := importer.Result()
	if result.Status == ImportStatusReading {
		result.Err = ErrNoContent
	}
	return result, result.Err
}

func parseBlueprintFile(ctx context.Context, filename string, content string,
) (state wizardstate.State, isOnPrem bool, contentSources []blueprintapi.ContentSource, err error) {
	ctx, span := otel.GetTracerProvider().Tracer(OtelTracerName).Start(ctx, "import_blueprint")
	span.SetAttributes(
		attribute.String("file_type", strings.ToLower(filepath.Ext(filename))),
	)
	defer func() {
		if err != nil {
			errorNames := []string{"Unset"}
			if namedErrors := GetAllBlueprintErrors(err); len(namedErrors) > 0 {
				errorNames = make([]string, len(namedErrors))
				for i, namedError := range namedErrors {
					errorNames[i] = namedError.Name()
				}
			}
			span.SetAttributes(
				attribute.StringSlice("errors.name", errorNames),
			)
			span.SetStatus(codes.Error, errorNames[len(errorNames)-1])
		}
		span.SetAttributes(
			attribute.Bool("on_prem", isOnPrem),
		)
		span.End()
	}()

	switch {
	case isTomlFile(filename):
		state, err = parseTomlBlueprint(ctx, content)
		isOnPrem = true

	case isJsonFile(filename):
		state, isOnPrem, contentSources, err = parseJsonBlueprint(ctx, content)

	default:
		err = ErrUnknownFileType
	}
	if err != nil {
		return wizardstate.State{}, false, nil, fmt.Errorf("%w:\n%w", ErrNotCompatible, err)
	}

	err = checkImageOutput(&state)
	if err != nil {
		return wizardstate.State{}, false, nil, fmt.Errorf("%w:\n%w", ErrNotCompatible, err)
	}

	return state, isOnPrem, contentSources, nil
}

func parseTomlBlueprint(ctx context.Context, content string) (wizardstate.State, error) {
	var onprem onpremapi.Blueprint
	err := onpremapi.UnmarshalToml([]byte(content), &onprem)
	if err != nil {
		return wizardstate.State{}, err
	}

	return mapOnPremToState(ctx, &onprem), nil
}

func parseJsonBlueprint(ctx context.Context, content string,
) (wizardstate.State, bool, []blueprintapi.ContentSource, error) {
	var document map[string]any
	err := json.Unmarshal([]byte(content), &document)
	if err != nil {
		return wizardstate.State{}, false, nil, fmt.Errorf("failed to parse JSON:\n%w", err)
	}

	switch {
	case IsHostedExportShape(document):
		var export blueprintapi.BlueprintExportFile
		err = blueprintapi.UnmarshalJson([]byte(content), &export)
		if err != nil {
			return wizardstate.State{}, false, nil, fmt.Errorf("failed to parse exported blueprint:\n%w", err)
		}

		state := MapExportRequestToState(export.BlueprintExport, export.ImageRequests)
		return state, false, export.ContentSources, nil

	case IsOnPremShape(document):
		var onprem onpremapi.Blueprint
		err = onpremapi.UnmarshalDocument(document, &onprem)
		if err != nil {
			return wizardstate.State{}, false, nil, err
		}

		return mapOnPremToState(ctx, &onprem), true, nil, nil

	default:
		return wizardstate.State{}, false, nil, ErrUnknownShape
	}
}

func mapOnPremToState(ctx context.Context, onprem *onpremapi.Blueprint) wizardstate.State {
	export := MapOnPremToHosted(ctx, onprem)
	return MapExportRequestToState(export, OnPremImageRequests(onprem))
}

// checkImageOutput rejects blueprints whose architecture or image types the wizard cannot show.
// An unknown distribution is left to the image output step.
func checkImageOutput(state *wizardstate.State) error {
	var errs []error
	for _, validation := range wizardstate.ValidateImageOutput(state) {
		if validation.IsValid || validation.InputID == wizardstate.InputDistribution {
			continue
		}
		errs = append(errs, errors.New(validation.ErrorText))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w:\n%w", ErrInvalidImageOutput, errors.Join(errs...))
	}
	return nil
}

func isTomlFile(filename string) bool {
	return strings.HasSuffix(filename, ".toml")
}

func isJsonFile(filename string) bool {
	return strings.HasSuffix(filename, ".json")
}

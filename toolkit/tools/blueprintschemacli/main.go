// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/onpremapi"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("blueprintschemacli", "A CLI tool to generate the JSON schemas of the blueprint formats.")
	outputFile := app.Flag("output", "Path to the output JSON schema file").Short('o').Required().String()
	format := app.Flag("format", "Blueprint format to describe.").Default("hosted").Enum("hosted", "onprem")

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := generateJSONSchema(*outputFile, *format); err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("JSON schema has been written to %s\n", *outputFile)
}

func generateJSONSchema(outputFile string, format string) error {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}

	var schema *jsonschema.Schema
	switch format {
	case "onprem":
		schema = reflector.Reflect(&onpremapi.Blueprint{})
	default:
		schema = reflector.Reflect(&blueprintapi.BlueprintExportFile{})
	}

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(outputFile, schemaJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write schema to file: %w", err)
	}

	return nil
}

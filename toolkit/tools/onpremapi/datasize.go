// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package onpremapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/invopop/jsonschema"
)

// DataSize is a size in bytes, written either as a number or as a string with an optional
// unit (e.g. "20 GiB", "512 MiB", "1 GB").
type DataSize uint64

func (s DataSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(s))
}

func (s *DataSize) UnmarshalJSON(data []byte) error {
	var err error

	var number uint64
	err = json.Unmarshal(data, &number)
	if err == nil {
		*s = DataSize(number)
		return nil
	}

	var stringValue string
	err = json.Unmarshal(data, &stringValue)
	if err != nil {
		return fmt.Errorf("failed to parse minsize:\n%w", err)
	}

	return parseAndSetDataSize(stringValue, s)
}

func (DataSize) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "integer", Minimum: json.Number("0")},
			{Type: "string", Pattern: `^\s*\d+(\.\d+)?\s*[a-zA-Z]*\s*$`},
		},
	}
}

func parseAndSetDataSize(stringValue string, s *DataSize) error {
	size, err := humanize.ParseBytes(strings.TrimSpace(stringValue))
	if err != nil {
		return fmt.Errorf("minsize (%s) has incorrect format:\nexpected format: <NUM> [B|kB|KiB|MB|MiB|GB|GiB|TB|TiB]",
			stringValue)
	}

	*s = DataSize(size)
	return nil
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package onpremapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// UnmarshalToml reads an on-prem blueprint from TOML.
//
// The TOML document is decoded generically and then read through the JSON field names, so that
// both formats share the (un)marshalers of the blueprint types.
func UnmarshalToml(tomlData []byte, blueprint *Blueprint) error {
	var err error

	document := map[string]any{}
	err = toml.Unmarshal(tomlData, &document)
	if err != nil {
		return fmt.Errorf("failed to parse TOML:\n%w", err)
	}

	return UnmarshalDocument(document, blueprint)
}

// UnmarshalJson reads an on-prem blueprint from JSON.
func UnmarshalJson(jsonData []byte, blueprint *Blueprint) error {
	err := json.NewDecoder(bytes.NewReader(jsonData)).Decode(blueprint)
	if err != nil {
		return fmt.Errorf("failed to parse on-prem blueprint:\n%w", err)
	}
	return nil
}

// UnmarshalDocument reads an on-prem blueprint from an already parsed document.
func UnmarshalDocument(document map[string]any, blueprint *Blueprint) error {
	jsonData, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to convert blueprint document:\n%w", err)
	}

	return UnmarshalJson(jsonData, blueprint)
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

type HasIsValid interface {
	IsValid() error
}

func UnmarshalAndValidateJson[ValueType HasIsValid](jsonData []byte, value ValueType) error {
	err := UnmarshalJson(jsonData, value)
	if err != nil {
		return err
	}

	err = value.IsValid()
	if err != nil {
		return err
	}

	return nil
}

func UnmarshalJson[ValueType any](jsonData []byte, value ValueType) error {
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	err := decoder.Decode(value)
	if err != nil {
		return err
	}

	return nil
}

// MarshalYaml writes value as YAML using its JSON field names.
func MarshalYaml[ValueType any](value ValueType) (string, error) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return "", err
	}

	var generic any
	err = yaml.Unmarshal(jsonData, &generic)
	if err != nil {
		return "", err
	}

	yamlData, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}

	return string(yamlData), nil
}

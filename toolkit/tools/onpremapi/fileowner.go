// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package onpremapi

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
)

// FileOwner is a user or group of a file, given by name or by numeric id.
type FileOwner string

func (o *FileOwner) UnmarshalJSON(data []byte) error {
	var err error

	var id int64
	err = json.Unmarshal(data, &id)
	if err == nil {
		*o = FileOwner(strconv.FormatInt(id, 10))
		return nil
	}

	var name string
	err = json.Unmarshal(data, &name)
	if err != nil {
		return fmt.Errorf("failed to parse file owner:\n%w", err)
	}

	*o = FileOwner(name)
	return nil
}

func (FileOwner) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "integer", Minimum: json.Number("0")},
		},
	}
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package contentsources

import (
	"fmt"
)

// ImportedRepository is one entry of the bulk import response.
type ImportedRepository struct {
	UUID     string    `json:"uuid"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Status   string    `json:"status,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

type Warning map[string]any

func (w Warning) Description() string {
	if description, ok := w["description"].(string); ok {
		return description
	}
	return fmt.Sprintf("%v", map[string]any(w))
}

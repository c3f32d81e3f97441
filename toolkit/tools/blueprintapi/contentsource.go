// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

import (
	"fmt"

	"github.com/asaskevich/govalidator"
)

// ContentSource is a repository request for the content-sources service, as carried in the
// 'content_sources' list of an exported blueprint.
type ContentSource struct {
	Name                 string   `json:"name,omitempty"`
	URL                  string   `json:"url"`
	DistributionArch     string   `json:"distribution_arch,omitempty"`
	DistributionVersions []string `json:"distribution_versions,omitempty"`
	GpgKey               string   `json:"gpg_key,omitempty"`
	MetadataVerification bool     `json:"metadata_verification,omitempty"`
	ModuleHotfixes       bool     `json:"module_hotfixes,omitempty"`
	Origin               string   `json:"origin,omitempty"`
	Snapshot             bool     `json:"snapshot,omitempty"`
}

func (c *ContentSource) IsValid() error {
	if c.URL == "" {
		return fmt.Errorf("repository url may not be empty")
	}

	if !govalidator.IsURL(c.URL) {
		return fmt.Errorf("invalid repository url (%s)", c.URL)
	}

	return nil
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

// BlueprintExport is the document the hosted service produces when a blueprint is exported.
type BlueprintExport struct {
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Distribution   Distribution       `json:"distribution"`
	Customizations Customizations     `json:"customizations"`
	Metadata       *BlueprintMetadata `json:"metadata,omitempty"`
	ContentSources []ContentSource    `json:"content_sources,omitempty"`
}

type BlueprintMetadata struct {
	ParentID   *string `json:"parent_id,omitempty"`
	ExportedAt string  `json:"exported_at,omitempty"`
	IsOnPrem   bool    `json:"is_on_prem,omitempty"`
}

// BlueprintExportFile is an exported blueprint as found in a file. Exports written by older
// versions of the service also carry the image requests.
type BlueprintExportFile struct {
	BlueprintExport
	ImageRequests []ImageRequest `json:"image_requests,omitempty"`
}

// BlueprintResponse is a stored blueprint as returned by the hosted service.
type BlueprintResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Distribution   Distribution   `json:"distribution"`
	ImageRequests  []ImageRequest `json:"image_requests"`
	Customizations Customizations `json:"customizations"`
	LastModifiedAt string         `json:"last_modified_at,omitempty"`
}

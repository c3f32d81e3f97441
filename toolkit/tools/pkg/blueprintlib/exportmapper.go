// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/pkg/wizardstate"
)

// MapExportRequestToState builds a complete wizard state from an exported blueprint and the image
// requests that came with it. Absent customizations keep the wizard defaults. The values are
// copied as they are; checking them is left to the wizard steps.
func MapExportRequestToState(export blueprintapi.BlueprintExport,
	imageRequests []blueprintapi.ImageRequest,
) wizardstate.State {
	state := wizardstate.InitialState()

	state.Details.BlueprintName = export.Name
	state.Details.BlueprintDescription = export.Description
	if export.Distribution != "" {
		state.Distribution = export.Distribution
	}

	mapImageRequests(imageRequests, &state)
	mapCustomizations(&export.Customizations, &state)
	mapContentSources(export.ContentSources, &state)

	return state
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/pkg/wizardstate"
)

// MapRequestToState builds the wizard state for editing a stored blueprint.
func MapRequestToState(response blueprintapi.BlueprintResponse) wizardstate.State {
	export := blueprintapi.BlueprintExport{
		Name:           response.Name,
		Description:    response.Description,
		Distribution:   response.Distribution,
		Customizations: response.Customizations,
	}

	state := MapExportRequestToState(export, response.ImageRequests)
	state.WizardMode = wizardstate.WizardModeEdit
	return state
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/ptrutils"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/sliceutils"
)

type StepID string

const (
	StepImageOutput            StepID = "image-output"
	StepTargetEnvironmentAws   StepID = "target-environment-aws"
	StepTargetEnvironmentAzure StepID = "target-environment-azure"
	StepTargetEnvironmentGcp   StepID = "target-environment-gcp"
	StepRegistration           StepID = "registration"
	StepFileSystem             StepID = "file-system"
	StepDetails                StepID = "details"
)

// Inputs of the image output step.
const (
	InputArchitecture = "architecture"
	InputDistribution = "distribution"
	InputImageTypes   = "imageTypes"
)

type Validated string

const (
	ValidatedDefault Validated = "default"
	ValidatedSuccess Validated = "success"
	ValidatedError   Validated = "error"
)

// StepValidation is the validation result of one wizard step.
type StepValidation struct {
	Validated Validated       `json:"validated"`
	ErrorText *string         `json:"errorText"`
	Inputs    map[string]bool `json:"inputs"`
}

// InputValidation is the check of one input of a step.
type InputValidation struct {
	StepID    StepID
	InputID   string
	IsValid   bool
	ErrorText string
}

// ValidateImageOutput checks the release, architecture and target choices.
func ValidateImageOutput(s *State) []InputValidation {
	architectureErr := s.Architecture.IsValid()
	distributionErr := s.Distribution.IsValid()

	var imageTypesErr error
	for _, imageType := range s.ImageTypes {
		imageTypesErr = imageType.IsValid()
		if imageTypesErr != nil {
			break
		}
	}

	return []InputValidation{
		newInputValidation(StepImageOutput, InputArchitecture, architectureErr),
		newInputValidation(StepImageOutput, InputDistribution, distributionErr),
		newInputValidation(StepImageOutput, InputImageTypes, imageTypesErr),
	}
}

func validateAws(s *State) []InputValidation {
	if s.Aws.ShareMethod == AwsShareMethodManual {
		return []InputValidation{{
			StepID:    StepTargetEnvironmentAws,
			InputID:   "accountId",
			IsValid:   IsAwsAccountIdValid(ptrutils.PtrTo(s.Aws.AccountID)),
			ErrorText: "Should be 12 characters long",
		}}
	}

	return []InputValidation{{
		StepID:    StepTargetEnvironmentAws,
		InputID:   "source",
		IsValid:   s.Aws.SourceID != "",
		ErrorText: "Select a source",
	}}
}

func validateAzure(s *State) []InputValidation {
	validations := []InputValidation{}
	if s.Azure.ShareMethod == AzureShareMethodManual {
		validations = append(validations,
			InputValidation{
				StepID:    StepTargetEnvironmentAzure,
				InputID:   "tenantId",
				IsValid:   IsAzureTenantGUIDValid(s.Azure.TenantID),
				ErrorText: "Please enter a valid tenant ID",
			},
			InputValidation{
				StepID:    StepTargetEnvironmentAzure,
				InputID:   "subscriptionId",
				IsValid:   IsAzureSubscriptionIdValid(s.Azure.SubscriptionID),
				ErrorText: "Please enter a valid subscription ID",
			})
	} else {
		validations = append(validations, InputValidation{
			StepID:    StepTargetEnvironmentAzure,
			InputID:   "source",
			IsValid:   s.Azure.Source != "",
			ErrorText: "Select a source",
		})
	}

	validations = append(validations, InputValidation{
		StepID:    StepTargetEnvironmentAzure,
		InputID:   "resourceGroup",
		IsValid:   IsAzureResourceGroupValid(s.Azure.ResourceGroup),
		ErrorText: "Resource group names only allow alphanumeric characters, periods, underscores, hyphens, and parenthesis and cannot end in a period",
	})
	return validations
}

func validateGcp(s *State) []InputValidation {
	if s.Gcp.ShareMethod != GcpShareMethodWithGoogle {
		return []InputValidation{{
			StepID:  StepTargetEnvironmentGcp,
			InputID: "shareMethod",
			IsValid: true,
		}}
	}

	return []InputValidation{{
		StepID:    StepTargetEnvironmentGcp,
		InputID:   "email",
		IsValid:   IsGcpEmailValid(ptrutils.PtrTo(s.Gcp.Email)),
		ErrorText: "Please enter a valid e-mail address",
	}}
}

func validateRegistration(s *State) []InputValidation {
	isValid := s.Registration.RegistrationType == RegistrationTypeRegisterLater ||
		s.Registration.ActivationKey != ""

	return []InputValidation{{
		StepID:    StepRegistration,
		InputID:   "activationKey",
		IsValid:   isValid,
		ErrorText: "Select an activation key",
	}}
}

func validateFileSystem(s *State) []InputValidation {
	isValid := s.FileSystem.Mode != FileSystemPartitionModeManual ||
		IsFileSystemConfigValid(s.FileSystem.Partitions)

	return []InputValidation{{
		StepID:    StepFileSystem,
		InputID:   "mountpoints",
		IsValid:   isValid,
		ErrorText: "Duplicate mount points: All mount points must be unique. Remove the duplicate or choose a new mount point.",
	}}
}

func validateDetails(s *State) []InputValidation {
	return []InputValidation{
		{
			StepID:    StepDetails,
			InputID:   "name",
			IsValid:   IsBlueprintNameValid(s.Details.BlueprintName),
			ErrorText: "Invalid blueprint name",
		},
		{
			StepID:    StepDetails,
			InputID:   "description",
			IsValid:   IsBlueprintDescriptionValid(s.Details.BlueprintDescription),
			ErrorText: "Invalid description",
		},
	}
}

// ValidateAllSteps re-runs the checks of every step. Steps for targets that are not selected
// are dropped from the step validations.
func ValidateAllSteps() Action {
	return func(s *State) {
		targetSteps := map[StepID]struct {
			imageType blueprintapi.ImageType
			validate  func(*State) []InputValidation
		}{
			StepTargetEnvironmentAws:   {blueprintapi.ImageTypeAws, validateAws},
			StepTargetEnvironmentAzure: {blueprintapi.ImageTypeAzure, validateAzure},
			StepTargetEnvironmentGcp:   {blueprintapi.ImageTypeGcp, validateGcp},
		}

		validations := ValidateImageOutput(s)
		for stepID, target := range targetSteps {
			// Inputs of a previous share method or target must not linger.
			delete(s.StepValidations, stepID)
			if sliceutils.ContainsValue(s.ImageTypes, target.imageType) {
				validations = append(validations, target.validate(s)...)
			}
		}
		validations = append(validations, validateRegistration(s)...)
		validations = append(validations, validateFileSystem(s)...)
		validations = append(validations, validateDetails(s)...)

		for _, validation := range validations {
			setStepInputValidation(s, validation.StepID, validation.InputID, validation.IsValid,
				validation.ErrorText)
		}
	}
}

func newInputValidation(stepID StepID, inputID string, err error) InputValidation {
	validation := InputValidation{
		StepID:  stepID,
		InputID: inputID,
		IsValid: err == nil,
	}
	if err != nil {
		validation.ErrorText = err.Error()
	}
	return validation
}

func setStepInputValidation(s *State, stepID StepID, inputID string, isValid bool, errorText string) {
	if s.StepValidations == nil {
		s.StepValidations = map[StepID]StepValidation{}
	}

	step := s.StepValidations[stepID]

	inputs := make(map[string]bool, len(step.Inputs)+1)
	for id, valid := range step.Inputs {
		inputs[id] = valid
	}
	inputs[inputID] = isValid

	step.Validated = ValidatedSuccess
	for _, valid := range inputs {
		if !valid {
			step.Validated = ValidatedError
			break
		}
	}
	step.Inputs = inputs

	if !isValid && errorText != "" {
		step.ErrorText = ptrutils.PtrTo(errorText)
	}

	s.StepValidations[stepID] = step
}

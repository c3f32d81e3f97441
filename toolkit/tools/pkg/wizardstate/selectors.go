// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

// SelectIsValid reports whether every validated step is a success.
func SelectIsValid(s State) bool {
	for _, step := range s.StepValidations {
		if step.Validated != ValidatedSuccess {
			return false
		}
	}
	return true
}

func SelectStepValidation(s State, stepID StepID) Validated {
	step, found := s.StepValidations[stepID]
	if !found || step.Validated == "" {
		return ValidatedDefault
	}
	return step.Validated
}

func SelectInputValidation(s State, stepID StepID, inputID string) Validated {
	isValid, found := s.StepValidations[stepID].Inputs[inputID]
	if !found {
		return ValidatedDefault
	}
	return validatedFromBool(isValid)
}

func SelectDuplicateMountPoints(s State) []string {
	return GetDuplicateMountPoints(s.FileSystem.Partitions)
}

func SelectPackageNames(s State) []string {
	names := make([]string, 0, len(s.Packages))
	for _, pkg := range s.Packages {
		names = append(names, pkg.Name)
	}
	return names
}

// SelectRepositories returns the canonical records of the custom repositories.
func SelectRepositories(s State) []Repository {
	repos := make([]Repository, 0, len(s.Repositories.CustomRepositories))
	for _, custom := range s.Repositories.CustomRepositories {
		repos = append(repos, RepositoryFromCustom(custom))
	}
	return repos
}

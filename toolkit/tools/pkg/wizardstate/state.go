// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"maps"
	"slices"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
)

type WizardMode string

const (
	WizardModeCreate WizardMode = "create"
	WizardModeEdit   WizardMode = "edit"
)

type RegistrationType string

const (
	RegistrationTypeRegisterLater       RegistrationType = "register-later"
	RegistrationTypeRegisterNow         RegistrationType = "register-now"
	RegistrationTypeRegisterNowInsights RegistrationType = "register-now-insights"
	RegistrationTypeRegisterNowRhc      RegistrationType = "register-now-rhc"

	DefaultRegistrationType = RegistrationTypeRegisterNowRhc
)

type AwsShareMethod string

const (
	AwsShareMethodSources AwsShareMethod = "sources"
	AwsShareMethodManual  AwsShareMethod = "manual"
)

type AzureShareMethod string

const (
	AzureShareMethodSources AzureShareMethod = "sources"
	AzureShareMethodManual  AzureShareMethod = "manual"
)

type GcpShareMethod string

const (
	GcpShareMethodWithGoogle   GcpShareMethod = "withGoogle"
	GcpShareMethodWithInsights GcpShareMethod = "withInsights"
)

type GcpAccountType string

const (
	GcpAccountTypeNone           GcpAccountType = ""
	GcpAccountTypeUser           GcpAccountType = "user"
	GcpAccountTypeServiceAccount GcpAccountType = "serviceAccount"
	GcpAccountTypeGroup          GcpAccountType = "group"
	GcpAccountTypeDomain         GcpAccountType = "domain"
)

type FileSystemPartitionMode string

const (
	FileSystemPartitionModeAutomatic FileSystemPartitionMode = "automatic"
	FileSystemPartitionModeManual    FileSystemPartitionMode = "manual"
)

// PackageInfoUnknown marks package details that the blueprint formats do not carry.
const PackageInfoUnknown = "Information not available"

// State is the editing state of the image wizard.
type State struct {
	Env             Env                       `json:"env"`
	WizardMode      WizardMode                `json:"wizardMode"`
	Architecture    blueprintapi.Architecture `json:"architecture"`
	Distribution    blueprintapi.Distribution `json:"distribution"`
	ImageTypes      []blueprintapi.ImageType  `json:"imageTypes"`
	Aws             AwsState                  `json:"aws"`
	Azure           AzureState                `json:"azure"`
	Gcp             GcpState                  `json:"gcp"`
	Registration    RegistrationState         `json:"registration"`
	OpenScap        OpenScapState             `json:"openScap"`
	FileSystem      FileSystemState           `json:"fileSystem"`
	Repositories    RepositoriesState         `json:"repositories"`
	Packages        []Package                 `json:"packages"`
	Details         DetailsState              `json:"details"`
	StepValidations map[StepID]StepValidation `json:"stepValidations"`
	Kernel          KernelState               `json:"kernel"`
	Services        ServicesState             `json:"services"`
	Users           []blueprintapi.User       `json:"users"`
	Hostname        string                    `json:"hostname"`
	Timezone        TimezoneState             `json:"timezone"`
	Locale          LocaleState               `json:"locale"`
	FIPS            FIPSState                 `json:"fips"`
	FirstBoot       FirstBootState            `json:"firstBoot"`
}

type Env struct {
	ServerURL string `json:"serverUrl"`
	BaseURL   string `json:"baseUrl"`
}

type AwsState struct {
	AccountID   string         `json:"accountId"`
	ShareMethod AwsShareMethod `json:"shareMethod"`
	SourceID    string         `json:"sourceId,omitempty"`
}

type AzureState struct {
	ShareMethod    AzureShareMethod `json:"shareMethod"`
	TenantID       string           `json:"tenantId"`
	SubscriptionID string           `json:"subscriptionId"`
	Source         string           `json:"source"`
	ResourceGroup  string           `json:"resourceGroup"`
}

type GcpState struct {
	ShareMethod GcpShareMethod `json:"shareMethod"`
	AccountType GcpAccountType `json:"accountType,omitempty"`
	Email       string         `json:"email"`
}

type RegistrationState struct {
	RegistrationType RegistrationType `json:"registrationType"`
	ActivationKey    string           `json:"activationKey,omitempty"`
}

type OpenScapState struct {
	Profile string `json:"profile,omitempty"`
}

type FileSystemState struct {
	Mode                FileSystemPartitionMode `json:"mode"`
	Partitions          []Partition             `json:"partitions"`
	IsNextButtonTouched bool                    `json:"isNextButtonTouched"`
}

type RepositoriesState struct {
	CustomRepositories      []blueprintapi.CustomRepository `json:"customRepositories"`
	PayloadRepositories     []blueprintapi.Repository       `json:"payloadRepositories"`
	RecommendedRepositories []RecommendedRepository         `json:"recommendedRepositories"`
}

// RecommendedRepository is a repository the wizard suggested for the selected packages.
type RecommendedRepository struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Package struct {
	Name       string `json:"name"`
	Summary    string `json:"summary"`
	Repository string `json:"repository"`
}

type DetailsState struct {
	BlueprintName        string `json:"blueprintName"`
	BlueprintDescription string `json:"blueprintDescription"`
}

type KernelState struct {
	Name   string `json:"name,omitempty"`
	Append string `json:"append,omitempty"`
}

type ServicesState struct {
	Enabled  []string `json:"enabled"`
	Disabled []string `json:"disabled"`
	Masked   []string `json:"masked"`
}

type TimezoneState struct {
	Timezone   string   `json:"timezone,omitempty"`
	NtpServers []string `json:"ntpServers"`
}

type LocaleState struct {
	Languages []string `json:"languages"`
	Keyboard  string   `json:"keyboard,omitempty"`
}

type FIPSState struct {
	Enabled bool `json:"enabled"`
}

type FirstBootState struct {
	Script string `json:"script,omitempty"`
}

// InitialState returns the state of a freshly opened wizard.
func InitialState() State {
	return State{
		WizardMode:   WizardModeCreate,
		Architecture: blueprintapi.DefaultArchitecture,
		Distribution: blueprintapi.DefaultDistribution,
		ImageTypes:   []blueprintapi.ImageType{},
		Aws: AwsState{
			ShareMethod: AwsShareMethodSources,
		},
		Azure: AzureState{
			ShareMethod: AzureShareMethodSources,
		},
		Gcp: GcpState{
			ShareMethod: GcpShareMethodWithGoogle,
			AccountType: GcpAccountTypeUser,
		},
		Registration: RegistrationState{
			RegistrationType: DefaultRegistrationType,
		},
		FileSystem: FileSystemState{
			Mode:                FileSystemPartitionModeAutomatic,
			Partitions:          []Partition{},
			IsNextButtonTouched: true,
		},
		Repositories: RepositoriesState{
			CustomRepositories:      []blueprintapi.CustomRepository{},
			PayloadRepositories:     []blueprintapi.Repository{},
			RecommendedRepositories: []RecommendedRepository{},
		},
		Packages:        []Package{},
		StepValidations: map[StepID]StepValidation{},
		Services: ServicesState{
			Enabled:  []string{},
			Disabled: []string{},
			Masked:   []string{},
		},
		Users: []blueprintapi.User{},
		Timezone: TimezoneState{
			NtpServers: []string{},
		},
		Locale: LocaleState{
			Languages: []string{},
		},
	}
}

// Clone returns a copy of the state that shares no slices or maps with the original.
func (s State) Clone() State {
	clone := s
	clone.ImageTypes = slices.Clone(s.ImageTypes)
	clone.FileSystem.Partitions = slices.Clone(s.FileSystem.Partitions)
	clone.Packages = slices.Clone(s.Packages)
	clone.Services.Enabled = slices.Clone(s.Services.Enabled)
	clone.Services.Disabled = slices.Clone(s.Services.Disabled)
	clone.Services.Masked = slices.Clone(s.Services.Masked)
	clone.Timezone.NtpServers = slices.Clone(s.Timezone.NtpServers)
	clone.Locale.Languages = slices.Clone(s.Locale.Languages)
	clone.Repositories.RecommendedRepositories = slices.Clone(s.Repositories.RecommendedRepositories)

	clone.Users = make([]blueprintapi.User, len(s.Users))
	for i, user := range s.Users {
		user.Groups = slices.Clone(user.Groups)
		clone.Users[i] = user
	}

	clone.Repositories.CustomRepositories = make([]blueprintapi.CustomRepository, len(s.Repositories.CustomRepositories))
	for i, repo := range s.Repositories.CustomRepositories {
		repo.Baseurl = slices.Clone(repo.Baseurl)
		repo.Gpgkey = slices.Clone(repo.Gpgkey)
		clone.Repositories.CustomRepositories[i] = repo
	}
	clone.Repositories.PayloadRepositories = slices.Clone(s.Repositories.PayloadRepositories)

	clone.StepValidations = make(map[StepID]StepValidation, len(s.StepValidations))
	for stepID, step := range s.StepValidations {
		step.Inputs = maps.Clone(step.Inputs)
		clone.StepValidations[stepID] = step
	}

	return clone
}

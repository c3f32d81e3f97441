// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"slices"
	"strings"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/logger"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/sliceutils"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/pkg/wizardstate"
)

func mapImageRequests(imageRequests []blueprintapi.ImageRequest, state *wizardstate.State) {
	if len(imageRequests) == 0 {
		return
	}

	if imageRequests[0].Architecture != "" {
		state.Architecture = imageRequests[0].Architecture
	}

	imageTypes := []blueprintapi.ImageType{}
	for _, imageRequest := range imageRequests {
		if imageRequest.ImageType != "" {
			imageTypes = append(imageTypes, imageRequest.ImageType)
		}
	}
	state.ImageTypes = sliceutils.Unique(imageTypes)

	for _, imageRequest := range imageRequests {
		options := imageRequest.UploadRequest.Options

		switch imageRequest.ImageType {
		case blueprintapi.ImageTypeAws, blueprintapi.ImageTypeAmi:
			mapAwsOptions(options, state)

		case blueprintapi.ImageTypeAzure, blueprintapi.ImageTypeVhd:
			mapAzureOptions(options, state)

		case blueprintapi.ImageTypeGcp:
			mapGcpOptions(options, state)
		}
	}
}

func mapAwsOptions(options blueprintapi.UploadRequestOptions, state *wizardstate.State) {
	switch {
	case len(options.ShareWithSources) > 0:
		state.Aws.ShareMethod = wizardstate.AwsShareMethodSources
		state.Aws.SourceID = options.ShareWithSources[0]

	case len(options.ShareWithAccounts) > 0:
		state.Aws.ShareMethod = wizardstate.AwsShareMethodManual
		state.Aws.AccountID = options.ShareWithAccounts[0]
	}
}

func mapAzureOptions(options blueprintapi.UploadRequestOptions, state *wizardstate.State) {
	state.Azure.TenantID = options.TenantID
	state.Azure.SubscriptionID = options.SubscriptionID
	state.Azure.ResourceGroup = options.ResourceGroup

	if options.SourceID != "" {
		state.Azure.ShareMethod = wizardstate.AzureShareMethodSources
		state.Azure.Source = options.SourceID
	} else {
		state.Azure.ShareMethod = wizardstate.AzureShareMethodManual
	}
}

// mapGcpOptions reads the "<accountType>:<email>" share target of a gcp image.
func mapGcpOptions(options blueprintapi.UploadRequestOptions, state *wizardstate.State) {
	if len(options.ShareWithAccounts) == 0 {
		state.Gcp.ShareMethod = wizardstate.GcpShareMethodWithInsights
		state.Gcp.AccountType = wizardstate.GcpAccountTypeNone
		state.Gcp.Email = ""
		return
	}

	state.Gcp.ShareMethod = wizardstate.GcpShareMethodWithGoogle

	accountType, email, found := strings.Cut(options.ShareWithAccounts[0], ":")
	if !found {
		state.Gcp.AccountType = wizardstate.GcpAccountTypeUser
		state.Gcp.Email = options.ShareWithAccounts[0]
		return
	}

	state.Gcp.AccountType = wizardstate.GcpAccountType(accountType)
	state.Gcp.Email = email
}

func mapCustomizations(customizations *blueprintapi.Customizations, state *wizardstate.State) {
	for _, name := range customizations.Packages {
		state.Packages = append(state.Packages, wizardstate.Package{
			Name:       name,
			Summary:    wizardstate.PackageInfoUnknown,
			Repository: wizardstate.PackageInfoUnknown,
		})
	}

	mapFilesystem(customizations.Filesystem, state)

	if customizations.OpenSCAP != nil {
		state.OpenScap.Profile = customizations.OpenSCAP.ProfileID
	}

	mapSubscription(customizations.Subscription, state)
	mapRepositories(customizations, state)

	script, found, err := firstBootScript(customizations.Files)
	if err != nil {
		logger.Log.Warnf("Ignoring first boot script:\n%v", err)
	} else if found {
		state.FirstBoot.Script = script
	}

	if customizations.Kernel != nil {
		state.Kernel = wizardstate.KernelState{
			Name:   customizations.Kernel.Name,
			Append: customizations.Kernel.Append,
		}
	}

	if customizations.Services != nil {
		state.Services = wizardstate.ServicesState{
			Enabled:  cloneOrEmpty(customizations.Services.Enabled),
			Disabled: cloneOrEmpty(customizations.Services.Disabled),
			Masked:   cloneOrEmpty(customizations.Services.Masked),
		}
	}

	for _, user := range customizations.Users {
		user.Groups = slices.Clone(user.Groups)
		state.Users = append(state.Users, user)
	}

	if customizations.Hostname != nil {
		state.Hostname = *customizations.Hostname
	}

	if customizations.Timezone != nil {
		state.Timezone = wizardstate.TimezoneState{
			Timezone:   customizations.Timezone.Timezone,
			NtpServers: cloneOrEmpty(customizations.Timezone.NtpServers),
		}
	}

	if customizations.Locale != nil {
		state.Locale = wizardstate.LocaleState{
			Languages: cloneOrEmpty(customizations.Locale.Languages),
			Keyboard:  customizations.Locale.Keyboard,
		}
	}

	if customizations.FIPS != nil {
		state.FIPS.Enabled = customizations.FIPS.Enabled
	}
}

// mapFilesystem copies the sizes as bytes. No unit is set so the sizes display unchanged.
func mapFilesystem(filesystems []blueprintapi.Filesystem, state *wizardstate.State) {
	if len(filesystems) == 0 {
		state.FileSystem.Mode = wizardstate.FileSystemPartitionModeAutomatic
		return
	}

	state.FileSystem.Mode = wizardstate.FileSystemPartitionModeManual
	for _, filesystem := range filesystems {
		state.FileSystem.Partitions = append(state.FileSystem.Partitions,
			wizardstate.NewPartition(filesystem.Mountpoint, filesystem.MinSize.String(), wizardstate.UnitNone))
	}
}

func mapSubscription(subscription *blueprintapi.Subscription, state *wizardstate.State) {
	if subscription == nil {
		state.Registration.RegistrationType = wizardstate.RegistrationTypeRegisterLater
		return
	}

	state.Registration.ActivationKey = subscription.ActivationKey

	rhc := subscription.Rhc != nil && *subscription.Rhc
	switch {
	case subscription.Insights && rhc:
		state.Registration.RegistrationType = wizardstate.RegistrationTypeRegisterNowRhc

	case subscription.Insights:
		state.Registration.RegistrationType = wizardstate.RegistrationTypeRegisterNowInsights

	default:
		state.Registration.RegistrationType = wizardstate.RegistrationTypeRegisterNow
	}
}

func mapRepositories(customizations *blueprintapi.Customizations, state *wizardstate.State) {
	for _, custom := range customizations.CustomRepositories {
		custom.Baseurl = slices.Clone(custom.Baseurl)
		custom.Gpgkey = slices.Clone(custom.Gpgkey)
		state.Repositories.CustomRepositories = append(state.Repositories.CustomRepositories, custom)
	}

	if customizations.PayloadRepositories != nil {
		state.Repositories.PayloadRepositories = append(state.Repositories.PayloadRepositories,
			customizations.PayloadRepositories...)
		return
	}

	state.Repositories.PayloadRepositories = append(state.Repositories.PayloadRepositories,
		wizardstate.PayloadRepositoriesFromCustom(customizations.CustomRepositories)...)
}

// mapContentSources adds the content sources that are not yet custom repositories.
func mapContentSources(contentSources []blueprintapi.ContentSource, state *wizardstate.State) {
	if len(contentSources) == 0 {
		return
	}

	repositories := make([]blueprintapi.CustomRepository, 0, len(contentSources))
	for _, source := range contentSources {
		repositories = append(repositories, wizardstate.RepositoryFromContentSource(source).ToCustomRepository())
	}

	wizardstate.ImportCustomRepositories(repositories)(state)
}

func cloneOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

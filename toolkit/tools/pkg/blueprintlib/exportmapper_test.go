// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"testing"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/ptrutils"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/pkg/wizardstate"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapExportRequestToStateEmpty(t *testing.T) {
	state := MapExportRequestToState(blueprintapi.BlueprintExport{Name: "empty"}, nil)

	assert.Equal(t, "empty", state.Details.BlueprintName)
	assert.Equal(t, blueprintapi.DefaultDistribution, state.Distribution)
	assert.Equal(t, blueprintapi.DefaultArchitecture, state.Architecture)
	assert.Empty(t, state.ImageTypes)
	assert.Empty(t, state.Packages)
	assert.Equal(t, wizardstate.FileSystemPartitionModeAutomatic, state.FileSystem.Mode)
	assert.Equal(t, wizardstate.RegistrationTypeRegisterLater, state.Registration.RegistrationType)
	assert.Equal(t, wizardstate.WizardModeCreate, state.WizardMode)
}

func TestMapExportRequestToStateFilesystemSizeUnchanged(t *testing.T) {
	export := blueprintapi.BlueprintExport{
		Name: "filesystem",
		Customizations: blueprintapi.Customizations{
			Filesystem: []blueprintapi.Filesystem{
				{Mountpoint: "/", MinSize: 10737418240},
			},
		},
	}

	state := MapExportRequestToState(export, nil)

	require.Len(t, state.FileSystem.Partitions, 1)
	partition := state.FileSystem.Partitions[0]
	assert.Equal(t, "/", partition.Mountpoint)
	assert.Equal(t, "10737418240", partition.MinSize)
	assert.Equal(t, wizardstate.UnitNone, partition.Unit)
	assert.NotEmpty(t, partition.ID)
	assert.Equal(t, wizardstate.FileSystemPartitionModeManual, state.FileSystem.Mode)

	displayed, err := wizardstate.ConvertToDisplayUnits(partition.MinSize, partition.Unit)
	assert.NoError(t, err)
	assert.Equal(t, "10737418240", displayed)
}

func TestMapExportRequestToStateRegistration(t *testing.T) {
	tests := []struct {
		name         string
		subscription *blueprintapi.Subscription
		expected     wizardstate.RegistrationType
	}{
		{"none", nil, wizardstate.RegistrationTypeRegisterLater},
		{"rhsm", &blueprintapi.Subscription{ActivationKey: "key"}, wizardstate.RegistrationTypeRegisterNow},
		{"insights", &blueprintapi.Subscription{ActivationKey: "key", Insights: true}, wizardstate.RegistrationTypeRegisterNowInsights},
		{"rhc", &blueprintapi.Subscription{ActivationKey: "key", Insights: true, Rhc: ptrutils.PtrTo(true)}, wizardstate.RegistrationTypeRegisterNowRhc},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			export := blueprintapi.BlueprintExport{
				Customizations: blueprintapi.Customizations{Subscription: test.subscription},
			}

			state := MapExportRequestToState(export, nil)
			assert.Equal(t, test.expected, state.Registration.RegistrationType)
		})
	}
}

func TestMapExportRequestToStateImageRequests(t *testing.T) {
	imageRequests := []blueprintapi.ImageRequest{
		{
			Architecture: blueprintapi.ArchitectureAarch64,
			ImageType:    blueprintapi.ImageTypeAws,
			UploadRequest: blueprintapi.UploadRequest{
				Type:    blueprintapi.UploadTypeAws,
				Options: blueprintapi.UploadRequestOptions{ShareWithSources: []string{"123"}},
			},
		},
		{
			Architecture: blueprintapi.ArchitectureAarch64,
			ImageType:    blueprintapi.ImageTypeAzure,
			UploadRequest: blueprintapi.UploadRequest{
				Type: blueprintapi.UploadTypeAzure,
				Options: blueprintapi.UploadRequestOptions{
					TenantID:       "b8f86d22-4371-46ce-95e7-65c415f3b1e2",
					SubscriptionID: "60631143-a7dc-4d15-988b-ba83f3c99711",
					ResourceGroup:  "testResourceGroup",
				},
			},
		},
		{
			Architecture: blueprintapi.ArchitectureAarch64,
			ImageType:    blueprintapi.ImageTypeGcp,
			UploadRequest: blueprintapi.UploadRequest{
				Type:    blueprintapi.UploadTypeGcp,
				Options: blueprintapi.UploadRequestOptions{ShareWithAccounts: []string{"serviceAccount:test@example.com"}},
			},
		},
		{
			Architecture: blueprintapi.ArchitectureAarch64,
			ImageType:    blueprintapi.ImageTypeAws,
		},
	}

	state := MapExportRequestToState(blueprintapi.BlueprintExport{}, imageRequests)

	assert.Equal(t, blueprintapi.ArchitectureAarch64, state.Architecture)
	assert.Equal(t, []blueprintapi.ImageType{blueprintapi.ImageTypeAws, blueprintapi.ImageTypeAzure, blueprintapi.ImageTypeGcp},
		state.ImageTypes)

	assert.Equal(t, wizardstate.AwsShareMethodSources, state.Aws.ShareMethod)
	assert.Equal(t, "123", state.Aws.SourceID)

	assert.Equal(t, wizardstate.AzureShareMethodManual, state.Azure.ShareMethod)
	assert.Equal(t, "b8f86d22-4371-46ce-95e7-65c415f3b1e2", state.Azure.TenantID)
	assert.Equal(t, "60631143-a7dc-4d15-988b-ba83f3c99711", state.Azure.SubscriptionID)
	assert.Equal(t, "testResourceGroup", state.Azure.ResourceGroup)

	assert.Equal(t, wizardstate.GcpShareMethodWithGoogle, state.Gcp.ShareMethod)
	assert.Equal(t, wizardstate.GcpAccountTypeServiceAccount, state.Gcp.AccountType)
	assert.Equal(t, "test@example.com", state.Gcp.Email)
}

func TestMapExportRequestToStateGcpWithInsights(t *testing.T) {
	imageRequests := []blueprintapi.ImageRequest{
		{Architecture: blueprintapi.ArchitectureX86_64, ImageType: blueprintapi.ImageTypeGcp},
	}

	state := MapExportRequestToState(blueprintapi.BlueprintExport{}, imageRequests)

	assert.Equal(t, wizardstate.GcpShareMethodWithInsights, state.Gcp.ShareMethod)
	assert.Equal(t, wizardstate.GcpAccountTypeNone, state.Gcp.AccountType)
	assert.Empty(t, state.Gcp.Email)
}

func TestMapExportRequestToStateUnknownArchitecture(t *testing.T) {
	imageRequests := []blueprintapi.ImageRequest{
		{Architecture: "s390x", ImageType: blueprintapi.ImageTypeGuestImage},
	}

	state := MapExportRequestToState(blueprintapi.BlueprintExport{Name: "arch"}, imageRequests)
	assert.Equal(t, blueprintapi.Architecture("s390x"), state.Architecture)

	var architecture *wizardstate.InputValidation
	validations := wizardstate.ValidateImageOutput(&state)
	for i := range validations {
		if validations[i].InputID == "architecture" {
			architecture = &validations[i]
		}
	}
	require.NotNil(t, architecture)
	assert.False(t, architecture.IsValid)
	assert.Contains(t, architecture.ErrorText, "invalid architecture value (s390x)")
}

func TestMapExportRequestToStateRepositories(t *testing.T) {
	customRepositories := []blueprintapi.CustomRepository{
		{
			ID:       "epel",
			Name:     "EPEL",
			Baseurl:  []string{"https://example.com/epel/"},
			Gpgkey:   []string{"key1", "key2"},
			CheckGpg: ptrutils.PtrTo(true),
		},
	}

	t.Run("payload projected from custom", func(t *testing.T) {
		export := blueprintapi.BlueprintExport{
			Customizations: blueprintapi.Customizations{CustomRepositories: customRepositories},
		}

		state := MapExportRequestToState(export, nil)

		assert.Equal(t, customRepositories, state.Repositories.CustomRepositories)
		require.Len(t, state.Repositories.PayloadRepositories, 1)
		payload := state.Repositories.PayloadRepositories[0]
		assert.Equal(t, "epel", *payload.ID)
		assert.Equal(t, "https://example.com/epel/", *payload.Baseurl)
		assert.Equal(t, "key1", *payload.Gpgkey)
		assert.False(t, payload.Rhsm)
	})

	t.Run("payload copied", func(t *testing.T) {
		payloadRepositories := []blueprintapi.Repository{
			{Baseurl: ptrutils.PtrTo("https://example.com/other/"), Rhsm: true},
		}
		export := blueprintapi.BlueprintExport{
			Customizations: blueprintapi.Customizations{
				CustomRepositories:  customRepositories,
				PayloadRepositories: payloadRepositories,
			},
		}

		state := MapExportRequestToState(export, nil)
		assert.Equal(t, payloadRepositories, state.Repositories.PayloadRepositories)
	})
}

func TestMapExportRequestToStateContentSources(t *testing.T) {
	export := blueprintapi.BlueprintExport{
		Customizations: blueprintapi.Customizations{
			CustomRepositories: []blueprintapi.CustomRepository{
				{ID: "epel", Baseurl: []string{"https://example.com/epel/"}},
			},
		},
		ContentSources: []blueprintapi.ContentSource{
			{Name: "EPEL", URL: "https://example.com/epel/"},
			{Name: "Extras", URL: "https://example.com/extras/", GpgKey: "key", MetadataVerification: true},
		},
	}

	state := MapExportRequestToState(export, nil)

	require.Len(t, state.Repositories.CustomRepositories, 2)
	extras := state.Repositories.CustomRepositories[1]
	assert.Equal(t, "Extras", extras.Name)
	assert.Empty(t, extras.ID)
	assert.Equal(t, []string{"https://example.com/extras/"}, extras.Baseurl)
	assert.Equal(t, []string{"key"}, extras.Gpgkey)
	assert.True(t, *extras.CheckGpg)
	assert.True(t, *extras.CheckRepoGpg)

	require.Len(t, state.Repositories.PayloadRepositories, 2)
	assert.Nil(t, state.Repositories.PayloadRepositories[1].ID)
	assert.Equal(t, "https://example.com/extras/", *state.Repositories.PayloadRepositories[1].Baseurl)
}

func TestMapExportRequestToStateFirstBoot(t *testing.T) {
	export := blueprintapi.BlueprintExport{
		Customizations: blueprintapi.Customizations{
			Files: []blueprintapi.File{
				{Path: "/etc/motd", Data: "hello"},
				{
					Path:         blueprintapi.FirstBootScriptPath,
					Data:         "ZWNobyAiaGVsbG8iCg==",
					DataEncoding: blueprintapi.DataEncodingBase64,
				},
			},
		},
	}

	state := MapExportRequestToState(export, nil)
	assert.Equal(t, "echo \"hello\"\n", state.FirstBoot.Script)
}

func TestMapExportRequestToStateFirstBootInvalidEncoding(t *testing.T) {
	logHook.ConsumeMessages()

	export := blueprintapi.BlueprintExport{
		Customizations: blueprintapi.Customizations{
			Files: []blueprintapi.File{
				{
					Path:         blueprintapi.FirstBootScriptPath,
					Data:         "not base64!",
					DataEncoding: blueprintapi.DataEncodingBase64,
				},
			},
		},
	}

	state := MapExportRequestToState(export, nil)
	assert.Empty(t, state.FirstBoot.Script)

	warnings := logHook.MessagesAtLevel(logrus.WarnLevel)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "failed to decode first boot script")
}

func TestMapExportRequestToStateCustomizations(t *testing.T) {
	export := blueprintapi.BlueprintExport{
		Name:         "customized",
		Description:  "all the things",
		Distribution: blueprintapi.DistributionRhel810,
		Customizations: blueprintapi.Customizations{
			Packages: []string{"tmux", "@Server"},
			Kernel:   &blueprintapi.Kernel{Name: "kernel-debug", Append: "nosmt=force"},
			Services: &blueprintapi.Services{Enabled: []string{"sshd"}},
			OpenSCAP: &blueprintapi.OpenSCAP{ProfileID: "xccdf_org.ssgproject.content_profile_cis"},
			Users:    []blueprintapi.User{{Name: "admin", Groups: []string{"wheel"}}},
			Hostname: ptrutils.PtrTo("base-image"),
			Timezone: &blueprintapi.Timezone{Timezone: "Europe/Prague"},
			Locale:   &blueprintapi.Locale{Languages: []string{"en_US.UTF-8"}, Keyboard: "us"},
			FIPS:     &blueprintapi.FIPS{Enabled: true},
		},
	}

	state := MapExportRequestToState(export, nil)

	assert.Equal(t, "all the things", state.Details.BlueprintDescription)
	assert.Equal(t, blueprintapi.DistributionRhel810, state.Distribution)
	assert.Equal(t, []wizardstate.Package{
		{Name: "tmux", Summary: wizardstate.PackageInfoUnknown, Repository: wizardstate.PackageInfoUnknown},
		{Name: "@Server", Summary: wizardstate.PackageInfoUnknown, Repository: wizardstate.PackageInfoUnknown},
	}, state.Packages)
	assert.Equal(t, wizardstate.KernelState{Name: "kernel-debug", Append: "nosmt=force"}, state.Kernel)
	assert.Equal(t, []string{"sshd"}, state.Services.Enabled)
	assert.Equal(t, []string{}, state.Services.Disabled)
	assert.Equal(t, "xccdf_org.ssgproject.content_profile_cis", state.OpenScap.Profile)
	assert.Equal(t, export.Customizations.Users, state.Users)
	assert.Equal(t, "base-image", state.Hostname)
	assert.Equal(t, "Europe/Prague", state.Timezone.Timezone)
	assert.Equal(t, []string{}, state.Timezone.NtpServers)
	assert.Equal(t, "us", state.Locale.Keyboard)
	assert.True(t, state.FIPS.Enabled)
}

func TestMapRequestToState(t *testing.T) {
	response := blueprintapi.BlueprintResponse{
		ID:           "b8f86d22-4371-46ce-95e7-65c415f3b1e2",
		Name:         "stored",
		Distribution: blueprintapi.DistributionRhel9,
		ImageRequests: []blueprintapi.ImageRequest{
			{Architecture: blueprintapi.ArchitectureX86_64, ImageType: blueprintapi.ImageTypeGuestImage},
		},
		Customizations: blueprintapi.Customizations{
			Packages: []string{"tmux"},
		},
	}

	state := MapRequestToState(response)

	assert.Equal(t, wizardstate.WizardModeEdit, state.WizardMode)
	assert.Equal(t, "stored", state.Details.BlueprintName)
	assert.Equal(t, []blueprintapi.ImageType{blueprintapi.ImageTypeGuestImage}, state.ImageTypes)
	assert.Len(t, state.Packages, 1)
}

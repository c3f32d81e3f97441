// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"context"
	"slices"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/ptrutils"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/sliceutils"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/onpremapi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// MapOnPremToHosted reshapes an on-premises blueprint into the hosted export format.
// Nothing is validated. Sub-objects missing from the on-prem blueprint are left out.
func MapOnPremToHosted(ctx context.Context, onprem *onpremapi.Blueprint) blueprintapi.BlueprintExport {
	_, span := otel.GetTracerProvider().Tracer(OtelTracerName).Start(ctx, "map_onprem_to_hosted")
	defer span.End()

	export := blueprintapi.BlueprintExport{
		Name:         onprem.Name,
		Description:  onprem.Description,
		Distribution: blueprintapi.Distribution(onprem.DistributionName()),
		Metadata: &blueprintapi.BlueprintMetadata{
			IsOnPrem: true,
		},
	}

	packages := onprem.PackageNames()
	if onprem.Customizations != nil {
		packages = append(packages, onprem.Customizations.Packages...)
	}
	if len(packages) > 0 {
		export.Customizations.Packages = sliceutils.Unique(packages)
	}

	span.SetAttributes(
		attribute.Int("packages_count", len(export.Customizations.Packages)),
	)

	if onprem.Customizations != nil {
		mapOnPremCustomizations(onprem.Customizations, &export.Customizations)
	}

	return export
}

// OnPremImageRequests returns the image requests carried by an on-premises blueprint.
func OnPremImageRequests(onprem *onpremapi.Blueprint) []blueprintapi.ImageRequest {
	imageRequests := make([]blueprintapi.ImageRequest, 0, len(onprem.ImageRequests))
	for _, imageRequest := range onprem.ImageRequests {
		imageRequest.UploadRequest.Options.ShareWithAccounts = slices.Clone(
			imageRequest.UploadRequest.Options.ShareWithAccounts)
		imageRequest.UploadRequest.Options.ShareWithSources = slices.Clone(
			imageRequest.UploadRequest.Options.ShareWithSources)
		imageRequests = append(imageRequests, imageRequest)
	}
	return imageRequests
}

func mapOnPremCustomizations(onprem *onpremapi.Customizations, hosted *blueprintapi.Customizations) {
	hosted.Hostname = onprem.Hostname
	hosted.Kernel = onprem.Kernel
	hosted.Services = onprem.Services
	hosted.Timezone = onprem.Timezone
	hosted.Locale = onprem.Locale
	hosted.Firewall = onprem.Firewall
	hosted.Subscription = onprem.Subscription

	if onprem.InstallationDevice != "" {
		hosted.InstallationDevice = ptrutils.PtrTo(onprem.InstallationDevice)
	}

	if onprem.FIPS != nil {
		hosted.FIPS = &blueprintapi.FIPS{
			Enabled: *onprem.FIPS,
		}
	}

	if onprem.OpenSCAP != nil && onprem.OpenSCAP.ProfileID != "" {
		hosted.OpenSCAP = &blueprintapi.OpenSCAP{
			ProfileID: onprem.OpenSCAP.ProfileID,
		}
	}

	hosted.Users = mapOnPremUsers(onprem.User, onprem.SSHKey)

	for _, group := range onprem.Group {
		hosted.Groups = append(hosted.Groups, blueprintapi.Group{
			Name: group.Name,
			Gid:  group.GID,
		})
	}

	for _, filesystem := range onprem.Filesystem {
		hosted.Filesystem = append(hosted.Filesystem, blueprintapi.Filesystem{
			Mountpoint: filesystem.Mountpoint,
			MinSize:    blueprintapi.ByteSize(filesystem.MinSize),
		})
	}

	for _, file := range onprem.Files {
		hosted.Files = append(hosted.Files, blueprintapi.File{
			Path:  file.Path,
			Data:  file.Data,
			Mode:  file.Mode,
			User:  string(file.User),
			Group: string(file.Group),
		})
	}

	for _, repo := range onprem.Repositories {
		hosted.CustomRepositories = append(hosted.CustomRepositories, blueprintapi.CustomRepository{
			ID:             repo.ID,
			Name:           repo.Name,
			Filename:       repo.Filename,
			Baseurl:        slices.Clone(repo.BaseURLs),
			Mirrorlist:     repo.Mirrorlist,
			Metalink:       repo.Metalink,
			Gpgkey:         slices.Clone(repo.GPGKeys),
			CheckGpg:       repo.GPGCheck,
			CheckRepoGpg:   repo.RepoGPGCheck,
			Enabled:        repo.Enabled,
			Priority:       repo.Priority,
			SslVerify:      repo.SSLVerify,
			ModuleHotfixes: repo.ModuleHotfixes,
		})
	}
}

// mapOnPremUsers merges the 'sshkey' entries into the users they belong to. A key for a user
// that is not otherwise listed creates that user.
func mapOnPremUsers(users []onpremapi.User, sshKeys []onpremapi.SSHKey) []blueprintapi.User {
	var hostedUsers []blueprintapi.User

	for _, user := range users {
		hostedUsers = append(hostedUsers, blueprintapi.User{
			Name:     user.Name,
			Password: ptrutils.ValueOr(user.Password, ""),
			SSHKey:   ptrutils.ValueOr(user.Key, ""),
			Groups:   slices.Clone(user.Groups),
		})
	}

	for _, sshKey := range sshKeys {
		index := slices.IndexFunc(hostedUsers, func(user blueprintapi.User) bool {
			return user.Name == sshKey.User
		})
		if index == -1 {
			hostedUsers = append(hostedUsers, blueprintapi.User{
				Name:   sshKey.User,
				SSHKey: sshKey.Key,
			})
			continue
		}

		if hostedUsers[index].SSHKey == "" {
			hostedUsers[index].SSHKey = sshKey.Key
		}
	}

	return hostedUsers
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"slices"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/ptrutils"
)

// Repository is the single record behind a custom repository and its payload repository.
type Repository struct {
	ID             string
	Name           string
	BaseURLs       []string
	GPGKeys        []string
	CheckGPG       *bool
	CheckRepoGPG   *bool
	ModuleHotfixes *bool
}

func RepositoryFromCustom(custom blueprintapi.CustomRepository) Repository {
	return Repository{
		ID:             custom.ID,
		Name:           custom.Name,
		BaseURLs:       slices.Clone(custom.Baseurl),
		GPGKeys:        slices.Clone(custom.Gpgkey),
		CheckGPG:       custom.CheckGpg,
		CheckRepoGPG:   custom.CheckRepoGpg,
		ModuleHotfixes: custom.ModuleHotfixes,
	}
}

func RepositoryFromContentSource(source blueprintapi.ContentSource) Repository {
	repo := Repository{
		Name:     source.Name,
		BaseURLs: []string{source.URL},
	}

	if source.GpgKey != "" {
		repo.GPGKeys = []string{source.GpgKey}
		repo.CheckGPG = ptrutils.PtrTo(true)
		repo.CheckRepoGPG = ptrutils.PtrTo(source.MetadataVerification)
	}

	if source.ModuleHotfixes {
		repo.ModuleHotfixes = ptrutils.PtrTo(true)
	}

	return repo
}

// ToCustomRepository projects the record to the list valued customization shape.
func (r Repository) ToCustomRepository() blueprintapi.CustomRepository {
	return blueprintapi.CustomRepository{
		ID:             r.ID,
		Name:           r.Name,
		Baseurl:        slices.Clone(r.BaseURLs),
		Gpgkey:         slices.Clone(r.GPGKeys),
		CheckGpg:       r.CheckGPG,
		CheckRepoGpg:   r.CheckRepoGPG,
		ModuleHotfixes: r.ModuleHotfixes,
	}
}

// ToPayloadRepository projects the record to the scalar build time shape.
// Only the first base URL and the first GPG key are kept.
func (r Repository) ToPayloadRepository() blueprintapi.Repository {
	payload := blueprintapi.Repository{
		CheckGpg:       r.CheckGPG,
		CheckRepoGpg:   r.CheckRepoGPG,
		ModuleHotfixes: r.ModuleHotfixes,
		Rhsm:           false,
	}

	if r.ID != "" {
		payload.ID = ptrutils.PtrTo(r.ID)
	}
	if len(r.BaseURLs) > 0 {
		payload.Baseurl = ptrutils.PtrTo(r.BaseURLs[0])
	}
	if len(r.GPGKeys) > 0 {
		payload.Gpgkey = ptrutils.PtrTo(r.GPGKeys[0])
	}

	return payload
}

// PayloadRepositoriesFromCustom projects every custom repository to its payload shape.
func PayloadRepositoriesFromCustom(customRepositories []blueprintapi.CustomRepository) []blueprintapi.Repository {
	payloadRepositories := make([]blueprintapi.Repository, 0, len(customRepositories))
	for _, custom := range customRepositories {
		payloadRepositories = append(payloadRepositories, RepositoryFromCustom(custom).ToPayloadRepository())
	}
	return payloadRepositories
}

// matchesPayload reports whether a payload repository was projected from the record.
func (r Repository) matchesPayload(payload blueprintapi.Repository) bool {
	if r.ID != "" && payload.ID != nil {
		return *payload.ID == r.ID
	}
	return payload.Baseurl != nil && slices.Contains(r.BaseURLs, *payload.Baseurl)
}

// matchesCustom reports whether two repositories describe the same source.
func (r Repository) matchesCustom(custom blueprintapi.CustomRepository) bool {
	if r.ID != "" && custom.ID != "" {
		return custom.ID == r.ID
	}
	for _, baseURL := range custom.Baseurl {
		if slices.Contains(r.BaseURLs, baseURL) {
			return true
		}
	}
	return false
}

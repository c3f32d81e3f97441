// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

// CustomRepository is the blueprint customization form of a repository.
// Base URLs and GPG keys are lists.
type CustomRepository struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	Filename       string   `json:"filename,omitempty"`
	Baseurl        []string `json:"baseurl,omitempty"`
	Mirrorlist     string   `json:"mirrorlist,omitempty"`
	Metalink       string   `json:"metalink,omitempty"`
	Gpgkey         []string `json:"gpgkey,omitempty"`
	CheckGpg       *bool    `json:"check_gpg,omitempty"`
	CheckRepoGpg   *bool    `json:"check_repo_gpg,omitempty"`
	Enabled        *bool    `json:"enabled,omitempty"`
	Priority       *int     `json:"priority,omitempty"`
	SslVerify      *bool    `json:"ssl_verify,omitempty"`
	ModuleHotfixes *bool    `json:"module_hotfixes,omitempty"`
}

// Repository is the payload (build time) form of a repository.
// Base URL and GPG key are scalars.
type Repository struct {
	ID             *string `json:"id,omitempty"`
	Baseurl        *string `json:"baseurl,omitempty"`
	Mirrorlist     *string `json:"mirrorlist,omitempty"`
	Metalink       *string `json:"metalink,omitempty"`
	Gpgkey         *string `json:"gpgkey,omitempty"`
	CheckGpg       *bool   `json:"check_gpg,omitempty"`
	CheckRepoGpg   *bool   `json:"check_repo_gpg,omitempty"`
	IgnoreSsl      *bool   `json:"ignore_ssl,omitempty"`
	Rhsm           bool    `json:"rhsm"`
	ModuleHotfixes *bool   `json:"module_hotfixes,omitempty"`
}

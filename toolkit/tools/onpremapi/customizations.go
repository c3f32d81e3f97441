// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package onpremapi

import (
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
)

type Customizations struct {
	Hostname           *string                `json:"hostname,omitempty" toml:"hostname,omitempty"`
	Kernel             *blueprintapi.Kernel   `json:"kernel,omitempty" toml:"kernel,omitempty"`
	SSHKey             []SSHKey               `json:"sshkey,omitempty" toml:"sshkey,omitempty"`
	User               []User                 `json:"user,omitempty" toml:"user,omitempty"`
	Group              []UserGroup            `json:"group,omitempty" toml:"group,omitempty"`
	Timezone           *blueprintapi.Timezone `json:"timezone,omitempty" toml:"timezone,omitempty"`
	Locale             *blueprintapi.Locale   `json:"locale,omitempty" toml:"locale,omitempty"`
	Firewall           *blueprintapi.Firewall `json:"firewall,omitempty" toml:"firewall,omitempty"`
	Services           *blueprintapi.Services `json:"services,omitempty" toml:"services,omitempty"`
	Filesystem         []Filesystem           `json:"filesystem,omitempty" toml:"filesystem,omitempty"`
	InstallationDevice string                 `json:"installation_device,omitempty" toml:"installation_device,omitempty"`
	FIPS               *bool                  `json:"fips,omitempty" toml:"fips,omitempty"`
	OpenSCAP           *OpenSCAP              `json:"openscap,omitempty" toml:"openscap,omitempty"`
	Files              []File                 `json:"files,omitempty" toml:"files,omitempty"`
	Repositories       []Repository           `json:"repositories,omitempty" toml:"repositories,omitempty"`

	// Hosted keys found in files that mix both formats.
	Packages     []string                   `json:"packages,omitempty" toml:"packages,omitempty"`
	Subscription *blueprintapi.Subscription `json:"subscription,omitempty" toml:"subscription,omitempty"`
}

type SSHKey struct {
	User string `json:"user" toml:"user"`
	Key  string `json:"key" toml:"key"`
}

type User struct {
	Name        string   `json:"name" toml:"name"`
	Description *string  `json:"description,omitempty" toml:"description,omitempty"`
	Password    *string  `json:"password,omitempty" toml:"password,omitempty"`
	Key         *string  `json:"key,omitempty" toml:"key,omitempty"`
	Home        *string  `json:"home,omitempty" toml:"home,omitempty"`
	Shell       *string  `json:"shell,omitempty" toml:"shell,omitempty"`
	Groups      []string `json:"groups,omitempty" toml:"groups,omitempty"`
	UID         *int     `json:"uid,omitempty" toml:"uid,omitempty"`
	GID         *int     `json:"gid,omitempty" toml:"gid,omitempty"`
}

type UserGroup struct {
	Name string `json:"name" toml:"name"`
	GID  *int   `json:"gid,omitempty" toml:"gid,omitempty"`
}

type Filesystem struct {
	Mountpoint string   `json:"mountpoint" toml:"mountpoint"`
	MinSize    DataSize `json:"minsize,omitempty" toml:"minsize,omitempty"`
}

type OpenSCAP struct {
	DataStream string `json:"datastream,omitempty" toml:"datastream,omitempty"`
	ProfileID  string `json:"profile_id" toml:"profile_id"`
}

type File struct {
	Path  string    `json:"path" toml:"path"`
	User  FileOwner `json:"user,omitempty" toml:"user,omitempty"`
	Group FileOwner `json:"group,omitempty" toml:"group,omitempty"`
	Mode  string    `json:"mode,omitempty" toml:"mode,omitempty"`
	Data  string    `json:"data,omitempty" toml:"data,omitempty"`
}

type Repository struct {
	ID             string   `json:"id" toml:"id"`
	Name           string   `json:"name,omitempty" toml:"name,omitempty"`
	Filename       string   `json:"filename,omitempty" toml:"filename,omitempty"`
	BaseURLs       []string `json:"baseurls,omitempty" toml:"baseurls,omitempty"`
	Mirrorlist     string   `json:"mirrorlist,omitempty" toml:"mirrorlist,omitempty"`
	Metalink       string   `json:"metalink,omitempty" toml:"metalink,omitempty"`
	GPGKeys        []string `json:"gpgkeys,omitempty" toml:"gpgkeys,omitempty"`
	GPGCheck       *bool    `json:"gpgcheck,omitempty" toml:"gpgcheck,omitempty"`
	RepoGPGCheck   *bool    `json:"repo_gpgcheck,omitempty" toml:"repo_gpgcheck,omitempty"`
	Enabled        *bool    `json:"enabled,omitempty" toml:"enabled,omitempty"`
	Priority       *int     `json:"priority,omitempty" toml:"priority,omitempty"`
	SSLVerify      *bool    `json:"sslverify,omitempty" toml:"sslverify,omitempty"`
	ModuleHotfixes *bool    `json:"module_hotfixes,omitempty" toml:"module_hotfixes,omitempty"`
}

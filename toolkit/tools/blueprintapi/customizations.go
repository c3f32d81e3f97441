// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

// Customizations is the optional part of a blueprint.
// A nil pointer or a nil slice means the customization is absent.
type Customizations struct {
	Packages            []string           `json:"packages,omitempty"`
	Services            *Services          `json:"services,omitempty"`
	Kernel              *Kernel            `json:"kernel,omitempty"`
	Filesystem          []Filesystem       `json:"filesystem,omitempty"`
	OpenSCAP            *OpenSCAP          `json:"openscap,omitempty"`
	Subscription        *Subscription      `json:"subscription,omitempty"`
	CustomRepositories  []CustomRepository `json:"custom_repositories,omitempty"`
	PayloadRepositories []Repository       `json:"payload_repositories,omitempty"`
	Files               []File             `json:"files,omitempty"`
	Users               []User             `json:"users,omitempty"`
	Groups              []Group            `json:"groups,omitempty"`
	Hostname            *string            `json:"hostname,omitempty"`
	Timezone            *Timezone          `json:"timezone,omitempty"`
	Locale              *Locale            `json:"locale,omitempty"`
	Firewall            *Firewall          `json:"firewall,omitempty"`
	FIPS                *FIPS              `json:"fips,omitempty"`
	InstallationDevice  *string            `json:"installation_device,omitempty"`
}

type Services struct {
	Enabled  []string `json:"enabled,omitempty"`
	Disabled []string `json:"disabled,omitempty"`
	Masked   []string `json:"masked,omitempty"`
}

type Kernel struct {
	Name   string `json:"name,omitempty"`
	Append string `json:"append,omitempty"`
}

type OpenSCAP struct {
	ProfileID          string `json:"profile_id,omitempty"`
	ProfileName        string `json:"profile_name,omitempty"`
	ProfileDescription string `json:"profile_description,omitempty"`
}

// Subscription holds the RHSM registration of the built image.
type Subscription struct {
	ActivationKey string `json:"activation-key,omitempty"`
	Insights      bool   `json:"insights,omitempty"`
	Rhc           *bool  `json:"rhc,omitempty"`
	Organization  int    `json:"organization,omitempty"`
	ServerURL     string `json:"server-url,omitempty"`
	BaseURL       string `json:"base-url,omitempty"`
}

type File struct {
	Path          string `json:"path"`
	Data          string `json:"data,omitempty"`
	DataEncoding  string `json:"data_encoding,omitempty"`
	Mode          string `json:"mode,omitempty"`
	User          string `json:"user,omitempty"`
	Group         string `json:"group,omitempty"`
	EnsureParents bool   `json:"ensure_parents,omitempty"`
}

type User struct {
	Name     string   `json:"name"`
	SSHKey   string   `json:"ssh_key,omitempty"`
	Password string   `json:"password,omitempty"`
	Groups   []string `json:"groups,omitempty"`
}

type Group struct {
	Name string `json:"name"`
	Gid  *int   `json:"gid,omitempty"`
}

type Timezone struct {
	Timezone   string   `json:"timezone,omitempty"`
	NtpServers []string `json:"ntpservers,omitempty"`
}

type Locale struct {
	Languages []string `json:"languages,omitempty"`
	Keyboard  string   `json:"keyboard,omitempty"`
}

type Firewall struct {
	Ports    []string          `json:"ports,omitempty"`
	Services *FirewallServices `json:"services,omitempty"`
}

type FirewallServices struct {
	Enabled  []string `json:"enabled,omitempty"`
	Disabled []string `json:"disabled,omitempty"`
}

type FIPS struct {
	Enabled bool `json:"enabled"`
}

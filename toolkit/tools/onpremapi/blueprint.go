// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package onpremapi

import (
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
)

// Blueprint is an osbuild-composer blueprint as written by the on-premises image builder tools.
// It is read from TOML or JSON.
type Blueprint struct {
	Name           string          `json:"name" toml:"name"`
	Description    string          `json:"description,omitempty" toml:"description,omitempty"`
	Version        string          `json:"version,omitempty" toml:"version,omitempty"`
	Packages       []Package       `json:"packages,omitempty" toml:"packages,omitempty"`
	Modules        []Package       `json:"modules,omitempty" toml:"modules,omitempty"`
	EnabledModules []EnabledModule `json:"enabled_modules,omitempty" toml:"enabled_modules,omitempty"`
	Groups         []Group         `json:"groups,omitempty" toml:"groups,omitempty"`
	Containers     []Container     `json:"containers,omitempty" toml:"containers,omitempty"`
	Customizations *Customizations `json:"customizations,omitempty" toml:"customizations,omitempty"`
	Distro         string          `json:"distro,omitempty" toml:"distro,omitempty"`

	// Distribution is accepted for files that mix the hosted key into an on-prem blueprint.
	Distribution string `json:"distribution,omitempty" toml:"distribution,omitempty"`

	ImageRequests []blueprintapi.ImageRequest `json:"image_requests,omitempty" toml:"image_requests,omitempty"`
}

type Package struct {
	Name    string `json:"name" toml:"name"`
	Version string `json:"version,omitempty" toml:"version,omitempty"`
}

type EnabledModule struct {
	Name   string `json:"name" toml:"name"`
	Stream string `json:"stream,omitempty" toml:"stream,omitempty"`
}

type Group struct {
	Name string `json:"name" toml:"name"`
}

type Container struct {
	Source string `json:"source" toml:"source"`
	Name   string `json:"name,omitempty" toml:"name,omitempty"`

	TLSVerify    *bool `json:"tls-verify,omitempty" toml:"tls-verify,omitempty"`
	LocalStorage bool  `json:"local-storage,omitempty" toml:"local-storage,omitempty"`
}

// PackageNames returns the package, module and group names of the blueprint in the form
// the hosted service expects. Groups are prefixed with '@'.
func (b *Blueprint) PackageNames() []string {
	names := []string{}
	for _, pkg := range b.Packages {
		names = append(names, pkg.Name)
	}
	for _, module := range b.Modules {
		names = append(names, module.Name)
	}
	for _, group := range b.Groups {
		names = append(names, "@"+group.Name)
	}
	return names
}

// DistributionName returns the distro key, or the hosted distribution key when distro is unset.
func (b *Blueprint) DistributionName() string {
	if b.Distro != "" {
		return b.Distro
	}
	return b.Distribution
}

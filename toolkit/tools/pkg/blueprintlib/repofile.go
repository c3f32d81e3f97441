// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"gopkg.in/ini.v1"
)

// WriteRepoFile writes the custom repositories as a yum/dnf .repo file.
func WriteRepoFile(w io.Writer, repositories []blueprintapi.CustomRepository) error {
	repoFile := ini.Empty()

	for i, repository := range repositories {
		err := appendRepoSection(repoFile, i, repository)
		if err != nil {
			return fmt.Errorf("%w:\n%w", ErrRepoFileWrite, err)
		}
	}

	_, err := repoFile.WriteTo(w)
	if err != nil {
		return fmt.Errorf("%w:\n%w", ErrRepoFileWrite, err)
	}

	return nil
}

func appendRepoSection(repoFile *ini.File, index int, repository blueprintapi.CustomRepository) error {
	sectionName := repoSectionName(index, repository)
	if repoFile.HasSection(sectionName) {
		return fmt.Errorf("duplicate repository id (%s)", sectionName)
	}

	section, err := repoFile.NewSection(sectionName)
	if err != nil {
		return err
	}

	keys := []struct {
		name  string
		value string
	}{
		{"name", repository.Name},
		{"baseurl", strings.Join(repository.Baseurl, " ")},
		{"mirrorlist", repository.Mirrorlist},
		{"metalink", repository.Metalink},
		{"gpgkey", strings.Join(repository.Gpgkey, " ")},
		{"gpgcheck", formatRepoBool(repository.CheckGpg)},
		{"repo_gpgcheck", formatRepoBool(repository.CheckRepoGpg)},
		{"enabled", formatRepoBool(repository.Enabled)},
		{"sslverify", formatRepoBool(repository.SslVerify)},
		{"module_hotfixes", formatRepoBool(repository.ModuleHotfixes)},
	}
	if repository.Priority != nil {
		keys = append(keys, struct {
			name  string
			value string
		}{"priority", strconv.Itoa(*repository.Priority)})
	}

	for _, key := range keys {
		if key.value == "" {
			continue
		}

		_, err = section.NewKey(key.name, key.value)
		if err != nil {
			return err
		}
	}

	return nil
}

func repoSectionName(index int, repository blueprintapi.CustomRepository) string {
	switch {
	case repository.ID != "":
		return repository.ID
	case repository.Name != "":
		return strings.ReplaceAll(repository.Name, " ", "-")
	default:
		return fmt.Sprintf("custom-repo-%d", index)
	}
}

func formatRepoBool(value *bool) string {
	switch {
	case value == nil:
		return ""
	case *value:
		return "1"
	default:
		return "0"
	}
}

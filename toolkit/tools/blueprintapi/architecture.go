// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

import (
	"fmt"
)

type Architecture string

const (
	ArchitectureX86_64  Architecture = "x86_64"
	ArchitectureAarch64 Architecture = "aarch64"

	DefaultArchitecture = ArchitectureX86_64
)

func (a Architecture) IsValid() error {
	switch a {
	case ArchitectureX86_64, ArchitectureAarch64:
		return nil

	default:
		return fmt.Errorf("invalid architecture value (%s)", a)
	}
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

import (
	"fmt"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/sliceutils"
)

type Distribution string

const (
	DistributionRhel8   Distribution = "rhel-8"
	DistributionRhel84  Distribution = "rhel-84"
	DistributionRhel85  Distribution = "rhel-85"
	DistributionRhel86  Distribution = "rhel-86"
	DistributionRhel87  Distribution = "rhel-87"
	DistributionRhel88  Distribution = "rhel-88"
	DistributionRhel89  Distribution = "rhel-89"
	DistributionRhel810 Distribution = "rhel-8.10"
	DistributionRhel9   Distribution = "rhel-9"
	DistributionRhel90  Distribution = "rhel-90"
	DistributionRhel91  Distribution = "rhel-91"
	DistributionRhel92  Distribution = "rhel-92"
	DistributionRhel93  Distribution = "rhel-93"
	DistributionRhel94  Distribution = "rhel-94"
	DistributionCentos8 Distribution = "centos-8"
	DistributionCentos9 Distribution = "centos-9"

	DefaultDistribution = DistributionRhel9
)

func SupportedDistributions() []Distribution {
	return []Distribution{
		DistributionRhel8, DistributionRhel84, DistributionRhel85, DistributionRhel86, DistributionRhel87,
		DistributionRhel88, DistributionRhel89, DistributionRhel810,
		DistributionRhel9, DistributionRhel90, DistributionRhel91, DistributionRhel92, DistributionRhel93,
		DistributionRhel94,
		DistributionCentos8, DistributionCentos9,
	}
}

func (d Distribution) IsValid() error {
	if !sliceutils.ContainsValue(SupportedDistributions(), d) {
		return fmt.Errorf("invalid distribution value (%s)", d)
	}
	return nil
}

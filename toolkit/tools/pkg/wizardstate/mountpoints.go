// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/sliceutils"
)

// GetDuplicateMountPoints returns every repeated occurrence of a mount point, in order.
// A mount point used k times appears k-1 times in the result.
func GetDuplicateMountPoints(partitions []Partition) []string {
	duplicates := []string{}
	seen := make(map[string]struct{}, len(partitions))

	for _, partition := range partitions {
		if _, found := seen[partition.Mountpoint]; found {
			duplicates = append(duplicates, partition.Mountpoint)
			continue
		}
		seen[partition.Mountpoint] = struct{}{}
	}

	return duplicates
}

// HasMountPointConflict reports whether a partition row should be flagged as a duplicate.
func HasMountPointConflict(partition Partition, duplicates []string) bool {
	return sliceutils.ContainsValue(duplicates, partition.Mountpoint)
}

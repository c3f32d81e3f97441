// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

var (
	// onPremTopLevelKeys only appear at the top of an osbuild-composer blueprint.
	onPremTopLevelKeys = []string{"packages", "modules", "groups", "enabled_modules", "containers", "distro"}

	// onPremCustomizationKeys only appear in the customizations of an osbuild-composer blueprint.
	onPremCustomizationKeys = []string{"user", "sshkey", "group", "repositories"}
)

// IsHostedExportShape reports whether a parsed JSON document looks like a blueprint exported by
// the hosted service: it has a 'customizations' object and no key that only on-premises
// blueprints use.
func IsHostedExportShape(document map[string]any) bool {
	customizations, ok := document["customizations"].(map[string]any)
	if !ok {
		return false
	}

	return !hasAnyKey(document, onPremTopLevelKeys) && !hasAnyKey(customizations, onPremCustomizationKeys)
}

// IsOnPremShape reports whether a parsed JSON document looks like an osbuild-composer blueprint.
func IsOnPremShape(document map[string]any) bool {
	if hasAnyKey(document, onPremTopLevelKeys) {
		return true
	}

	_, ok := document["customizations"].(map[string]any)
	return ok
}

func hasAnyKey(document map[string]any, keys []string) bool {
	for _, key := range keys {
		if _, found := document[key]; found {
			return true
		}
	}
	return false
}

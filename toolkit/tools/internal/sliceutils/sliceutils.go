// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package sliceutils

// ContainsValue reports whether value is present in inputSlice.
func ContainsValue[K comparable](inputSlice []K, value K) bool {
	for _, item := range inputSlice {
		if item == value {
			return true
		}
	}
	return false
}

// RemoveValue returns a new slice without any occurrence of value.
func RemoveValue[K comparable](inputSlice []K, value K) []K {
	result := make([]K, 0, len(inputSlice))
	for _, item := range inputSlice {
		if item != value {
			result = append(result, item)
		}
	}
	return result
}

// Unique returns the values of inputSlice with later repeats dropped, keeping order.
func Unique[K comparable](inputSlice []K) []K {
	seen := make(map[K]struct{}, len(inputSlice))
	result := make([]K, 0, len(inputSlice))
	for _, item := range inputSlice {
		if _, found := seen[item]; found {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

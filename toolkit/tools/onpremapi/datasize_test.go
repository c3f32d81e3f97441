// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package onpremapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataSizeNumber(t *testing.T) {
	var size DataSize
	err := json.Unmarshal([]byte("1073741824"), &size)
	assert.NoError(t, err)
	assert.Equal(t, DataSize(1073741824), size)
}

func TestDataSizeStringUnits(t *testing.T) {
	testCases := map[string]DataSize{
		"20 GiB":  20 * 1024 * 1024 * 1024,
		"512 MiB": 512 * 1024 * 1024,
		"1 GB":    1000 * 1000 * 1000,
		"4096":    4096,
	}

	for input, expected := range testCases {
		var size DataSize
		err := parseAndSetDataSize(input, &size)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, size, input)
	}
}

func TestDataSizeInvalidString(t *testing.T) {
	var size DataSize
	err := json.Unmarshal([]byte(`"lots"`), &size)
	assert.ErrorContains(t, err, "minsize (lots) has incorrect format")
}

func TestDataSizeInvalidType(t *testing.T) {
	var size DataSize
	err := json.Unmarshal([]byte(`{}`), &size)
	assert.ErrorContains(t, err, "failed to parse minsize")
}

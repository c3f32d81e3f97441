// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentSourceIsValid(t *testing.T) {
	source := ContentSource{
		Name: "epel",
		URL:  "https://dl.fedoraproject.org/pub/epel/9/Everything/x86_64/",
	}
	assert.NoError(t, source.IsValid())
}

func TestContentSourceIsValidEmptyUrl(t *testing.T) {
	source := ContentSource{Name: "epel"}
	assert.ErrorContains(t, source.IsValid(), "repository url may not be empty")
}

func TestContentSourceIsValidBadUrl(t *testing.T) {
	source := ContentSource{URL: "not a url"}
	assert.ErrorContains(t, source.IsValid(), "invalid repository url (not a url)")
}

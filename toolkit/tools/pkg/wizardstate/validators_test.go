// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"strings"
	"testing"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/ptrutils"
	"github.com/stretchr/testify/assert"
)

func TestIsAwsAccountIdValid(t *testing.T) {
	assert.True(t, IsAwsAccountIdValid(ptrutils.PtrTo("012345678901")))
	assert.False(t, IsAwsAccountIdValid(ptrutils.PtrTo("12345")))
	assert.False(t, IsAwsAccountIdValid(ptrutils.PtrTo("01234567890a")))
	assert.False(t, IsAwsAccountIdValid(ptrutils.PtrTo("0123456789012")))
	assert.False(t, IsAwsAccountIdValid(nil))
}

func TestIsAzureTenantGUIDValid(t *testing.T) {
	assert.True(t, IsAzureTenantGUIDValid("b8f86d22-4371-46ce-95e7-65c415f3b1e2"))
	assert.True(t, IsAzureTenantGUIDValid("B8F86D22-4371-46CE-95E7-65C415F3B1E2"))
	assert.False(t, IsAzureTenantGUIDValid("b8f86d22-4371-46ce-95e7-65c415f3b1e"))
	assert.False(t, IsAzureTenantGUIDValid(""))
}

func TestIsAzureSubscriptionIdValid(t *testing.T) {
	assert.True(t, IsAzureSubscriptionIdValid("60631143-a7dc-4d15-988b-ba83f3c99711"))
	assert.False(t, IsAzureSubscriptionIdValid("60631143-a7dc-6d15-988b-ba83f3c99711"))
}

func TestIsAzureResourceGroupValid(t *testing.T) {
	assert.True(t, IsAzureResourceGroupValid("myResourceGroup1"))
	assert.True(t, IsAzureResourceGroupValid("my.resource-group_(1)"))
	assert.False(t, IsAzureResourceGroupValid("ends.with.period."))
	assert.False(t, IsAzureResourceGroupValid("a"))
	assert.False(t, IsAzureResourceGroupValid("has space"))
}

func TestIsGcpEmailValid(t *testing.T) {
	assert.True(t, IsGcpEmailValid(ptrutils.PtrTo("test@email.com")))
	assert.False(t, IsGcpEmailValid(ptrutils.PtrTo("Test@email.com")))
	assert.False(t, IsGcpEmailValid(ptrutils.PtrTo("test@email")))
	assert.False(t, IsGcpEmailValid(ptrutils.PtrTo(strings.Repeat("a", 250)+"@b.cd")))
	assert.False(t, IsGcpEmailValid(nil))
}

func TestIsBlueprintNameValid(t *testing.T) {
	assert.True(t, IsBlueprintNameValid("ab"))
	assert.True(t, IsBlueprintNameValid("--a--"))
	assert.False(t, IsBlueprintNameValid("a"))
	assert.False(t, IsBlueprintNameValid("--"))
	assert.False(t, IsBlueprintNameValid(strings.Repeat("a", 101)))
	assert.True(t, IsBlueprintNameValid(strings.Repeat("a", 100)))
}

func TestIsBlueprintNameValidCountsUtf16(t *testing.T) {
	// Each emoji is two UTF-16 code units.
	assert.True(t, IsBlueprintNameValid("a"+strings.Repeat("\U0001F600", 49)+"b"))
	assert.False(t, IsBlueprintNameValid("a"+strings.Repeat("\U0001F600", 50)))
}

func TestIsBlueprintDescriptionValid(t *testing.T) {
	assert.True(t, IsBlueprintDescriptionValid(""))
	assert.True(t, IsBlueprintDescriptionValid(strings.Repeat("d", 250)))
	assert.False(t, IsBlueprintDescriptionValid(strings.Repeat("d", 251)))
}

func TestIsFileSystemConfigValid(t *testing.T) {
	assert.True(t, IsFileSystemConfigValid(nil))
	assert.True(t, IsFileSystemConfigValid([]Partition{{Mountpoint: "/"}, {Mountpoint: "/home"}}))
	assert.False(t, IsFileSystemConfigValid([]Partition{{Mountpoint: "/"}, {Mountpoint: "/"}}))
}

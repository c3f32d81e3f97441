// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"regexp"
	"unicode/utf16"
)

var (
	awsAccountIdRegex       = regexp.MustCompile(`^\d+$`)
	azureGUIDRegex          = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	azureResourceGroupRegex = regexp.MustCompile(`^[-\w._()]+[-\w_()]$`)
	gcpEmailRegex           = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,12}$`)
	wordRegex               = regexp.MustCompile(`\w+`)
)

const (
	awsAccountIdLength         = 12
	gcpEmailMaxLength          = 253
	blueprintNameMinLength     = 2
	blueprintNameMaxLength     = 100
	blueprintDescriptionLength = 250
)

func IsAwsAccountIdValid(awsAccountId *string) bool {
	return awsAccountId != nil &&
		awsAccountIdRegex.MatchString(*awsAccountId) &&
		textLength(*awsAccountId) == awsAccountIdLength
}

func IsAzureTenantGUIDValid(azureTenantGUID string) bool {
	return azureGUIDRegex.MatchString(azureTenantGUID)
}

func IsAzureSubscriptionIdValid(azureSubscriptionId string) bool {
	return azureGUIDRegex.MatchString(azureSubscriptionId)
}

func IsAzureResourceGroupValid(azureResourceGroup string) bool {
	return azureResourceGroupRegex.MatchString(azureResourceGroup)
}

func IsGcpEmailValid(gcpShareWithAccount *string) bool {
	return gcpShareWithAccount != nil &&
		gcpEmailRegex.MatchString(*gcpShareWithAccount) &&
		textLength(*gcpShareWithAccount) <= gcpEmailMaxLength
}

// IsBlueprintNameValid accepts any name of 2 to 100 characters that contains at least one word
// character somewhere.
func IsBlueprintNameValid(blueprintName string) bool {
	length := textLength(blueprintName)
	return length >= blueprintNameMinLength &&
		length <= blueprintNameMaxLength &&
		wordRegex.MatchString(blueprintName)
}

func IsBlueprintDescriptionValid(blueprintDescription string) bool {
	return textLength(blueprintDescription) <= blueprintDescriptionLength
}

func IsFileSystemConfigValid(partitions []Partition) bool {
	return len(GetDuplicateMountPoints(partitions)) == 0
}

// textLength counts UTF-16 code units, which is how the web front-end measures text fields.
func textLength(value string) int {
	length := 0
	for _, r := range value {
		length += utf16.RuneLen(r)
	}
	return length
}

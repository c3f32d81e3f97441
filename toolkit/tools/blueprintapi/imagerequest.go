// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

type UploadType string

const (
	UploadTypeAws              UploadType = "aws"
	UploadTypeAwsS3            UploadType = "aws.s3"
	UploadTypeGcp              UploadType = "gcp"
	UploadTypeAzure            UploadType = "azure"
	UploadTypeOciObjectStorage UploadType = "oci.objectstorage"
)

// ImageRequest describes one image to build from a blueprint.
type ImageRequest struct {
	Architecture  Architecture  `json:"architecture"`
	ImageType     ImageType     `json:"image_type"`
	UploadRequest UploadRequest `json:"upload_request"`
}

// UploadRequest says where the built image goes.
type UploadRequest struct {
	Type    UploadType           `json:"type"`
	Options UploadRequestOptions `json:"options"`
}

// UploadRequestOptions is the union of the options of every upload type.
type UploadRequestOptions struct {
	// aws and gcp
	ShareWithAccounts []string `json:"share_with_accounts,omitempty"`
	// aws
	ShareWithSources  []string `json:"share_with_sources,omitempty"`
	// azure
	TenantID          string   `json:"tenant_id,omitempty"`
	SubscriptionID    string   `json:"subscription_id,omitempty"`
	ResourceGroup     string   `json:"resource_group,omitempty"`
	SourceID          string   `json:"source_id,omitempty"`
	ImageName         string   `json:"image_name,omitempty"`
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

import (
	"fmt"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/sliceutils"
)

type ImageType string

const (
	ImageTypeAws               ImageType = "aws"
	ImageTypeAmi               ImageType = "ami"
	ImageTypeAzure             ImageType = "azure"
	ImageTypeVhd               ImageType = "vhd"
	ImageTypeGcp               ImageType = "gcp"
	ImageTypeGuestImage        ImageType = "guest-image"
	ImageTypeImageInstaller    ImageType = "image-installer"
	ImageTypeVsphere           ImageType = "vsphere"
	ImageTypeVsphereOva        ImageType = "vsphere-ova"
	ImageTypeWsl               ImageType = "wsl"
	ImageTypeOci               ImageType = "oci"
	ImageTypeEdgeCommit        ImageType = "edge-commit"
	ImageTypeEdgeInstaller     ImageType = "edge-installer"
	ImageTypeRhelEdgeCommit    ImageType = "rhel-edge-commit"
	ImageTypeRhelEdgeInstaller ImageType = "rhel-edge-installer"
)

func SupportedImageTypes() []ImageType {
	return []ImageType{
		ImageTypeAws, ImageTypeAmi, ImageTypeAzure, ImageTypeVhd, ImageTypeGcp, ImageTypeGuestImage,
		ImageTypeImageInstaller, ImageTypeVsphere, ImageTypeVsphereOva, ImageTypeWsl, ImageTypeOci,
		ImageTypeEdgeCommit, ImageTypeEdgeInstaller, ImageTypeRhelEdgeCommit, ImageTypeRhelEdgeInstaller,
	}
}

func (t ImageType) IsValid() error {
	if !sliceutils.ContainsValue(SupportedImageTypes(), t) {
		return fmt.Errorf("invalid image type value (%s)", t)
	}
	return nil
}

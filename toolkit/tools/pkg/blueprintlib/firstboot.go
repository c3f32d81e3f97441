// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

import (
	"encoding/base64"
	"fmt"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
)

// firstBootScript returns the first boot script carried in the blueprint files.
func firstBootScript(files []blueprintapi.File) (string, bool, error) {
	for _, file := range files {
		if file.Path != blueprintapi.FirstBootScriptPath {
			continue
		}

		if file.DataEncoding != blueprintapi.DataEncodingBase64 {
			return file.Data, true, nil
		}

		script, err := base64.StdEncoding.DecodeString(file.Data)
		if err != nil {
			return "", false, fmt.Errorf("%w (%s):\n%w", ErrFirstBootDecode, file.Path, err)
		}
		return string(script), true, nil
	}

	return "", false, nil
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

const (
	UnitKiB = 1024
	UnitMiB = 1024 * 1024
	UnitGiB = 1024 * 1024 * 1024
)

const (
	// FirstBootScriptPath is where the wizard stores the user's first boot script.
	FirstBootScriptPath = "/usr/local/sbin/custom-first-boot"
	// FirstBootServicePath is the unit that runs FirstBootScriptPath on first boot.
	FirstBootServicePath = "/etc/systemd/system/custom-first-boot.service"
	FirstBootServiceName = "custom-first-boot"

	DataEncodingBase64 = "base64"
)

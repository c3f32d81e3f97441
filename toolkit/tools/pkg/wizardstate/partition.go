// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
)

type Unit string

const (
	UnitNone Unit = ""
	UnitKiB  Unit = "KiB"
	UnitMiB  Unit = "MiB"
	UnitGiB  Unit = "GiB"
)

// Partition is one row of the manual file system configuration.
// MinSize is a decimal string of bytes.
type Partition struct {
	ID         string `json:"id"`
	Mountpoint string `json:"mountpoint"`
	MinSize    string `json:"min_size"`
	Unit       Unit   `json:"unit,omitempty"`
}

func (u Unit) IsValid() error {
	switch u {
	case UnitNone, UnitKiB, UnitMiB, UnitGiB:
		return nil

	default:
		return fmt.Errorf("invalid unit value (%s)", u)
	}
}

// ConversionFactor returns the number of bytes in one unit. An unset unit has factor 1.
func (u Unit) ConversionFactor() uint64 {
	switch u {
	case UnitKiB:
		return blueprintapi.UnitKiB
	case UnitMiB:
		return blueprintapi.UnitMiB
	case UnitGiB:
		return blueprintapi.UnitGiB
	default:
		return 1
	}
}

// NewPartition returns a partition with a fresh id.
func NewPartition(mountpoint string, minSize string, unit Unit) Partition {
	return Partition{
		ID:         uuid.NewString(),
		Mountpoint: mountpoint,
		MinSize:    minSize,
		Unit:       unit,
	}
}

// DefaultRootPartition is the partition a manual layout starts with.
func DefaultRootPartition() Partition {
	return NewPartition("/", strconv.FormatUint(10*blueprintapi.UnitGiB, 10), UnitGiB)
}

// ConvertToDisplayUnits returns the value shown in the size field of a partition row:
// the stored size multiplied by the unit factor.
func ConvertToDisplayUnits(minSize string, unit Unit) (string, error) {
	value, err := parseLeadingInteger(minSize)
	if err != nil {
		return "", err
	}

	return formatSize(value * float64(unit.ConversionFactor())), nil
}

// ConvertToBytes returns the stored size for a value typed into the size field of a partition
// row: the typed value divided by the unit factor. It is the inverse of ConvertToDisplayUnits.
func ConvertToBytes(displayed string, unit Unit) (string, error) {
	value, err := parseLeadingInteger(displayed)
	if err != nil {
		return "", err
	}

	return formatSize(value / float64(unit.ConversionFactor())), nil
}

// parseLeadingInteger reads the integer at the start of value, ignoring leading white space
// and any trailing text.
func parseLeadingInteger(value string) (float64, error) {
	trimmed := strings.TrimLeft(value, " \t\n\r")

	end := 0
	if end < len(trimmed) && (trimmed[end] == '-' || trimmed[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, fmt.Errorf("size (%s) is not a number", value)
	}

	number, err := strconv.ParseFloat(trimmed[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("size (%s) is not a number:\n%w", value, err)
	}

	return number, nil
}

// formatSize writes the shortest decimal form of value. Values below 1e-6 or from 1e21 up use
// the exponent form "9.5367431640625e-7" / "1e+21", as the size field shows them.
func formatSize(value float64) string {
	if value == 0 {
		return "0"
	}

	magnitude := math.Abs(value)
	if magnitude >= 1e-6 && magnitude < 1e21 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(value, 'e', -1, 64), "e")
	exponentDigits := strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + exponent[:1] + exponentDigits
}

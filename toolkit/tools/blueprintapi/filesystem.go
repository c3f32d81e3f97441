// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintapi

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
)

// Filesystem is one mount point of a manual partitioning layout.
type Filesystem struct {
	Mountpoint string   `json:"mountpoint"`
	MinSize    ByteSize `json:"min_size"`
}

// ByteSize is a size in bytes.
// It is written as a JSON number and read from either a number or a decimal string.
type ByteSize uint64

func (s ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(s))
}

func (s *ByteSize) UnmarshalJSON(data []byte) error {
	var number json.Number
	err := json.Unmarshal(data, &number)
	if err != nil {
		var stringValue string
		stringErr := json.Unmarshal(data, &stringValue)
		if stringErr != nil {
			return fmt.Errorf("failed to parse size:\n%w", err)
		}
		number = json.Number(stringValue)
	}

	return parseAndSetByteSize(number.String(), s)
}

func (ByteSize) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "integer", Minimum: json.Number("0")},
			{Type: "string", Pattern: `^\d+$`},
		},
	}
}

func (s ByteSize) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

func parseAndSetByteSize(stringValue string, s *ByteSize) error {
	value, err := strconv.ParseUint(stringValue, 10, 64)
	if err != nil {
		// Large sizes exported by JavaScript clients may use exponent notation.
		floatValue, floatErr := strconv.ParseFloat(stringValue, 64)
		if floatErr != nil || floatValue < 0 || floatValue != float64(uint64(floatValue)) {
			return fmt.Errorf("size (%s) must be a non-negative integer number of bytes", stringValue)
		}
		value = uint64(floatValue)
	}

	*s = ByteSize(value)
	return nil
}

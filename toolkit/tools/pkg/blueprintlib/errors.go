// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package blueprintlib

type BlueprintError struct {
	name    string
	message string
}

func NewBlueprintError(name string, message string) *BlueprintError {
	return &BlueprintError{
		name:    name,
		message: message,
	}
}

func (e *BlueprintError) Name() string {
	return e.name
}

func (e *BlueprintError) Error() string {
	return e.message
}

var (
	ErrNotCompatible      = NewBlueprintError("Import:NotCompatible", "Not compatible with the blueprints format.")
	ErrUnknownFileType    = NewBlueprintError("Import:UnknownFileType", "blueprint file must have a .json or .toml extension")
	ErrUnknownShape       = NewBlueprintError("Import:UnknownShape", "JSON document is neither a hosted nor an on-premises blueprint")
	ErrFileTooLarge       = NewBlueprintError("Import:FileTooLarge", "blueprint file is larger than 25 KB")
	ErrInvalidImageOutput = NewBlueprintError("Import:InvalidImageOutput", "blueprint image output settings are not supported")
	ErrNoContent          = NewBlueprintError("Import:NoContent", "no blueprint file content was loaded")
	ErrRepoFileWrite      = NewBlueprintError("RepoFile:Write", "failed to write repository file")
	ErrFirstBootDecode    = NewBlueprintError("FirstBoot:Decode", "failed to decode first boot script")
)

// GetAllBlueprintErrors returns the named errors found in the error tree of err, outermost first.
func GetAllBlueprintErrors(err error) []*BlueprintError {
	var namedErrors []*BlueprintError

	var walk func(err error)
	walk = func(err error) {
		if err == nil {
			return
		}

		if namedError, ok := err.(*BlueprintError); ok {
			namedErrors = append(namedErrors, namedError)
		}

		switch wrapped := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range wrapped.Unwrap() {
				walk(inner)
			}

		case interface{ Unwrap() error }:
			walk(wrapped.Unwrap())
		}
	}
	walk(err)

	return namedErrors
}

package content

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// schemaFor maps a content file name to its embedded schema.
var schemaFor = map[string]string{
	RoomsFile: "schema/rooms.schema.json",
	DoorsFile: "schema/doors.schema.json",
	ItemsFile: "schema/items.schema.json",
}

// ValidationError aggregates every schema violation found in one file.
type ValidationError struct {
	File       string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d schema violation(s):\n  - %s",
		e.File, len(e.Violations), strings.Join(e.Violations, "\n  - "))
}

// validateSchema checks a raw content document against the schema for its
// file name.
func validateSchema(filename string, document []byte) error {
	schemaPath, ok := schemaFor[filename]
	if !ok {
		return fmt.Errorf("no schema registered for %s", filename)
	}

	schemaBytes, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read embedded schema %s: %w", schemaPath, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("validate %s: %w", filename, err)
	}

	if !result.Valid() {
		ve := &ValidationError{File: filename}
		for _, issue := range result.Errors() {
			ve.Violations = append(ve.Violations, issue.String())
		}
		return ve
	}
	return nil
}

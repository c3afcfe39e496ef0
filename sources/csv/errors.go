package csv

import "fmt"

// MissingColumnError reports that a configured column is not present in a
// row. Declaring a column is a strict contract: the addressed key must exist
// in every row, while an empty value in an existing column is legal.
type MissingColumnError struct {
	Column Key
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %s is not present in the row", e.Column)
}

// ValueCoercionError reports that a non-empty cell value could not be
// converted into the column's target type.
type ValueCoercionError struct {
	Column Key
	Value  string
	Target string
}

func (e *ValueCoercionError) Error() string {
	switch e.Target {
	case targetDate, targetDatetime:
		return fmt.Sprintf("provided value %q in column %s has invalid %s format", e.Value, e.Column, e.Target)
	default:
		return fmt.Sprintf("provided value %q in column %s can not be interpreted as %s", e.Value, e.Column, e.Target)
	}
}

// IdentityRequiredError reports that the identity column of a record holds an
// empty value. A record without an identity can not be upserted downstream,
// so the whole run fails rather than producing an anonymous record.
type IdentityRequiredError struct {
	Column Key
}

func (e *IdentityRequiredError) Error() string {
	return fmt.Sprintf("identity column %s holds an empty value", e.Column)
}

// SourceNotFoundError reports that the configured path does not exist. It is
// raised at first iteration, not at configuration time.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source %s does not exist", e.Path)
}

// NotAFileError reports that the configured path exists but is not a regular
// file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("source %s is not a file", e.Path)
}

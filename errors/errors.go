package errors

import "fmt"

// DecodeError indicates a token could not be fully converted into the
// target scalar type. Trailing characters count as a failure; the whole
// token must decode.
type DecodeError struct{ Token, Target string }

func (e DecodeError) Error() string {
	return fmt.Sprintf("could not parse %s from %q", e.Target, e.Token)
}

// ValidationError is raised after a scan phase when a slot reports itself
// invalid. It names the first offending slot by its declared name.
type ValidationError struct{ Name string }

func (e ValidationError) Error() string {
	return fmt.Sprintf("argument %q invalid after parsing", e.Name)
}

// ConfigError indicates the declaration API was misused: conflicting
// required/default settings, or a tag argument declared after a
// positional argument. It is reported at declaration time, not parse time.
type ConfigError struct{ Msg string }

func (e ConfigError) Error() string { return e.Msg }

// MissingValueError indicates Value was read from a slot that has neither
// a parsed value nor a default.
type MissingValueError struct{ Name string }

func (e MissingValueError) Error() string {
	return fmt.Sprintf("argument %q does not have a value", e.Name)
}

// Helper constructors
func NewDecode(token, target string) error { return DecodeError{Token: token, Target: target} }
func NewValidation(name string) error      { return ValidationError{Name: name} }
func NewConfig(msg string) error           { return ConfigError{Msg: msg} }
func NewConfigf(format string, args ...any) error {
	return ConfigError{Msg: fmt.Sprintf(format, args...)}
}
func NewMissingValue(name string) error { return MissingValueError{Name: name} }

package core

import (
	"github.com/sjrdc/pax/display"
	"github.com/sjrdc/pax/errors"
)

// ValueArgument is a tag argument holding at most one decoded value of
// type T. When its tag is matched it consumes exactly the next token.
type ValueArgument[T Scalar] struct {
	argumentBase
	tagPair

	value         *T
	defaultValue  *T
	required      bool
	validator     func(T) bool
	boundVariable *T
}

func (v *ValueArgument[T]) SetDescription(d string) *ValueArgument[T] {
	v.description = d
	return v
}

func (v *ValueArgument[T]) SetAlternateTag(t string) *ValueArgument[T] {
	v.alternate = t
	return v
}

// SetValidator installs a predicate over the decoded value. The validator
// is only consulted when a value or default is present; an absent value on
// a non-required argument is valid regardless.
func (v *ValueArgument[T]) SetValidator(f func(T) bool) *ValueArgument[T] {
	v.validator = f
	return v
}

// SetRequired marks the argument as mandatory. Required and default are
// mutually exclusive for the lifetime of the argument: enabling required
// on an argument that already has a default fails with a ConfigError and
// leaves the argument unchanged.
func (v *ValueArgument[T]) SetRequired(r bool) error {
	if r && v.defaultValue != nil {
		return errors.NewConfigf("argument %q: required arguments cannot have a default value", v.name)
	}
	v.required = r
	return nil
}

// SetDefault installs a fallback value used when no token provides one.
// Defaults are rejected on required arguments, and the default is copied
// to the bound variable while no parsed value shadows it.
func (v *ValueArgument[T]) SetDefault(d T) error {
	if v.required {
		return errors.NewConfigf("argument %q: required arguments cannot have a default value", v.name)
	}
	v.defaultValue = &d
	if v.value == nil && v.boundVariable != nil {
		*v.boundVariable = d
	}
	return nil
}

func (v *ValueArgument[T]) IsRequired() bool { return v.required }

// Bind keeps target synchronized with the argument. Binding copies the
// current value (or default) into target immediately when one exists.
func (v *ValueArgument[T]) Bind(target *T) *ValueArgument[T] {
	v.boundVariable = target
	if target != nil {
		if cur, ok := v.effective(); ok {
			*target = cur
		}
	}
	return v
}

// Value returns the parsed value, falling back to the default. Reading an
// argument that has neither fails with a MissingValueError.
func (v *ValueArgument[T]) Value() (T, error) {
	if cur, ok := v.effective(); ok {
		return cur, nil
	}
	var zero T
	return zero, errors.NewMissingValue(v.name)
}

// HasValue reports whether Value would succeed.
func (v *ValueArgument[T]) HasValue() bool {
	_, ok := v.effective()
	return ok
}

func (v *ValueArgument[T]) effective() (T, bool) {
	if v.value != nil {
		return *v.value, true
	}
	if v.defaultValue != nil {
		return *v.defaultValue, true
	}
	var zero T
	return zero, false
}

func (v *ValueArgument[T]) parseStep(tokens []string, pos int) (int, bool, error) {
	if !v.matches(tokens[pos]) || pos+1 >= len(tokens) {
		return pos, false, nil
	}
	t, err := decodeScalar[T](tokens[pos+1])
	if err != nil {
		return pos, false, err
	}
	v.value = &t
	if v.boundVariable != nil {
		*v.boundVariable = t
	}
	return pos + 2, true, nil
}

func (v *ValueArgument[T]) isValid() bool {
	if cur, ok := v.effective(); ok {
		return v.validator == nil || v.validator(cur)
	}
	return !v.required
}

func (v *ValueArgument[T]) reset() {}

func (v *ValueArgument[T]) helpEntry() display.Option {
	entry := display.Option{
		Tag:         v.tag,
		Alternate:   v.alternate,
		Required:    v.required,
		Description: v.description,
	}
	if v.defaultValue != nil {
		entry.Default = encodeScalar(*v.defaultValue)
	}
	return entry
}

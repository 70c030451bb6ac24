package core

import (
	"github.com/sjrdc/pax/display"
	"github.com/sjrdc/pax/errors"
)

// PositionalArgument holds exactly one decoded value matched purely by
// position, in declaration order. A missing positional argument is always
// an error; there is no "valid if absent" exemption.
type PositionalArgument[T Scalar] struct {
	argumentBase

	value         *T
	validator     func(T) bool
	boundVariable *T
}

func (p *PositionalArgument[T]) SetDescription(d string) *PositionalArgument[T] {
	p.description = d
	return p
}

// SetValidator installs a predicate over the decoded value.
func (p *PositionalArgument[T]) SetValidator(f func(T) bool) *PositionalArgument[T] {
	p.validator = f
	return p
}

// Bind keeps target synchronized with the argument. Binding copies the
// current value into target immediately when one exists.
func (p *PositionalArgument[T]) Bind(target *T) *PositionalArgument[T] {
	p.boundVariable = target
	if target != nil && p.value != nil {
		*target = *p.value
	}
	return p
}

// Value returns the parsed value, or a MissingValueError before any token
// has been claimed.
func (p *PositionalArgument[T]) Value() (T, error) {
	if p.value != nil {
		return *p.value, nil
	}
	var zero T
	return zero, errors.NewMissingValue(p.name)
}

func (p *PositionalArgument[T]) HasValue() bool { return p.value != nil }

func (p *PositionalArgument[T]) parseValue(token string) error {
	t, err := decodeScalar[T](token)
	if err != nil {
		return err
	}
	p.value = &t
	if p.boundVariable != nil {
		*p.boundVariable = t
	}
	return nil
}

func (p *PositionalArgument[T]) isValid() bool {
	return p.value != nil && (p.validator == nil || p.validator(*p.value))
}

func (p *PositionalArgument[T]) helpEntry() display.Positional {
	return display.Positional{
		Name:        p.name,
		Description: p.description,
	}
}

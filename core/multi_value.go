package core

import (
	"github.com/sjrdc/pax/display"
)

// MultiValueArgument is a tag argument holding an ordered list of decoded
// values. When its tag is matched it consumes every subsequent token up to
// the next tag-like token, the separator, or the end of input.
type MultiValueArgument[T Scalar] struct {
	argumentBase
	tagPair

	values        []T
	required      bool
	validator     func([]T) bool
	boundVariable *[]T
}

func (m *MultiValueArgument[T]) SetDescription(d string) *MultiValueArgument[T] {
	m.description = d
	return m
}

func (m *MultiValueArgument[T]) SetAlternateTag(t string) *MultiValueArgument[T] {
	m.alternate = t
	return m
}

// SetValidator installs a predicate over the whole value list. The
// validator is only consulted when the argument is required.
func (m *MultiValueArgument[T]) SetValidator(f func([]T) bool) *MultiValueArgument[T] {
	m.validator = f
	return m
}

// SetRequired marks the argument as mandatory; a required multi-value
// argument must end the parse with a non-empty list.
func (m *MultiValueArgument[T]) SetRequired(r bool) *MultiValueArgument[T] {
	m.required = r
	return m
}

func (m *MultiValueArgument[T]) IsRequired() bool { return m.required }

// Bind keeps target synchronized with the argument. Binding copies the
// current list into target immediately.
func (m *MultiValueArgument[T]) Bind(target *[]T) *MultiValueArgument[T] {
	m.boundVariable = target
	if target != nil {
		*target = m.values
	}
	return m
}

func (m *MultiValueArgument[T]) Value() []T { return m.values }

func (m *MultiValueArgument[T]) parseStep(tokens []string, pos int) (int, bool, error) {
	if !m.matches(tokens[pos]) {
		return pos, false, nil
	}
	// Decode the whole run before committing so a failure mid-list leaves
	// the argument untouched.
	var decoded []T
	i := pos + 1
	for ; i < len(tokens) && !isTagLike(tokens[i]) && !isSeparator(tokens[i]); i++ {
		t, err := decodeScalar[T](tokens[i])
		if err != nil {
			return pos, false, err
		}
		decoded = append(decoded, t)
	}
	m.values = append(m.values, decoded...)
	if m.boundVariable != nil {
		*m.boundVariable = m.values
	}
	return i, true, nil
}

func (m *MultiValueArgument[T]) isValid() bool {
	if !m.required {
		return true
	}
	if len(m.values) == 0 {
		return false
	}
	return m.validator == nil || m.validator(m.values)
}

// The list is rebuilt from scratch on every parse; a bound target follows
// the cleared state.
func (m *MultiValueArgument[T]) reset() {
	m.values = nil
	if m.boundVariable != nil {
		*m.boundVariable = m.values
	}
}

func (m *MultiValueArgument[T]) helpEntry() display.Option {
	return display.Option{
		Tag:         m.tag,
		Alternate:   m.alternate,
		Required:    m.required,
		Description: m.description,
	}
}

package core

import "github.com/sjrdc/pax/display"

// FlagArgument is a boolean tag argument. It defaults to false, becomes
// true when its tag token is seen, and consumes no value tokens.
type FlagArgument struct {
	argumentBase
	tagPair

	value     bool
	boundFlag *bool
}

func (f *FlagArgument) SetDescription(d string) *FlagArgument {
	f.description = d
	return f
}

func (f *FlagArgument) SetAlternateTag(t string) *FlagArgument {
	f.alternate = t
	return f
}

// Bind keeps target synchronized with the flag. Binding copies the
// current value into target immediately.
func (f *FlagArgument) Bind(target *bool) *FlagArgument {
	f.boundFlag = target
	if target != nil {
		*target = f.value
	}
	return f
}

func (f *FlagArgument) Value() bool { return f.value }

func (f *FlagArgument) parseStep(tokens []string, pos int) (int, bool, error) {
	if !f.matches(tokens[pos]) {
		return pos, false, nil
	}
	f.value = true
	if f.boundFlag != nil {
		*f.boundFlag = true
	}
	return pos + 1, true, nil
}

// A flag has no required form; it is always valid.
func (f *FlagArgument) isValid() bool { return true }

func (f *FlagArgument) reset() {}

func (f *FlagArgument) helpEntry() display.Option {
	return display.Option{
		Tag:         f.tag,
		Alternate:   f.alternate,
		Description: f.description,
	}
}

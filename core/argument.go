package core

import "github.com/sjrdc/pax/display"

// argument is the contract the registry uses to drive its tag-argument
// slots (flags, values, multi values) through a scan.
type argument interface {
	Name() string
	Description() string

	// parseStep offers the token at pos to the slot. When the slot matches,
	// it consumes the token (and, for value-bearing slots, subsequent
	// tokens) and returns the index just past everything consumed.
	parseStep(tokens []string, pos int) (next int, matched bool, err error)
	isValid() bool
	reset()
	helpEntry() display.Option
}

// positional is the contract for positional slots; they match purely by
// position and always consume exactly one token.
type positional interface {
	Name() string
	Description() string
	parseValue(token string) error
	isValid() bool
	helpEntry() display.Positional
}

// argumentBase carries the name and description shared by every slot kind.
type argumentBase struct {
	name        string
	description string
}

func (a *argumentBase) Name() string        { return a.name }
func (a *argumentBase) Description() string { return a.description }

// tagPair holds the identifiers a tag argument matches on. A token matches
// iff it equals the tag or the alternate tag exactly.
type tagPair struct {
	tag       string
	alternate string
}

func (t *tagPair) Tag() string          { return t.tag }
func (t *tagPair) AlternateTag() string { return t.alternate }

func (t *tagPair) matches(s string) bool {
	return (t.tag != "" && t.tag == s) || (t.alternate != "" && t.alternate == s)
}

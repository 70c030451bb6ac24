package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
	"github.com/google/go-cmp/cmp"

	paxerr "github.com/sjrdc/pax/errors"
)

func TestParse_FlagAndValueAndPositionalWithSeparator(t *testing.T) {
	cl := New("prog")
	i, err := AddValue[int](cl, "input", "-i")
	vital.Nil(t, err)
	f, err := cl.AddFlag("flag", "-f")
	vital.Nil(t, err)
	p := AddPositional[int](cl, "count")

	vital.Nil(t, cl.Parse([]string{"prog", "-i", "4", "-f", "--", "3"}))

	got, err := i.Value()
	vital.Nil(t, err)
	assert.Equal(t, got, 4)
	assert.True(t, f.Value())

	got, err = p.Value()
	vital.Nil(t, err)
	assert.Equal(t, got, 3)
}

func TestParse_PositionalWithoutSeparator(t *testing.T) {
	cl := New("prog")
	_, err := AddValue[int](cl, "input", "-i")
	vital.Nil(t, err)
	f, err := cl.AddFlag("flag", "-f")
	vital.Nil(t, err)
	p := AddPositional[int](cl, "count")

	vital.Nil(t, cl.Parse([]string{"prog", "3"}))

	got, err := p.Value()
	vital.Nil(t, err)
	assert.Equal(t, got, 3)
	assert.Equal(t, f.Value(), false)
}

func TestParse_PositionalsInterleavedWithTags(t *testing.T) {
	// Without a separator, tokens consumed during tag scanning are not
	// offered to the positionals again.
	cl := New("prog")
	i, err := AddValue[int](cl, "input", "-i")
	vital.Nil(t, err)
	p := AddPositional[string](cl, "name")

	vital.Nil(t, cl.Parse([]string{"prog", "-i", "4", "alice"}))

	n, err := i.Value()
	vital.Nil(t, err)
	assert.Equal(t, n, 4)

	name, err := p.Value()
	vital.Nil(t, err)
	assert.Equal(t, name, "alice")
}

func TestParse_MultiValueAndFlag(t *testing.T) {
	cl := New("prog")
	m, err := AddMultiValue[int](cl, "ints", "--ints")
	vital.Nil(t, err)
	f, err := cl.AddFlag("flag", "-f")
	vital.Nil(t, err)

	vital.Nil(t, cl.Parse([]string{"prog", "--ints", "1", "2", "3", "4", "-f"}))

	if diff := cmp.Diff([]int{1, 2, 3, 4}, m.Value()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, f.Value())
}

func TestParse_RequiredValueMissing(t *testing.T) {
	cl := New("prog")
	v, err := AddValue[int](cl, "input", "-i")
	vital.Nil(t, err)
	vital.Nil(t, v.SetRequired(true))

	err = cl.Parse([]string{"prog"})
	assert.NotNil(t, err)

	var ve paxerr.ValidationError
	assert.True(t, stderrs.As(err, &ve))
	assert.Equal(t, ve.Name, "input")

	vital.Nil(t, cl.Parse([]string{"prog", "-i", "4"}))
}

func TestParse_OptionalValueMissingIsValid(t *testing.T) {
	cl := New("prog")
	_, err := AddValue[int](cl, "input", "-i")
	vital.Nil(t, err)

	vital.Nil(t, cl.Parse([]string{"prog"}))
}

func TestParse_MissingPositionalFails(t *testing.T) {
	cl := New("prog")
	AddPositional[int](cl, "count")

	err := cl.Parse([]string{"prog"})
	assert.NotNil(t, err)

	var ve paxerr.ValidationError
	assert.True(t, stderrs.As(err, &ve))
	assert.Equal(t, ve.Name, "count")
}

func TestParse_InvalidTagArgumentSkipsPositionalScan(t *testing.T) {
	cl := New("prog")
	v, err := AddValue[int](cl, "input", "-i")
	vital.Nil(t, err)
	vital.Nil(t, v.SetRequired(true))
	p := AddPositional[int](cl, "count")

	err = cl.Parse([]string{"prog", "--", "3"})
	assert.NotNil(t, err)

	var ve paxerr.ValidationError
	assert.True(t, stderrs.As(err, &ve))
	assert.Equal(t, ve.Name, "input")
	// Positional scanning never ran.
	assert.Equal(t, p.HasValue(), false)
}

func TestParse_DecodeErrorPropagates(t *testing.T) {
	cl := New("prog")
	_, err := AddValue[int](cl, "input", "-i")
	vital.Nil(t, err)

	err = cl.Parse([]string{"prog", "-i", "four"})
	assert.NotNil(t, err)

	var de paxerr.DecodeError
	assert.True(t, stderrs.As(err, &de))
	assert.Equal(t, de.Token, "four")
}

func TestParse_SeparatorHandsTagLikeTokensToPositionals(t *testing.T) {
	cl := New("prog")
	_, err := cl.AddFlag("flag", "-f")
	vital.Nil(t, err)
	p := AddPositional[string](cl, "name")

	vital.Nil(t, cl.Parse([]string{"prog", "--", "-f"}))

	name, err := p.Value()
	vital.Nil(t, err)
	assert.Equal(t, name, "-f")
}

func TestParse_EmptyAndProgramOnlyTokenStreams(t *testing.T) {
	cl := New("prog")
	f, err := cl.AddFlag("flag", "-f")
	vital.Nil(t, err)

	vital.Nil(t, cl.Parse(nil))
	vital.Nil(t, cl.Parse([]string{"prog"}))
	assert.Equal(t, f.Value(), false)
}

func TestParse_RepeatedParseResetsMultiValue(t *testing.T) {
	cl := New("prog")
	m, err := AddMultiValue[int](cl, "ints", "--ints")
	vital.Nil(t, err)

	vital.Nil(t, cl.Parse([]string{"prog", "--ints", "1", "2"}))
	vital.Nil(t, cl.Parse([]string{"prog", "--ints", "3"}))

	if diff := cmp.Diff([]int{3}, m.Value()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RepeatedParseResetsBoundMultiValueTarget(t *testing.T) {
	var target []int
	cl := New("prog")
	m, err := AddMultiValue[int](cl, "ints", "--ints")
	vital.Nil(t, err)
	m.Bind(&target)

	vital.Nil(t, cl.Parse([]string{"prog", "--ints", "1", "2"}))
	vital.Nil(t, cl.Parse([]string{"prog"}))

	// The bound target follows the cleared internal list.
	if diff := cmp.Diff(m.Value(), target); diff != "" {
		t.Errorf("bound target out of sync (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(target), 0)
}

func TestParse_RepeatedParseKeepsFlag(t *testing.T) {
	cl := New("prog")
	f, err := cl.AddFlag("flag", "-f")
	vital.Nil(t, err)

	vital.Nil(t, cl.Parse([]string{"prog", "-f"}))
	vital.Nil(t, cl.Parse([]string{"prog"}))
	assert.True(t, f.Value())
}

func TestAddTagArgumentAfterPositionalFails(t *testing.T) {
	cl := New("prog")
	AddPositional[int](cl, "count")

	var ce paxerr.ConfigError

	_, err := cl.AddFlag("flag", "-f")
	assert.NotNil(t, err)
	assert.True(t, stderrs.As(err, &ce))

	_, err = AddValue[int](cl, "input", "-i")
	assert.NotNil(t, err)
	assert.True(t, stderrs.As(err, &ce))

	_, err = AddMultiValue[int](cl, "ints", "--ints")
	assert.NotNil(t, err)
	assert.True(t, stderrs.As(err, &ce))
}

func TestParse_FirstInvalidArgumentIsNamed(t *testing.T) {
	cl := New("prog")
	a, err := AddValue[int](cl, "alpha", "-a")
	vital.Nil(t, err)
	vital.Nil(t, a.SetRequired(true))
	b, err := AddValue[int](cl, "beta", "-b")
	vital.Nil(t, err)
	vital.Nil(t, b.SetRequired(true))

	err = cl.Parse([]string{"prog"})
	assert.NotNil(t, err)

	var ve paxerr.ValidationError
	assert.True(t, stderrs.As(err, &ve))
	assert.Equal(t, ve.Name, "alpha")
}

func TestParse_ExtraPositionalTokensAreIgnored(t *testing.T) {
	cl := New("prog")
	p := AddPositional[string](cl, "first")

	vital.Nil(t, cl.Parse([]string{"prog", "--", "a", "b", "c"}))

	got, err := p.Value()
	vital.Nil(t, err)
	assert.Equal(t, got, "a")
}

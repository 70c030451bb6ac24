package pax

import (
	"github.com/sjrdc/pax/core"
)

// CommandLine is the argument registry. It owns every declared argument
// for its lifetime and orchestrates the two-phase scan of a token stream:
// tag arguments first, then positional arguments, which receive the
// tokens after the "--" separator (or the leftover tokens when no
// separator is present).
//
// Usage:
//
//	cl := pax.New("mytool")
//	verbose, _ := cl.AddFlag("verbose", "-v")
//	input, _ := pax.AddValue[string](cl, "input", "-i")
//	input.SetAlternateTag("--input").SetDescription("file to read")
//	if err := input.SetRequired(true); err != nil {
//		log.Fatal(err)
//	}
//
//	if err := cl.ParseOSArgs(); err != nil {
//		cl.PrintHelp(os.Stderr)
//		os.Exit(1)
//	}
type CommandLine = core.CommandLine

// FlagArgument is a boolean argument that consumes no value tokens.
type FlagArgument = core.FlagArgument

// ValueArgument holds at most one decoded value of type T.
type ValueArgument[T core.Scalar] = core.ValueArgument[T]

// MultiValueArgument holds an ordered list of decoded values of type T.
type MultiValueArgument[T core.Scalar] = core.MultiValueArgument[T]

// PositionalArgument holds one decoded value matched purely by position.
type PositionalArgument[T core.Scalar] = core.PositionalArgument[T]

// Scalar is the closed set of types value-bearing arguments can decode.
type Scalar = core.Scalar

// Path is the scalar type for filesystem path arguments.
type Path = core.Path

// Separator is the literal token that ends tag-argument scanning.
const Separator = core.Separator

// New creates a registry for the program with the given name.
var New = core.New

// AddValue declares a single-value argument of type T on cl, matched by
// tag. The returned reference stays owned by the registry.
func AddValue[T Scalar](cl *CommandLine, name, tag string) (*ValueArgument[T], error) {
	return core.AddValue[T](cl, name, tag)
}

// AddMultiValue declares a multi-value argument of type T on cl, matched
// by tag. Once matched it consumes every following token up to the next
// tag-like token.
func AddMultiValue[T Scalar](cl *CommandLine, name, tag string) (*MultiValueArgument[T], error) {
	return core.AddMultiValue[T](cl, name, tag)
}

// AddPositional declares a positional argument of type T on cl.
// Positional arguments claim tokens in declaration order; after the first
// one is declared, no further tag arguments may be added to cl.
func AddPositional[T Scalar](cl *CommandLine, name string) *PositionalArgument[T] {
	return core.AddPositional[T](cl, name)
}

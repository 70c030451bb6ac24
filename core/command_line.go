package core

import (
	"fmt"
	"io"
	"os"

	"github.com/sjrdc/pax/display"
	"github.com/sjrdc/pax/errors"
)

// CommandLine owns an ordered collection of tag arguments and a separate
// ordered collection of positional arguments, and drives the two-phase
// scan over a token stream. Arguments are created through the Add
// functions and owned by the registry; callers receive non-owning
// references for configuration and value access.
type CommandLine struct {
	name        string
	description string
	version     string
	arguments   []argument
	positionals []positional
}

// New creates a registry for the program with the given name.
func New(programName string) *CommandLine {
	return &CommandLine{name: programName}
}

func (cl *CommandLine) Name() string { return cl.name }

func (cl *CommandLine) SetDescription(d string) *CommandLine {
	cl.description = d
	return cl
}

// SetVersion sets the version reported by BuildVersion. When left empty
// the version is inferred from build metadata.
func (cl *CommandLine) SetVersion(v string) *CommandLine {
	cl.version = v
	return cl
}

// AddFlag declares a boolean flag matched by tag.
func (cl *CommandLine) AddFlag(name, tag string) (*FlagArgument, error) {
	if err := cl.checkTagDeclaration(); err != nil {
		return nil, err
	}
	arg := &FlagArgument{
		argumentBase: argumentBase{name: name},
		tagPair:      tagPair{tag: tag},
	}
	cl.arguments = append(cl.arguments, arg)
	return arg, nil
}

// AddValue declares a single-value argument of type T matched by tag.
// It is a package function because Go methods cannot take type parameters.
func AddValue[T Scalar](cl *CommandLine, name, tag string) (*ValueArgument[T], error) {
	if err := cl.checkTagDeclaration(); err != nil {
		return nil, err
	}
	arg := &ValueArgument[T]{
		argumentBase: argumentBase{name: name},
		tagPair:      tagPair{tag: tag},
	}
	cl.arguments = append(cl.arguments, arg)
	return arg, nil
}

// AddMultiValue declares a multi-value argument of type T matched by tag.
func AddMultiValue[T Scalar](cl *CommandLine, name, tag string) (*MultiValueArgument[T], error) {
	if err := cl.checkTagDeclaration(); err != nil {
		return nil, err
	}
	arg := &MultiValueArgument[T]{
		argumentBase: argumentBase{name: name},
		tagPair:      tagPair{tag: tag},
	}
	cl.arguments = append(cl.arguments, arg)
	return arg, nil
}

// AddPositional declares a positional argument of type T. Positional
// arguments claim tokens in declaration order, and once one exists no
// further tag arguments may be declared.
func AddPositional[T Scalar](cl *CommandLine, name string) *PositionalArgument[T] {
	arg := &PositionalArgument[T]{
		argumentBase: argumentBase{name: name},
	}
	cl.positionals = append(cl.positionals, arg)
	return arg
}

// Checked at declaration time so the misuse surfaces where it was written,
// not at the first parse.
func (cl *CommandLine) checkTagDeclaration() error {
	if len(cl.positionals) > 0 {
		return errors.NewConfig("tag arguments cannot be declared after positional arguments")
	}
	return nil
}

// Parse scans tokens against the declared arguments. Index 0 is the
// program name and is skipped. Tag arguments are scanned first; the "--"
// separator ends tag scanning and hands every following token to the
// positional arguments. Without a separator, tokens left unconsumed by
// tag scanning are offered to the positionals instead. After each phase
// the first invalid argument aborts the parse with a ValidationError;
// decode failures abort immediately.
func (cl *CommandLine) Parse(tokens []string) error {
	for _, arg := range cl.arguments {
		arg.reset()
	}

	consumed := make(map[int]bool)
	separator := -1

	pos := 1
	for pos < len(tokens) {
		if isSeparator(tokens[pos]) {
			separator = pos
			break
		}
		matched := false
		for _, arg := range cl.arguments {
			next, ok, err := arg.parseStep(tokens, pos)
			if err != nil {
				return err
			}
			if ok {
				for i := pos; i < next; i++ {
					consumed[i] = true
				}
				pos = next
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}

	if err := firstInvalid(cl.arguments); err != nil {
		return err
	}

	var candidates []string
	if separator >= 0 {
		candidates = tokens[separator+1:]
	} else {
		for i := 1; i < len(tokens); i++ {
			if !consumed[i] && !isTagLike(tokens[i]) {
				candidates = append(candidates, tokens[i])
			}
		}
	}
	for i, p := range cl.positionals {
		if i >= len(candidates) {
			break
		}
		if err := p.parseValue(candidates[i]); err != nil {
			return err
		}
	}

	return firstInvalid(cl.positionals)
}

// ParseOSArgs parses the process argument vector.
func (cl *CommandLine) ParseOSArgs() error {
	return cl.Parse(os.Args)
}

// firstInvalid returns a ValidationError naming the first argument that
// reports itself invalid, or nil when all are valid.
func firstInvalid[A interface {
	Name() string
	isValid() bool
}](args []A) error {
	for _, arg := range args {
		if !arg.isValid() {
			return errors.NewValidation(arg.Name())
		}
	}
	return nil
}

// BuildHelp renders the help text for the declared arguments.
func (cl *CommandLine) BuildHelp() string {
	info := display.Info{
		Name:        cl.name,
		Description: cl.description,
	}
	for _, p := range cl.positionals {
		info.Positionals = append(info.Positionals, p.helpEntry())
	}
	for _, arg := range cl.arguments {
		info.Options = append(info.Options, arg.helpEntry())
	}
	return display.BuildHelp(info)
}

// PrintHelp writes the help text to o.
func (cl *CommandLine) PrintHelp(o io.Writer) {
	fmt.Fprint(o, cl.BuildHelp())
}

// BuildVersion renders the program's version line.
func (cl *CommandLine) BuildVersion() string {
	return display.BuildVersion(cl.name, cl.version)
}

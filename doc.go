// Package pax is a CLI argument parsing library for Go built around an
// explicit argument registry rather than reflection or struct tags.
//
// It supports flags, single-value and multi-value options with short and
// alternate (long) tags, positional arguments, required arguments,
// defaults, validators, bound variables, and automatic generation of help
// and version output.
//
// The library is designed to be easy to use and integrate into Go CLI
// tools: declare the arguments on a CommandLine, then parse the process
// argument vector against the declarations.
package pax

//go:generate gomarkdoc ./ -o docs/pax.md

package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sjrdc/pax/internal/common"
)

// Width of the alternate-tag column in the options section.
const alternateTagWidth = 15

// Option describes one tag-argument line in the options section.
type Option struct {
	Tag         string
	Alternate   string
	Required    bool
	Default     string // encoded default value; empty means none
	Description string
}

// Positional describes one entry in the arguments section.
type Positional struct {
	Name        string
	Description string
}

// Info carries everything BuildHelp needs to render a command line.
type Info struct {
	Name        string
	Description string
	Options     []Option
	Positionals []Positional
}

var (
	header   = color.New(color.Bold, color.Underline).Sprint
	emphasis = color.New(color.Bold).Sprint
)

// BuildHelp renders the usage line, the arguments section and the options
// section for info. Styling is dropped automatically when the output is
// not a terminal.
func BuildHelp(info Info) string {
	var builder strings.Builder
	builder.WriteString(header("Usage:") + " ")
	builder.WriteString(emphasis(info.Name))
	for _, p := range info.Positionals {
		builder.WriteString(fmt.Sprintf(" [%s]", strings.ToUpper(p.Name)))
	}
	if len(info.Options) > 0 {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if info.Description != "" {
		builder.WriteString("\n" + info.Description + "\n")
	}

	if len(info.Positionals) > 0 {
		builder.WriteString("\n" + header("Arguments:") + "\n")
		builder.WriteString(positionalsHelp(info.Positionals))
	}

	if len(info.Options) > 0 {
		builder.WriteString("\n" + header("Options:") + "\n")
		builder.WriteString(optionsHelp(info.Options))
	}

	return builder.String()
}

// positionalsHelp formats one aligned line per positional argument.
func positionalsHelp(args []Positional) string {
	maxLen := 0
	for _, p := range args {
		if len(p.Name) > maxLen {
			maxLen = len(p.Name)
		}
	}

	var builder strings.Builder
	for _, p := range args {
		builder.WriteString("   " + common.PadRight(p.Name, maxLen+2))
		builder.WriteString(p.Description)
		builder.WriteString("\n")
	}
	return builder.String()
}

// optionsHelp formats one line per tag argument: tag, alternate tag padded
// to a fixed column width, required or default marker, description.
func optionsHelp(opts []Option) string {
	var builder strings.Builder
	for _, o := range opts {
		builder.WriteString("   " + o.Tag)
		if o.Alternate != "" {
			builder.WriteString(", " + common.PadRight(o.Alternate, alternateTagWidth-2))
		} else {
			builder.WriteString(common.PadRight("", alternateTagWidth))
		}
		switch {
		case o.Required:
			builder.WriteString("(required) ")
		case o.Default != "":
			builder.WriteString(fmt.Sprintf("(default: %s) ", o.Default))
		}
		builder.WriteString(o.Description)
		builder.WriteString("\n")
	}
	return builder.String()
}

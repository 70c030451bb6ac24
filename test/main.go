package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/sjrdc/pax"
)

func main() {
	cl := pax.New("app").
		SetDescription("An example application demonstrating pax features").
		SetVersion("0.1.0")

	verbose, err := cl.AddFlag("verbose", "-v")
	check(err)
	verbose.SetAlternateTag("--verbose").SetDescription("Enable verbose output")

	port, err := pax.AddValue[int](cl, "port", "--port")
	check(err)
	port.SetDescription("Port to run the server on").
		SetValidator(func(p int) bool { return p > 0 && p < 65536 })
	check(port.SetDefault(8080))

	config := pax.AddPositional[pax.Path](cl, "config").
		SetDescription("Configuration file to load")

	// Help and version short-circuit before the required positional is
	// enforced.
	if slices.Contains(os.Args[1:], "-h") || slices.Contains(os.Args[1:], "--help") {
		cl.PrintHelp(os.Stdout)
		return
	}
	if slices.Contains(os.Args[1:], "--version") {
		fmt.Println(cl.BuildVersion())
		return
	}

	if err := cl.Parse(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		cl.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	p, err := port.Value()
	check(err)
	c, err := config.Value()
	check(err)
	fmt.Printf("port=%d config=%s verbose=%v\n", p, c, verbose.Value())
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

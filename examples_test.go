package pax_test

import (
	"fmt"

	"github.com/sjrdc/pax"
)

func Example_readme() {
	cl := pax.New("greet")

	shout, err := cl.AddFlag("shout", "-s")
	if err != nil {
		panic(err)
	}
	shout.SetAlternateTag("--shout").SetDescription("print the greeting loudly")

	times, err := pax.AddValue[int](cl, "times", "-n")
	if err != nil {
		panic(err)
	}
	times.SetDescription("how often to greet")
	if err := times.SetDefault(1); err != nil {
		panic(err)
	}

	name := pax.AddPositional[string](cl, "name").SetDescription("who to greet")

	// Normally this would be cl.ParseOSArgs().
	if err := cl.Parse([]string{"greet", "-n", "2", "--shout", "--", "alice"}); err != nil {
		panic(err)
	}

	n, _ := times.Value()
	who, _ := name.Value()
	greeting := "hello " + who
	if shout.Value() {
		greeting += "!"
	}
	for range n {
		fmt.Println(greeting)
	}
	// Output: hello alice!
	// hello alice!
}

func Example_boundVariables() {
	var verbose bool
	var jobs int

	cl := pax.New("build")
	flag, err := cl.AddFlag("verbose", "-v")
	if err != nil {
		panic(err)
	}
	flag.Bind(&verbose)

	arg, err := pax.AddValue[int](cl, "jobs", "-j")
	if err != nil {
		panic(err)
	}
	arg.Bind(&jobs)
	if err := arg.SetDefault(1); err != nil {
		panic(err)
	}

	if err := cl.Parse([]string{"build", "-v", "-j", "8"}); err != nil {
		panic(err)
	}

	fmt.Printf("verbose=%v jobs=%d\n", verbose, jobs)
	// Output: verbose=true jobs=8
}

func Example_multiValue() {
	cl := pax.New("sum")
	ints, err := pax.AddMultiValue[int](cl, "ints", "--ints")
	if err != nil {
		panic(err)
	}

	if err := cl.Parse([]string{"sum", "--ints", "1", "2", "3", "4"}); err != nil {
		panic(err)
	}

	total := 0
	for _, n := range ints.Value() {
		total += n
	}
	fmt.Println(total)
	// Output: 10
}

func Example_validator() {
	cl := pax.New("serve")
	port, err := pax.AddValue[int](cl, "port", "-p")
	if err != nil {
		panic(err)
	}
	port.SetValidator(func(p int) bool { return p > 0 && p < 65536 })

	err = cl.Parse([]string{"serve", "-p", "70000"})
	fmt.Println(err)
	// Output: argument "port" invalid after parsing
}

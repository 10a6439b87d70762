package main

import "fmt"

func main() {
	// The plain names declared next to the directives survive generation.
	a, err := NewA().N(1).Build()
	if err != nil {
		panic(err)
	}
	b, err := NewB().S("ok").Build()
	if err != nil {
		panic(err)
	}

	// Output: mixed 3 {N:1} {S:ok}
	fmt.Printf("%s %d %+v %+v\n", origin, version, a, b)
}

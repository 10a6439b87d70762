package main

import "fmt"

func main() {
	c, err := NewCircle().WithRadius(1.5).Make()
	if err != nil {
		panic(err)
	}

	// Output: {Radius:1.5}
	fmt.Printf("%+v\n", c)

	// The directive's own Finish overrides the module's.
	s, err := NewSquare().WithSide(2.0).Cut()
	if err != nil {
		panic(err)
	}

	// Output: {Side:2}
	fmt.Printf("%+v\n", s)
}

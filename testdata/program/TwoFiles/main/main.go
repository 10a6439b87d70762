package main

import "fmt"

func main() {
	w, err := NewWidget().Name("gear").Build()
	if err != nil {
		panic(err)
	}
	g, err := NewGadget().Kind("lever").Build()
	if err != nil {
		panic(err)
	}

	// Output: widget=gear gadget=lever
	fmt.Printf("widget=%s gadget=%s\n", w.Name, g.Kind)
}

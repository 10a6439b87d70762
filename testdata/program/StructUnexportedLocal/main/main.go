package main

import "fmt"

func main() {
	// Unexported fields of a local target get exported setter names.
	s, err := newSecret().Key("k1").Shown(true).Build()
	if err != nil {
		panic(err)
	}

	// Output: {key:k1 shown:true}
	fmt.Printf("%+v\n", s)
}

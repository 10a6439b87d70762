package main

import "fmt"

func main() {
	// The shared "Server" word is trimmed from the setter names.
	c, err := NewConfig().Host("0.0.0.0").Port(8080).Build()
	if err != nil {
		panic(err)
	}

	// Output: {ServerHost:0.0.0.0 ServerPort:8080}
	fmt.Printf("%+v\n", c)
}

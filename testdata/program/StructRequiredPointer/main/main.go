package main

import "fmt"

func main() {
	// Required overrides the pointer member's default optionality.
	_, err := NewNote().Text("hi").Build()

	// Output: building Note: missing By
	fmt.Println(err)

	by := "sub"
	n, err := NewNote().Text("hi").By(&by).Build()
	if err != nil {
		panic(err)
	}

	// Output: hi sub
	fmt.Println(n.Text, *n.By)
}

package main

import "fmt"

func main() {
	s, err := ListOf().Sep(", ").Items("a", "b", "c").Call()
	if err != nil {
		panic(err)
	}

	// Output: a, b, c
	fmt.Println(s)

	// The variadic parameter is optional by default.
	s, err = ListOf().Sep("-").Call()
	if err != nil {
		panic(err)
	}

	// Output: empty=""
	fmt.Printf("empty=%q\n", s)
}

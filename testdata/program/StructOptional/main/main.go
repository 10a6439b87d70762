package main

import "fmt"

func main() {
	p, err := NewProfile().Name("Heungsub").Build()
	if err != nil {
		panic(err)
	}

	// Output: Heungsub "" <nil>
	fmt.Printf("%s %q %v\n", p.Name, p.Nickname, p.Age)

	age := 30
	p, err = NewProfile().Name("Sublee").Nickname("sub").Age(&age).Build()
	if err != nil {
		panic(err)
	}

	// Output: Sublee "sub" 30
	fmt.Printf("%s %q %v\n", p.Name, p.Nickname, *p.Age)
}

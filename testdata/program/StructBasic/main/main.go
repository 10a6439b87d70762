package main

import "fmt"

func main() {
	post, err := NewPost().
		Title("Hello, Buildgen").
		Body("Builders without boilerplate.").
		Draft(true).
		Build()
	if err != nil {
		panic(err)
	}

	// Output: {Title:Hello, Buildgen Body:Builders without boilerplate. Draft:true}
	fmt.Printf("%+v\n", post)
}

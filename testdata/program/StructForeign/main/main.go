package main

import "fmt"

func main() {
	// The unexported field of api.Article is skipped, so the builder only
	// takes the exported fields.
	a, err := NewArticle().Title("Foreign targets").Body("Unexported fields stay zero.").Build()
	if err != nil {
		panic(err)
	}

	// Output: {Title:Foreign targets Body:Unexported fields stay zero. id:0}
	fmt.Printf("%+v\n", a)
}

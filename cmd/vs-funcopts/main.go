package main

import (
	"fmt"
)

func main() {
	fmt.Println("# Case 1: Successful construction")
	fmt.Println()

	fmt.Println("Buildgen:")
	c1, _ := NewClient().
		BaseURL("https://api.example.com").
		Token("s3cr3t").
		UserAgent("blogctl/1.0").
		Build()
	fmt.Printf("\t%+v\n", c1)

	fmt.Println("Functional options:")
	c2 := NewClientOpts(
		WithBaseURL("https://api.example.com"),
		WithToken("s3cr3t"),
		WithUserAgent("blogctl/1.0"),
	)
	fmt.Printf("\t%+v\n", c2)

	fmt.Println()

	fmt.Println("# Case 2: Missing required members")
	fmt.Println()

	fmt.Println("Buildgen:")
	_, err := NewClient().UserAgent("blogctl/1.0").Build()
	fmt.Printf("\t%s\n", err.Error())

	fmt.Println("Functional options:")
	c3 := NewClientOpts(WithUserAgent("blogctl/1.0"))
	fmt.Printf("\t%+v\n", c3)
}

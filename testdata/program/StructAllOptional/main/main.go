package main

import "fmt"

func main() {
	// Build returns no error because every member is optional.
	f := NewFilter().Query("buildgen").Build()

	// Output: {Query:buildgen Limit:50}
	fmt.Printf("%+v\n", f)
}

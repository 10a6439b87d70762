package main

import "fmt"

func main() {
	// banner itself returns no error, but the finisher appends one to
	// report missing members.
	b, err := Banner().Text("buildgen").Width(12).Call()
	if err != nil {
		panic(err)
	}

	// Output: ==buildgen==
	fmt.Println(b)

	_, err = Banner().Call()

	// Output: building banner: missing text, width
	fmt.Println(err)
}

package main

import "fmt"

func main() {
	req, err := NewRequest().
		WithMethod("GET").
		WithURL("https://example.com").
		Payload("").
		Send()
	if err != nil {
		panic(err)
	}

	// Output: {Method:GET URL:https://example.com Body:}
	fmt.Printf("%+v\n", req)
}

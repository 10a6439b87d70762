package main

import "fmt"

func main() {
	b := NewToken().Value("abc")
	if _, err := b.Build(); err != nil {
		panic(err)
	}

	defer func() {
		// Output: buildgen: TokenBuilder used after Build
		fmt.Println(recover())
	}()
	b.Build()
}

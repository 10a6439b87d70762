package main

import "fmt"

func main() {
	a, err := OpenAccount().Email("sub@example.com").Quota(10).Call()
	if err != nil {
		panic(err)
	}

	// Output: {Email:sub@example.com Quota:10}
	fmt.Printf("%+v\n", a)

	// The target's own error passes through the finisher.
	_, err = OpenAccount().Email("").Quota(0).Call()

	// Output: email required
	fmt.Println(err)
}

package main

import "fmt"

func main() {
	if err := Record().Line("first").Call(); err != nil {
		panic(err)
	}

	// Output: recorded=[first]
	fmt.Printf("recorded=%v\n", lines)

	// Output: building record: missing line
	fmt.Println(Record().Call())
}

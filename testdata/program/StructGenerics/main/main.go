package main

import "fmt"

func main() {
	p, err := NewPair().Key("answer").Value(42).Build()
	if err != nil {
		panic(err)
	}

	// Output: {Key:answer Value:42}
	fmt.Printf("%+v\n", p)
}

package main

import "fmt"

func main() {
	t, err := NewTag().SetLabel("go").Build()
	if err != nil {
		panic(err)
	}

	// Output: {Label:go}
	fmt.Printf("%+v\n", t)
}

package main

import "github.com/sublee/buildgen"

type Item struct {
	Name string
}

var NewItem = buildgen.Struct[Item](nil)

func main() {}

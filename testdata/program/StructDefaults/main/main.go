package main

import (
	"fmt"
	"time"
)

func main() {
	s, err := NewServer().Addr("localhost:8080").Build()
	if err != nil {
		panic(err)
	}

	// Output: {Addr:localhost:8080 Timeout:30s Workers:4}
	fmt.Printf("%+v\n", s)

	s, err = NewServer().Addr("localhost:9090").Timeout(time.Minute).Workers(16).Build()
	if err != nil {
		panic(err)
	}

	// Output: {Addr:localhost:9090 Timeout:1m0s Workers:16}
	fmt.Printf("%+v\n", s)
}

package main

import (
	"errors"
	"fmt"

	"github.com/sublee/buildgen/pkg/buildgenerrors"
)

func main() {
	_, err := NewPost().Draft(true).Build()

	// Output: building Post: missing Title, Body
	fmt.Println(err)

	// Output: incomplete=true
	fmt.Printf("incomplete=%t\n", errors.Is(err, buildgenerrors.ErrIncomplete))

	var incomplete *buildgenerrors.IncompleteError
	if errors.As(err, &incomplete) {
		// Output: missing=[Title Body]
		fmt.Printf("missing=%v\n", incomplete.Missing)
	}
}

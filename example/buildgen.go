//go:build buildgen

package main

import (
	"time"

	"github.com/sublee/buildgen"
)

// Post is a blog post served by the API.
type Post struct {
	ID    int
	Title string
	Body  string
	Tags  []string
}

// Server bundles what the HTTP server needs to run.
type Server struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

var mod = buildgen.Module(
	buildgen.SetterPrefix("With"),
)

var (
	NewPost = buildgen.Struct[Post](mod,
		// The store assigns IDs, so requests never carry one.
		buildgen.Optional(Post{}.ID),
		buildgen.Optional(Post{}.Tags),
	)
	NewServer = buildgen.Struct[Server](mod,
		buildgen.Default(Server{}.Addr, ":8080"),
		buildgen.Default(Server{}.ReadTimeout, 5*time.Second),
		buildgen.Default(Server{}.WriteTimeout, 10*time.Second),
		buildgen.Default(Server{}.ShutdownTimeout, 3*time.Second),
	)
)

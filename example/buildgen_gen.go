//go:build !buildgen

// Code generated by github.com/sublee/buildgen@dev. DO NOT EDIT.
//
package main

import (
	buildgenerrors "github.com/sublee/buildgen/pkg/buildgenerrors"
	"time"
	time2 "time"
)

// buildgen: builders

// NewPost begins building a [Post]. Fill the members with setter calls in
// any order, then finish with [PostBuilder.Build].
func NewPost() *PostBuilder { return &PostBuilder{} }

// PostBuilder accumulates members for [Post]. Each setter overwrites its
// previous value, so the last call wins. A PostBuilder must be finished at
// most once and is not safe for concurrent use.
type PostBuilder struct {
	id       int
	title    string
	titleSet bool
	body     string
	bodySet  bool
	tags     []string
	built    bool
}

// WithID sets the ID field of [Post].
func (b *PostBuilder) WithID(id int) *PostBuilder {
	b.id = id
	return b
}

// WithTitle sets the Title field of [Post].
func (b *PostBuilder) WithTitle(title string) *PostBuilder {
	b.title = title
	b.titleSet = true
	return b
}

// WithBody sets the Body field of [Post].
func (b *PostBuilder) WithBody(body string) *PostBuilder {
	b.body = body
	b.bodySet = true
	return b
}

// WithTags sets the Tags field of [Post].
func (b *PostBuilder) WithTags(tags []string) *PostBuilder {
	b.tags = tags
	return b
}

// Build finishes the builder and returns the built [Post]. It fails when
// a required member was never set. The builder must not be used again
// after Build returns.
func (b *PostBuilder) Build() (Post, error) {
	if b.built {
		panic("buildgen: PostBuilder used after Build")
	}
	b.built = true

	var missing []string
	if !b.titleSet {
		missing = append(missing, "Title")
	}
	if !b.bodySet {
		missing = append(missing, "Body")
	}
	if missing != nil {
		var zero Post
		return zero, buildgenerrors.Incomplete("Post", missing...)
	}

	return Post{
		ID:    b.id,
		Title: b.title,
		Body:  b.body,
		Tags:  b.tags,
	}, nil
}

// NewServer begins building a [Server]. Fill the members with setter calls in
// any order, then finish with [ServerBuilder.Build].
func NewServer() *ServerBuilder {
	return &ServerBuilder{
		addr:            ":8080",
		readTimeout:     5 * time.Second,
		writeTimeout:    10 * time.Second,
		shutdownTimeout: 3 * time.Second,
	}
}

// ServerBuilder accumulates members for [Server]. Each setter overwrites its
// previous value, so the last call wins. A ServerBuilder must be finished at
// most once and is not safe for concurrent use.
type ServerBuilder struct {
	addr            string
	readTimeout     time2.Duration
	writeTimeout    time2.Duration
	shutdownTimeout time2.Duration
	built           bool
}

// WithAddr sets the Addr field of [Server].
func (b *ServerBuilder) WithAddr(addr string) *ServerBuilder {
	b.addr = addr
	return b
}

// WithReadTimeout sets the ReadTimeout field of [Server].
func (b *ServerBuilder) WithReadTimeout(readTimeout time2.Duration) *ServerBuilder {
	b.readTimeout = readTimeout
	return b
}

// WithWriteTimeout sets the WriteTimeout field of [Server].
func (b *ServerBuilder) WithWriteTimeout(writeTimeout time2.Duration) *ServerBuilder {
	b.writeTimeout = writeTimeout
	return b
}

// WithShutdownTimeout sets the ShutdownTimeout field of [Server].
func (b *ServerBuilder) WithShutdownTimeout(shutdownTimeout time2.Duration) *ServerBuilder {
	b.shutdownTimeout = shutdownTimeout
	return b
}

// Build finishes the builder and returns the built [Server]. The builder
// must not be used again after Build returns.
func (b *ServerBuilder) Build() Server {
	if b.built {
		panic("buildgen: ServerBuilder used after Build")
	}
	b.built = true

	return Server{
		Addr:            b.addr,
		ReadTimeout:     b.readTimeout,
		WriteTimeout:    b.writeTimeout,
		ShutdownTimeout: b.shutdownTimeout,
	}
}

// buildgen.go:

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
	ReadTimeout     time2.Duration
	WriteTimeout    time2.Duration
	ShutdownTimeout time2.Duration
}

var mod = struct{}{} // buildgen module erased

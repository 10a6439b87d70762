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

// NewClient begins building a [Client]. Fill the members with setter calls in
// any order, then finish with [ClientBuilder.Build].
func NewClient() *ClientBuilder {
	return &ClientBuilder{
		timeout: 10 * time.Second,
		retries: 3,
	}
}

// ClientBuilder accumulates members for [Client]. Each setter overwrites its
// previous value, so the last call wins. A ClientBuilder must be finished at
// most once and is not safe for concurrent use.
type ClientBuilder struct {
	baseURL    string
	baseURLSet bool
	token      string
	tokenSet   bool
	timeout    time2.Duration
	retries    int
	userAgent  string
	built      bool
}

// BaseURL sets the BaseURL field of [Client].
func (b *ClientBuilder) BaseURL(baseURL string) *ClientBuilder {
	b.baseURL = baseURL
	b.baseURLSet = true
	return b
}

// Token sets the Token field of [Client].
func (b *ClientBuilder) Token(token string) *ClientBuilder {
	b.token = token
	b.tokenSet = true
	return b
}

// Timeout sets the Timeout field of [Client].
func (b *ClientBuilder) Timeout(timeout time2.Duration) *ClientBuilder {
	b.timeout = timeout
	return b
}

// Retries sets the Retries field of [Client].
func (b *ClientBuilder) Retries(retries int) *ClientBuilder {
	b.retries = retries
	return b
}

// UserAgent sets the UserAgent field of [Client].
func (b *ClientBuilder) UserAgent(userAgent string) *ClientBuilder {
	b.userAgent = userAgent
	return b
}

// Build finishes the builder and returns the built [Client]. It fails when
// a required member was never set. The builder must not be used again
// after Build returns.
func (b *ClientBuilder) Build() (Client, error) {
	if b.built {
		panic("buildgen: ClientBuilder used after Build")
	}
	b.built = true

	var missing []string
	if !b.baseURLSet {
		missing = append(missing, "BaseURL")
	}
	if !b.tokenSet {
		missing = append(missing, "Token")
	}
	if missing != nil {
		var zero Client
		return zero, buildgenerrors.Incomplete("Client", missing...)
	}

	return Client{
		BaseURL:   b.baseURL,
		Token:     b.token,
		Timeout:   b.timeout,
		Retries:   b.retries,
		UserAgent: b.userAgent,
	}, nil
}

// buildgen.go:

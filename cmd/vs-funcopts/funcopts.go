package main

import "time"

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.BaseURL = baseURL }
}

func WithToken(token string) ClientOption {
	return func(c *Client) { c.Token = token }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.Timeout = timeout }
}

func WithRetries(retries int) ClientOption {
	return func(c *Client) { c.Retries = retries }
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) { c.UserAgent = userAgent }
}

// NewClientOpts applies defaults before the options, so a forgotten required
// option is indistinguishable from an intentional zero value.
func NewClientOpts(opts ...ClientOption) Client {
	c := Client{Timeout: 10 * time.Second, Retries: 3}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

package main

import "time"

type Client struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	Retries   int
	UserAgent string
}

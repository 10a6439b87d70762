package api

type Article struct {
	// Title is the [Article] headline.
	Title string
}

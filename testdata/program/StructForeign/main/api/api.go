package api

type Article struct {
	Title string
	Body  string
	id    int
}

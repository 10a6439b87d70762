package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// store is an in-memory post table, just enough to back the demo API.
type store struct {
	mu    sync.Mutex
	next  int
	posts map[int]Post
}

func (s *store) put(p Post) Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	p.ID = s.next
	s.posts[p.ID] = p
	return p
}

func (s *store) get(id int) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	return p, ok
}

type postRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

func createPost(db *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req postRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		b := NewPost()
		if req.Title != "" {
			b = b.WithTitle(req.Title)
		}
		if req.Body != "" {
			b = b.WithBody(req.Body)
		}
		if len(req.Tags) > 0 {
			b = b.WithTags(req.Tags)
		}

		post, err := b.Build()
		if err != nil {
			// Reports which required members the request left out.
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusCreated, db.put(post))
	}
}

func getPost(db *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "post id must be a number")
		}

		post, ok := db.get(id)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return c.JSON(http.StatusOK, post)
	}
}

func main() {
	srv := NewServer().WithAddr(":8080").Build()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Server.ReadTimeout = srv.ReadTimeout
	e.Server.WriteTimeout = srv.WriteTimeout

	db := &store{posts: make(map[int]Post)}
	e.POST("/posts", createPost(db))
	e.GET("/posts/:id", getPost(db))

	go func() {
		if err := e.Start(srv.Addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), srv.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

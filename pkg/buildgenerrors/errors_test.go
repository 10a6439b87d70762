package buildgenerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/buildgen/pkg/buildgenerrors"
)

func TestMessage1(t *testing.T) {
	err := buildgenerrors.Incomplete("Post", "Title")
	assert.Equal(t, "building Post: missing Title", err.Error())
}

func TestMessage2(t *testing.T) {
	err := buildgenerrors.Incomplete("Post", "Title", "Body")
	assert.Equal(t, "building Post: missing Title, Body", err.Error())
}

func TestErrorIs(t *testing.T) {
	err := buildgenerrors.Incomplete("Post", "Title")
	assert.ErrorIs(t, err, buildgenerrors.ErrIncomplete)
}

func TestErrorIsWrapped(t *testing.T) {
	err := fmt.Errorf("saving draft: %w", buildgenerrors.Incomplete("Post", "Title"))
	assert.ErrorIs(t, err, buildgenerrors.ErrIncomplete)
}

func TestErrorIsOther(t *testing.T) {
	err := errors.New("some error")
	assert.NotErrorIs(t, err, buildgenerrors.ErrIncomplete)
}

func TestErrorAs(t *testing.T) {
	err := fmt.Errorf("saving draft: %w", buildgenerrors.Incomplete("Post", "Title", "Body"))

	var incomplete *buildgenerrors.IncompleteError
	assert.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "Post", incomplete.Target)
	assert.Equal(t, []string{"Title", "Body"}, incomplete.Missing)
}

package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfReferencesLinked(t *testing.T) {
	forms := selfReferences("Title is the [Post] headline.\n", "Post")
	assert.Equal(t, []any{"[Post]"}, forms.Values())
}

func TestSelfReferencesPointer(t *testing.T) {
	forms := selfReferences("Parent returns the enclosing [*Post].\n", "Post")
	assert.Equal(t, []any{"[*Post]"}, forms.Values())
}

func TestSelfReferencesSelector(t *testing.T) {
	forms := selfReferences("See [Post.Title] for the headline.\n", "Post")
	assert.Equal(t, []any{"[Post.Title]"}, forms.Values())
}

func TestSelfReferencesUnlinked(t *testing.T) {
	// A backquoted name does not parse as a doc link, but the bracketed
	// text still goes stale when it moves, so it is caught as well.
	forms := selfReferences("Copied into [`Post`] verbatim.\n", "Post")
	assert.Equal(t, []any{"[`Post`]"}, forms.Values())
}

func TestSelfReferencesMultiple(t *testing.T) {
	forms := selfReferences("A [Post] is described by [Post.Title].\n", "Post")
	assert.Equal(t, []any{"[Post]", "[Post.Title]"}, forms.Values())
}

func TestSelfReferencesQualified(t *testing.T) {
	forms := selfReferences("Belongs to a [blog.Post].\n", "Post")
	assert.True(t, forms.Empty())
}

func TestSelfReferencesOtherName(t *testing.T) {
	forms := selfReferences("Use a [Draft] until published.\n", "Post")
	assert.True(t, forms.Empty())
}

func TestSelfReferencesUnbracketed(t *testing.T) {
	forms := selfReferences("Every Post has exactly one.\n", "Post")
	assert.True(t, forms.Empty())
}

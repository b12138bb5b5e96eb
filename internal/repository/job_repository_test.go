package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%java%", likePattern("Java"))
	assert.Equal(t, "% go%", likePattern(" Go"))
	// "java" matches "javascript": the pattern is unanchored on both sides
	assert.Equal(t, "%java%", likePattern("java"))
}

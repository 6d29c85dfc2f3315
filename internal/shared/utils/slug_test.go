package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello, World!", "hello-world"},
		{"already slug", "hello-world", "hello-world"},
		{"surrounding whitespace", "  My Section  ", "my-section"},
		{"inner whitespace run", "a \t b", "a-b"},
		{"punctuation only", "!!!", ""},
		{"empty", "", ""},
		{"digits", "Top 10 Games of 2023", "top-10-games-of-2023"},
		{"spaced hyphen", "a - b", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"My Section",
		"  Weird -- Input!! ",
		"Top 10 Games of 2023",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify must be idempotent for %q", in)
	}
}

func TestSlugifyCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)

	inputs := []string{
		"Hello, World!",
		"A *Very* Strange — Heading?",
		"  spaces  everywhere  ",
	}

	for _, in := range inputs {
		got := Slugify(in)
		assert.True(t, valid.MatchString(got), "Slugify(%q) = %q contains invalid characters", in, got)
		assert.NotRegexp(t, `^-|-$`, got)
	}
}

package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWebp(t *testing.T) {
	got := ToWebp("https://img.example/a.jpg?w=100")

	u, err := url.Parse(got)
	require.NoError(t, err)

	assert.Equal(t, "img.example", u.Host)
	assert.Equal(t, "/a.jpg", u.Path)
	assert.Equal(t, "webp", u.Query().Get("fm"))
	assert.Equal(t, "100", u.Query().Get("w"), "existing params must survive the rewrite")
}

func TestToWebpOverwritesExistingFormat(t *testing.T) {
	got := ToWebp("https://img.example/a.jpg?fm=png")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "webp", u.Query().Get("fm"))
}

func TestToWebpInvalidInput(t *testing.T) {
	for _, in := range []string{"not a url", "", "/relative/path.jpg", "%zz"} {
		assert.Equal(t, in, ToWebp(in), "non-URL input must pass through unchanged")
	}
}

func TestSrcSet(t *testing.T) {
	base := ToWebp("https://img.example/a.jpg")
	got := SrcSet(base)

	parts := strings.Split(got, ", ")
	require.Len(t, parts, 5)
	assert.Equal(t, base+"&w=640 640w", parts[0])
	assert.Equal(t, base+"&w=1536 1536w", parts[4])

	// widths strictly ascending
	for i, w := range []string{"640", "768", "1024", "1280", "1536"} {
		assert.Contains(t, parts[i], "&w="+w+" "+w+"w")
	}
}

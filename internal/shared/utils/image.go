package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// srcSetWidths is the fixed ladder of widths offered to the browser for
// responsive cover images.
var srcSetWidths = []int{640, 768, 1024, 1280, 1536}

// ToWebp rewrites a CMS asset URL to request webp delivery by forcing the
// fm=webp query parameter. Existing parameters are preserved. Anything that
// does not look like an absolute URL is returned unchanged; this never fails.
func ToWebp(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}

	q := u.Query()
	q.Set("fm", "webp")
	u.RawQuery = q.Encode()

	return u.String()
}

// SrcSet builds an <img srcset> value from a base URL that has already been
// through ToWebp, one descriptor per width in ascending order.
func SrcSet(base string) string {
	parts := make([]string, 0, len(srcSetWidths))
	for _, w := range srcSetWidths {
		parts = append(parts, fmt.Sprintf("%s&w=%d %dw", base, w, w))
	}
	return strings.Join(parts, ", ")
}

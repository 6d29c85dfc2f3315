package utils

import "time"

// FormatDate turns the CMS's ISO timestamp into the human date shown on
// post cards. Unparseable input is passed through untouched.
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}

package post

// View is a post shaped for templates: dates formatted, image URLs already
// rewritten for webp delivery.
type View struct {
	Title            string       `json:"title"`
	Subtitle         string       `json:"subtitle"`
	Slug             string       `json:"slug"`
	Date             string       `json:"date"`
	Keywords         string       `json:"keywords"`
	Categories       []string     `json:"categories"`
	CoverImageURL    string       `json:"cover_image_url"`
	CoverImageSrcSet string       `json:"cover_image_srcset,omitempty"`
	Authors          []AuthorView `json:"authors"`
}

type AuthorView struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	TwitterLink string `json:"twitter_link,omitempty"`
	DiscordLink string `json:"discord_link,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Detail is the full detail-page payload: the post with its rendered body
// plus up to three related posts.
type Detail struct {
	View
	BodyHTML string `json:"body_html"`
	ReadTime string `json:"read_time"`
	Related  []View `json:"related"`
}

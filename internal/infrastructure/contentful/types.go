package contentful

import (
	"errors"

	"compass-backend/internal/domains/richtext"
)

// ErrNotFound is returned when a query resolves to no post.
var ErrNotFound = errors.New("contentful: entry not found")

// Post is the blogPost content type as the delivery API returns it.
type Post struct {
	Title            string            `json:"title"`
	Subtitle         string            `json:"subtitle"`
	Slug             string            `json:"slug"`
	Date             string            `json:"date"`
	Keywords         string            `json:"keywords"`
	Category         []string          `json:"category"`
	CoverImage       *Image            `json:"coverImage"`
	AuthorCollection *AuthorCollection `json:"authorCollection"`
	Text             *RichText         `json:"text"`
}

// Authors unwraps the author collection, which may be absent entirely.
func (p *Post) Authors() []Author {
	if p == nil || p.AuthorCollection == nil {
		return nil
	}
	return p.AuthorCollection.Items
}

type Image struct {
	URL string `json:"url"`
}

type AuthorCollection struct {
	Items []Author `json:"items"`
}

type Author struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	TwitterLink string `json:"twitterLink"`
	DiscordLink string `json:"discordLink"`
	Image       *Image `json:"image"`
}

// RichText carries the document tree plus the link tables resolving its
// embedded references.
type RichText struct {
	JSON  richtext.Node  `json:"json"`
	Links richtext.Links `json:"links"`
}

type postCollection struct {
	Total int    `json:"total"`
	Items []Post `json:"items"`
}

type postCollectionResponse struct {
	BlogPostCollection *postCollection `json:"blogPostCollection"`
}

type postByIDResponse struct {
	BlogPost *struct {
		Slug string `json:"slug"`
	} `json:"blogPost"`
}

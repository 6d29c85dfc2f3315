package contentful

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/machinebox/graphql"

	"compass-backend/internal/config"
)

const itemsFragment = `
fragment ItemsFragment on BlogPost {
  authorCollection(limit: 5) {
    items {
      name
      title
      twitterLink
      discordLink
      image {
        url
      }
    }
  }
  category
  title
  subtitle
  slug
  date
  keywords
  coverImage {
    url
  }
}
`

const getAllPostsQuery = itemsFragment + `
query getAllBlogPosts($preview: Boolean!) {
  blogPostCollection(where: { hidden: false }, order: date_ASC, preview: $preview) {
    total
    items {
      ...ItemsFragment
    }
  }
}
`

const getPostBySlugQuery = itemsFragment + `
query getBlogPost($slug: String!, $preview: Boolean!) {
  blogPostCollection(where: { slug: $slug }, limit: 1, preview: $preview) {
    items {
      ...ItemsFragment
      text {
        json
        links {
          entries {
            block {
              ... on CodeBlock {
                __typename
                title
                lang
                code
                sys {
                  id
                }
              }
            }
          }
          assets {
            block {
              title
              url
              height
              width
              sys {
                id
              }
            }
          }
        }
      }
    }
  }
}
`

const relatedPostsQuery = itemsFragment + `
query additionalBlogPosts($preview: Boolean!, $categories: [String!]!) {
  blogPostCollection(where: { category_contains_some: $categories }, limit: 6, preview: $preview) {
    items {
      ...ItemsFragment
    }
  }
}
`

const findPostByIDQuery = `
query findBlogById($id: String!, $preview: Boolean!) {
  blogPost(id: $id, preview: $preview) {
    slug
  }
}
`

// Client talks to Contentful: GraphQL for delivery queries, REST for the
// management API. The preview flag on each call switches between the
// published-only and draft-inclusive datasets and their tokens.
type Client struct {
	gql        *graphql.Client
	httpClient *http.Client
	cfg        config.ContentfulConfig
}

func NewClient(cfg config.ContentfulConfig) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	return &Client{
		gql:        graphql.NewClient(cfg.Endpoint, graphql.WithHTTPClient(httpClient)),
		httpClient: httpClient,
		cfg:        cfg,
	}
}

func (c *Client) token(preview bool) string {
	if preview {
		return c.cfg.PreviewToken
	}
	return c.cfg.DeliveryToken
}

func (c *Client) run(ctx context.Context, query string, vars map[string]interface{}, preview bool, out interface{}) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Var("preview", preview)
	req.Header.Set("Authorization", "Bearer "+c.token(preview))

	if err := c.gql.Run(ctx, req, out); err != nil {
		return fmt.Errorf("contentful query failed: %w", err)
	}
	return nil
}

// GetAllPosts lists visible posts, date ascending.
func (c *Client) GetAllPosts(ctx context.Context, preview bool) ([]Post, error) {
	var resp postCollectionResponse
	if err := c.run(ctx, getAllPostsQuery, nil, preview, &resp); err != nil {
		return nil, err
	}

	if resp.BlogPostCollection == nil {
		return nil, nil
	}
	return resp.BlogPostCollection.Items, nil
}

// GetPostBySlug fetches one post including its rich-text document and link
// tables. Returns ErrNotFound when no post carries the slug.
func (c *Client) GetPostBySlug(ctx context.Context, slug string, preview bool) (*Post, error) {
	var resp postCollectionResponse
	if err := c.run(ctx, getPostBySlugQuery, map[string]interface{}{"slug": slug}, preview, &resp); err != nil {
		return nil, err
	}

	if resp.BlogPostCollection == nil || len(resp.BlogPostCollection.Items) == 0 {
		return nil, ErrNotFound
	}
	return &resp.BlogPostCollection.Items[0], nil
}

// GetRelatedPosts fetches posts sharing any of the given categories,
// capped at six by the query.
func (c *Client) GetRelatedPosts(ctx context.Context, categories []string, preview bool) ([]Post, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	var resp postCollectionResponse
	if err := c.run(ctx, relatedPostsQuery, map[string]interface{}{"categories": categories}, preview, &resp); err != nil {
		return nil, err
	}

	if resp.BlogPostCollection == nil {
		return nil, nil
	}
	return resp.BlogPostCollection.Items, nil
}

// FindPostByID resolves an entry id to its post, returning only the slug.
// The webhook handler uses this with preview=true for deleted entries.
func (c *Client) FindPostByID(ctx context.Context, id string, preview bool) (*Post, error) {
	var resp postByIDResponse
	if err := c.run(ctx, findPostByIDQuery, map[string]interface{}{"id": id}, preview, &resp); err != nil {
		return nil, err
	}

	if resp.BlogPost == nil {
		return nil, ErrNotFound
	}
	return &Post{Slug: resp.BlogPost.Slug}, nil
}

package contentful

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-backend/internal/config"
)

func TestFindPostByID(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"blogPost":{"slug":"my-post"}}}`))
	}))
	defer srv.Close()

	client := NewClient(config.ContentfulConfig{
		Endpoint:     srv.URL,
		PreviewToken: "preview-token",
	})

	post, err := client.FindPostByID(context.Background(), "entry123", true)
	require.NoError(t, err)

	assert.Equal(t, "my-post", post.Slug)
	assert.Equal(t, "Bearer preview-token", gotAuth, "preview lookups must use the preview token")
	assert.Equal(t, "entry123", gotBody.Variables["id"])
	assert.Equal(t, true, gotBody.Variables["preview"])
}

func TestFindPostByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"blogPost":null}}`))
	}))
	defer srv.Close()

	client := NewClient(config.ContentfulConfig{Endpoint: srv.URL})

	_, err := client.FindPostByID(context.Background(), "gone", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPostBySlugParsesDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"blogPostCollection":{"items":[{
			"title":"Hello",
			"slug":"hello",
			"category":["News"],
			"text":{
				"json":{"nodeType":"document","content":[{"nodeType":"paragraph","content":[{"nodeType":"text","value":"hi"}]}]},
				"links":{"entries":{"block":[]},"assets":{"block":[{"sys":{"id":"a1"},"title":"pic","url":"https://img/x.png","width":1,"height":2}]}}
			}
		}]}}}`))
	}))
	defer srv.Close()

	client := NewClient(config.ContentfulConfig{Endpoint: srv.URL, DeliveryToken: "d"})

	post, err := client.GetPostBySlug(context.Background(), "hello", false)
	require.NoError(t, err)

	assert.Equal(t, "Hello", post.Title)
	require.NotNil(t, post.Text)
	assert.Equal(t, "document", post.Text.JSON.NodeType)
	require.Len(t, post.Text.Links.Assets.Block, 1)
	assert.Equal(t, "a1", post.Text.Links.Assets.Block[0].Sys.ID)
}

func TestGetAllCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces/space1/environments/master/content_types/blogPost", r.URL.Path)
		assert.Equal(t, "Bearer mgmt-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fields":[
			{"id":"title","type":"Symbol"},
			{"id":"category","type":"Array","items":{"type":"Symbol","validations":[{"in":["News","Guides","Updates"]}]}}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(config.ContentfulConfig{
		ManagementURL:   srv.URL,
		ManagementToken: "mgmt-token",
		SpaceID:         "space1",
		Environment:     "master",
	})

	categories, err := client.GetAllCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"News", "Guides", "Updates"}, categories)
}

func TestGetAllCategoriesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(config.ContentfulConfig{ManagementURL: srv.URL})

	_, err := client.GetAllCategories(context.Background())
	assert.Error(t, err)
}

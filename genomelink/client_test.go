package genomelink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchTraits(t *testing.T) {
	scores := map[string]int{"openness": 4, "neuroticism": 1}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "european", r.URL.Query().Get("population"))
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/reports/"), "/")
		score, ok := scores[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary":{"score":` + strconv.Itoa(score) + `,"text":"x"},"phenotype":{"url_name":"` + name + `"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "tok")
	traits, err := c.FetchTraits(context.Background(), []string{"openness", "neuroticism"})
	require.NoError(t, err)
	assert.Equal(t, []Trait{{Name: "openness", Score: 4}, {Name: "neuroticism", Score: 1}}, traits)

	_, err = c.FetchTraits(context.Background(), []string{"openness", "height"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFetchTraitsBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tok").FetchTraits(context.Background(), []string{"openness"})
	assert.Error(t, err)
}

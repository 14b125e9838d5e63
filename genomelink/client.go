// client.go - Client for the Genomelink reports API
// Each personality report is fetched separately and reduced to a scored trait

package genomelink // Declares the package name

import ( // Import required packages
	"context"  // Request cancellation
	"fmt"      // Error wrapping
	"io"       // Bounded body reads
	"net/http" // HTTP client
	"net/url"  // Path and query escaping
	"strings"  // Base URL cleanup
	"time"     // Client timeout

	"github.com/bytedance/sonic" // Fast JSON decoding
)

// PersonalityReports - Trait reports imported by default
var PersonalityReports = []string{
	"agreeableness",
	"conscientiousness",
	"extraversion",
	"neuroticism",
	"openness",
}

// Trait - One scored report
type Trait struct {
	Name  string // Report name, e.g. "openness"
	Score int    // Report score as returned by the API
}

type report struct { // Subset of the report response we read
	Summary struct {
		Score int    `json:"score"`
		Text  string `json:"text"`
	} `json:"summary"`
	Phenotype struct {
		URLName     string `json:"url_name"`
		DisplayName string `json:"display_name"`
	} `json:"phenotype"`
}

// Client - Reports API client
type Client struct {
	BaseURL    string       // API root, without trailing slash
	Token      string       // Bearer token
	Population string       // Reference population for scores
	HTTP       *http.Client // Underlying HTTP client
}

// NewClient - Returns a client with the default population and timeout
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		Population: "european",
		HTTP:       &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchTraits - Requests each named report and returns the traits in the
// same order. The first failing report aborts the fetch.
func (c *Client) FetchTraits(ctx context.Context, names []string) ([]Trait, error) {
	traits := make([]Trait, 0, len(names))
	for _, name := range names {
		t, err := c.fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		traits = append(traits, t)
	}
	return traits, nil
}

func (c *Client) fetch(ctx context.Context, name string) (Trait, error) {
	u := fmt.Sprintf("%s/v1/reports/%s/?population=%s",
		c.BaseURL, url.PathEscape(name), url.QueryEscape(c.Population))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Trait{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token) // API token
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Trait{}, fmt.Errorf("genomelink %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // Reports are small, cap at 1MB
	if err != nil {
		return Trait{}, fmt.Errorf("genomelink %s: read body: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Trait{}, fmt.Errorf("genomelink %s: unexpected status %d", name, resp.StatusCode)
	}

	var r report
	if err := sonic.Unmarshal(body, &r); err != nil {
		return Trait{}, fmt.Errorf("genomelink %s: decode: %w", name, err)
	}
	return Trait{Name: name, Score: r.Summary.Score}, nil
}

package media

import (
	"context"
	"log"
	"net/http"
	"time"
)

// RedirectResolver follows HTTP redirects to find the canonical source
// URL behind short links before handing it to the extractor.
type RedirectResolver struct {
	client *http.Client
}

// NewRedirectResolver creates a resolver with a bounded request timeout.
func NewRedirectResolver(timeout time.Duration) *RedirectResolver {
	return &RedirectResolver{
		client: &http.Client{Timeout: timeout},
	}
}

// Resolve performs a GET following redirects and returns the final URL.
// Resolution is best effort: on any network failure the original URL is
// returned unchanged so extraction still gets attempted on the raw link.
func (r *RedirectResolver) Resolve(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return rawURL
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/121.0")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("Redirect resolution failed for %s, using original URL: %v", rawURL, err)
		return rawURL
	}
	defer resp.Body.Close()

	return resp.Request.URL.String()
}

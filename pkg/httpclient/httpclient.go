package httpclient

import (
	"net/http"
	"os"
	"strings"
)

// UserAgent is sent on every request; the GitHub API rejects requests
// without one.
const UserAgent = "subtis-windows-cli"

// New creates an HTTP client that stamps the installer user agent on every
// request and adds the GitHub token from GITHUB_TOKEN when talking to GitHub.
func New() *http.Client {
	return &http.Client{
		Transport: &installerTransport{
			Base: http.DefaultTransport,
		},
	}
}

// installerTransport is a RoundTripper that decorates outgoing requests.
type installerTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface
func (t *installerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req2 := req.Clone(req.Context())

	req2.Header.Set("User-Agent", UserAgent)

	if isGitHubURL(req2.URL.String()) {
		if token := os.Getenv("GITHUB_TOKEN"); token != "" {
			req2.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return t.Base.RoundTrip(req2)
}

// isGitHubURL checks if a URL is a GitHub URL
func isGitHubURL(url string) bool {
	return strings.Contains(url, "github.com") || strings.Contains(url, "api.github.com") || strings.Contains(url, "githubusercontent.com")
}

package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/lndgalante/windows-subtis-cli/pkg/config"
	"github.com/lndgalante/windows-subtis-cli/pkg/httpclient"
)

// ErrAssetNotFound is returned when the resolved release carries no asset
// with the expected name.
var ErrAssetNotFound = errors.New("release has no matching asset")

// Release represents the GitHub API response for a release.
type Release struct {
	TagName string  `json:"tag_name"`
	Name    string  `json:"name"`
	Assets  []Asset `json:"assets"`
}

// Asset describes a downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Resolution is the outcome of asset resolution: a concrete download URL and
// the effective version, empty when it cannot be known (explicit URL with no
// pinned version).
type Resolution struct {
	URL     string
	Version string
}

// Resolver turns installer configuration into a downloadable asset URL.
type Resolver struct {
	Client  *http.Client
	BaseURL string
}

// NewResolver creates a Resolver against the public GitHub API.
func NewResolver() *Resolver {
	return &Resolver{
		Client:  httpclient.New(),
		BaseURL: "https://api.github.com",
	}
}

// Resolve produces the asset URL for the configured version. An explicit
// asset URL short-circuits without any API call.
func (r *Resolver) Resolve(ctx context.Context, cfg *config.Config) (*Resolution, error) {
	if cfg.AssetURL != "" {
		log.Debugf("using explicit asset URL: %s", cfg.AssetURL)
		return &Resolution{URL: cfg.AssetURL, Version: cfg.Version}, nil
	}

	var url string
	if tag := cfg.Tag(); tag != "" {
		log.Infof("resolving release %s of %s/%s", tag, cfg.Owner, cfg.Repo)
		url = fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s", r.BaseURL, cfg.Owner, cfg.Repo, tag)
	} else {
		log.Infof("resolving latest release of %s/%s", cfg.Owner, cfg.Repo)
		url = fmt.Sprintf("%s/repos/%s/%s/releases/latest", r.BaseURL, cfg.Owner, cfg.Repo)
	}

	rel, err := r.fetchRelease(ctx, url)
	if err != nil {
		return nil, err
	}

	asset, ok := findAsset(rel.Assets, config.AssetName)
	if !ok {
		return nil, errors.Wrapf(ErrAssetNotFound, "release %s has no asset named %s", rel.TagName, config.AssetName)
	}

	version := cfg.Version
	if version == "" {
		version = strings.TrimPrefix(rel.TagName, "v")
	}

	return &Resolution{URL: asset.BrowserDownloadURL, Version: version}, nil
}

func (r *Resolver) fetchRelease(ctx context.Context, url string) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch release")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, string(body))
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, errors.Wrap(err, "failed to decode release response")
	}
	return &rel, nil
}

func findAsset(assets []Asset, name string) (Asset, bool) {
	for _, a := range assets {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

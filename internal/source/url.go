package source

import (
	"context"
	"io"
	"net/http"
	neturl "net/url"
	"path"

	"github.com/samber/oops"
	"resty.dev/v3"
)

// Fetcher downloads snippet inputs over HTTP. One client is shared across
// fetches within a render run.
type Fetcher struct {
	client *resty.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: resty.New()}
}

// Fetch downloads the content at url and returns it as a named input.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Input, error) {
	response, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			Wrapf(err, "downloading snippet input")
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			With("status", response.StatusCode()).
			Errorf("snippet input returned non-success status %d", response.StatusCode())
	}

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			Wrapf(err, "reading response body")
	}

	return &Input{Name: filenameFromURL(url), Content: content}, nil
}

func filenameFromURL(rawURL string) string {
	parsed, err := neturl.Parse(rawURL)
	if err == nil {
		baseName := path.Base(parsed.Path)
		if baseName != "" && baseName != "." && baseName != "/" {
			return baseName
		}
	}

	return "download"
}

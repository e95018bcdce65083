package widgets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dashboard/models"
)

const imageAlt = "Tech & Startup Inspiration"

// ImageSource picks a random image. The random endpoint redirects to a
// concrete image; the final URL after redirects is what the page shows.
type ImageSource struct {
	Client      *http.Client
	URL         string
	FallbackURL string
	Now         func() time.Time
}

func NewImageSource(client *http.Client, url, fallbackURL string, now func() time.Time) *ImageSource {
	return &ImageSource{Client: client, URL: url, FallbackURL: fallbackURL, Now: now}
}

func (s *ImageSource) Name() string  { return "image" }
func (s *ImageSource) Title() string { return "Tech Inspiration" }

func (s *ImageSource) Fetch(ctx context.Context) (any, error) {
	// A timestamp defeats upstream and browser caching so every refresh is new.
	sep := "?"
	if strings.Contains(s.URL, "?") {
		sep = "&"
	}
	target := s.URL + sep + strconv.FormatInt(s.Now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", target, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{URL: target, StatusCode: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("request %s: unexpected content type %q", target, ct)
	}

	return models.ImageData{URL: resp.Request.URL.String(), Alt: imageAlt}, nil
}

func (s *ImageSource) Fallback() any {
	return models.ImageData{URL: s.FallbackURL, Alt: imageAlt}
}

func (s *ImageSource) Decode(data []byte) (any, error) {
	return decodeAs[models.ImageData](data)
}

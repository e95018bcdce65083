package widgets

import (
	"context"
	"errors"
	"net/http"

	"dashboard/models"
)

var defaultQuote = models.QuoteData{
	Content: "Innovation distinguishes between a leader and a follower.",
	Author:  "Steve Jobs",
	Tags:    []string{"technology", "business", "innovation"},
}

// QuoteSource reads a random quote from the Quotable API. It falls back to a
// fixed quote when the API is unavailable.
type QuoteSource struct {
	Client *http.Client
	URL    string
}

func NewQuoteSource(client *http.Client, url string) *QuoteSource {
	return &QuoteSource{Client: client, URL: url}
}

func (s *QuoteSource) Name() string  { return "quote" }
func (s *QuoteSource) Title() string { return "Quote of the Day" }

func (s *QuoteSource) Fetch(ctx context.Context) (any, error) {
	var quote models.QuoteData
	if err := getJSON(ctx, s.Client, s.URL, &quote); err != nil {
		return nil, err
	}
	if quote.Content == "" {
		return nil, errors.New("quote response has no content")
	}
	return quote, nil
}

func (s *QuoteSource) Fallback() any {
	return defaultQuote
}

func (s *QuoteSource) Decode(data []byte) (any, error) {
	return decodeAs[models.QuoteData](data)
}

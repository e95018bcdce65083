package widgets

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dashboard/models"
)

type coinGeckoResponse struct {
	Bitcoin *struct {
		USD           float64 `json:"usd"`
		EUR           float64 `json:"eur"`
		LastUpdatedAt int64   `json:"last_updated_at"`
	} `json:"bitcoin"`
}

// PriceSource reads the Bitcoin price from the CoinGecko simple price API.
type PriceSource struct {
	Client *http.Client
	URL    string
}

func NewPriceSource(client *http.Client, url string) *PriceSource {
	return &PriceSource{Client: client, URL: url}
}

func (s *PriceSource) Name() string  { return "price" }
func (s *PriceSource) Title() string { return "Bitcoin Price" }

func (s *PriceSource) ErrorMessage() string { return "Failed to fetch Bitcoin price" }

func (s *PriceSource) Fetch(ctx context.Context) (any, error) {
	var resp coinGeckoResponse
	if err := getJSON(ctx, s.Client, s.URL, &resp); err != nil {
		return nil, err
	}
	if resp.Bitcoin == nil {
		return nil, errors.New("price response has no bitcoin entry")
	}

	return models.PriceData{
		USD: models.PriceQuote{
			Rate:      FormatRate(resp.Bitcoin.USD),
			RateFloat: resp.Bitcoin.USD,
		},
		EUR: models.PriceQuote{
			Rate:      FormatRate(resp.Bitcoin.EUR),
			RateFloat: resp.Bitcoin.EUR,
		},
		Updated: time.Unix(resp.Bitcoin.LastUpdatedAt, 0).UTC().Format(http.TimeFormat),
	}, nil
}

func (s *PriceSource) Decode(data []byte) (any, error) {
	return decodeAs[models.PriceData](data)
}

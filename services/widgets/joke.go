package widgets

import (
	"context"
	"errors"
	"net/http"

	"dashboard/models"
)

// JokeSource reads a random joke from icanhazdadjoke.
type JokeSource struct {
	Client *http.Client
	URL    string
}

func NewJokeSource(client *http.Client, url string) *JokeSource {
	return &JokeSource{Client: client, URL: url}
}

func (s *JokeSource) Name() string  { return "joke" }
func (s *JokeSource) Title() string { return "Developer Joke" }

func (s *JokeSource) ErrorMessage() string { return "Failed to fetch joke" }

func (s *JokeSource) Fetch(ctx context.Context) (any, error) {
	var resp struct {
		ID     string `json:"id"`
		Joke   string `json:"joke"`
		Status int    `json:"status"`
	}
	if err := getJSON(ctx, s.Client, s.URL, &resp); err != nil {
		return nil, err
	}
	if resp.Joke == "" {
		return nil, errors.New("joke response has no joke")
	}
	return models.JokeData{ID: resp.ID, Joke: resp.Joke}, nil
}

func (s *JokeSource) Decode(data []byte) (any, error) {
	return decodeAs[models.JokeData](data)
}

package widgets

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"dashboard/models"
)

type goWeatherResponse struct {
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Description string `json:"description"`
	Forecast    []struct {
		Day         string `json:"day"`
		Temperature string `json:"temperature"`
		Wind        string `json:"wind"`
	} `json:"forecast"`
}

// iconRules is checked in order; the first rule with a matching keyword wins.
var iconRules = []struct {
	keywords []string
	icon     string
}{
	{[]string{"sun", "clear"}, "☀️"},
	{[]string{"cloud"}, "☁️"},
	{[]string{"rain"}, "🌧️"},
	{[]string{"snow"}, "❄️"},
	{[]string{"storm", "thunder"}, "⛈️"},
	{[]string{"fog", "mist"}, "🌫️"},
}

const defaultWeatherIcon = "🌤️"

// WeatherIcon maps a free-text weather description to an emoji.
func WeatherIcon(description string) string {
	d := strings.ToLower(description)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.icon
			}
		}
	}
	return defaultWeatherIcon
}

// WeatherSource reads current conditions for one city from goweather. It falls
// back to fixed sunny conditions when the API is unavailable.
type WeatherSource struct {
	Client  *http.Client
	BaseURL string
	City    string
}

func NewWeatherSource(client *http.Client, baseURL, city string) *WeatherSource {
	return &WeatherSource{Client: client, BaseURL: baseURL, City: city}
}

func (s *WeatherSource) Name() string  { return "weather" }
func (s *WeatherSource) Title() string { return "Weather" }

func (s *WeatherSource) Fetch(ctx context.Context) (any, error) {
	endpoint := strings.TrimSuffix(s.BaseURL, "/") + "/" + url.PathEscape(s.City)

	var resp goWeatherResponse
	if err := getJSON(ctx, s.Client, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Temperature == "" && resp.Description == "" {
		return nil, errors.New("weather response is empty")
	}

	data := models.WeatherData{
		Location:    s.City,
		Temperature: resp.Temperature,
		Description: resp.Description,
		Wind:        resp.Wind,
		Icon:        WeatherIcon(resp.Description),
	}
	for _, f := range resp.Forecast {
		data.Forecast = append(data.Forecast, models.ForecastDay{
			Day:         f.Day,
			Temperature: f.Temperature,
			Wind:        f.Wind,
		})
	}
	return data, nil
}

func (s *WeatherSource) Fallback() any {
	return models.WeatherData{
		Location:    s.City,
		Temperature: "22°C",
		Description: "Sunny",
		Icon:        "☀️",
	}
}

func (s *WeatherSource) Decode(data []byte) (any, error) {
	return decodeAs[models.WeatherData](data)
}

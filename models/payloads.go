package models

type PriceQuote struct {
	Rate      string  `json:"rate"`
	RateFloat float64 `json:"rateFloat"`
}

// PriceData is the Bitcoin price in the two displayed currencies.
type PriceData struct {
	USD     PriceQuote `json:"usd"`
	EUR     PriceQuote `json:"eur"`
	Updated string     `json:"updated"`
}

type QuoteData struct {
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags,omitempty"`
}

type ForecastDay struct {
	Day         string `json:"day"`
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
}

type WeatherData struct {
	Location    string        `json:"location"`
	Temperature string        `json:"temperature"`
	Description string        `json:"description"`
	Wind        string        `json:"wind,omitempty"`
	Icon        string        `json:"icon"`
	Forecast    []ForecastDay `json:"forecast,omitempty"`
}

type NameDayData struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type JokeData struct {
	ID   string `json:"id"`
	Joke string `json:"joke"`
}

type ClockData struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"timeZone"`
}

type ImageData struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

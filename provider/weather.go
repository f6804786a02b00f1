package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ulfmagnetics/trix-hub/display"
)

const defaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

// wmoConditions maps Open-Meteo WMO weather interpretation codes onto the
// coarse conditions the icon set can draw.
var wmoConditions = map[int]display.Condition{
	0:  display.ConditionSunny,        // clear sky
	1:  display.ConditionSunny,        // mainly clear
	2:  display.ConditionPartlyCloudy, // partly cloudy
	3:  display.ConditionCloudy,       // overcast
	45: display.ConditionCloudy,       // fog
	48: display.ConditionCloudy,       // depositing rime fog
	51: display.ConditionRainy,        // drizzle: light
	53: display.ConditionRainy,        // drizzle: moderate
	55: display.ConditionRainy,        // drizzle: dense
	61: display.ConditionRainy,        // rain: slight
	63: display.ConditionRainy,        // rain: moderate
	65: display.ConditionRainy,        // rain: heavy
	71: display.ConditionSnowy,        // snow fall: slight
	73: display.ConditionSnowy,        // snow fall: moderate
	75: display.ConditionSnowy,        // snow fall: heavy
	77: display.ConditionSnowy,        // snow grains
	80: display.ConditionRainy,        // rain showers: slight
	81: display.ConditionRainy,        // rain showers: moderate
	82: display.ConditionRainy,        // rain showers: violent
	85: display.ConditionSnowy,        // snow showers: slight
	86: display.ConditionSnowy,        // snow showers: heavy
	95: display.ConditionThunderstorm, // thunderstorm
	96: display.ConditionThunderstorm, // thunderstorm, slight hail
	99: display.ConditionThunderstorm, // thunderstorm, heavy hail
}

// WeatherOptions configures a WeatherSource. The zero value is not useful;
// fill in at least the location.
type WeatherOptions struct {
	Latitude      float64
	Longitude     float64
	LocationName  string
	Units         string // "fahrenheit" or "celsius"
	ForecastHours int    // hours between forecast points
	CacheFor      time.Duration

	// BaseURL overrides the Open-Meteo endpoint, mainly for tests.
	BaseURL string
	// Client overrides the HTTP client; defaults to a 10s-timeout client.
	Client *http.Client
}

// WeatherSource fetches current conditions and a short-term forecast from
// the Open-Meteo API. No API key required.
type WeatherSource struct {
	opts   WeatherOptions
	client *http.Client
	now    func() time.Time
}

// NewWeatherSource builds a weather source, filling in defaults for any
// unset option.
func NewWeatherSource(opts WeatherOptions) *WeatherSource {
	if opts.Units == "" {
		opts.Units = "fahrenheit"
	}
	if opts.ForecastHours <= 0 {
		opts.ForecastHours = 3
	}
	if opts.CacheFor <= 0 {
		opts.CacheFor = 10 * time.Minute
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultOpenMeteoURL
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WeatherSource{opts: opts, client: client, now: time.Now}
}

func (s *WeatherSource) CacheDuration() time.Duration { return s.opts.CacheFor }

type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		WeatherCode   int     `json:"weathercode"`
		WindSpeed     float64 `json:"windspeed_10m"`
		WindDirection float64 `json:"winddirection_10m"`
	} `json:"current"`
	Hourly struct {
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weathercode"`
	} `json:"hourly"`
}

// FetchData queries Open-Meteo for the current observation plus forecast
// points at +N and +2N hours. Transport and decoding problems are fetch
// errors; no placeholder data is fabricated.
func (s *WeatherSource) FetchData(ctx context.Context) (display.Data, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(), nil)
	if err != nil {
		return display.Data{}, fmt.Errorf("weather: build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return display.Data{}, fmt.Errorf("weather: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return display.Data{}, fmt.Errorf("weather: unexpected status %s", resp.Status)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return display.Data{}, fmt.Errorf("weather: decode response: %w", err)
	}
	if len(body.Hourly.Temperature) == 0 || len(body.Hourly.Temperature) != len(body.Hourly.WeatherCode) {
		return display.Data{}, fmt.Errorf("weather: malformed hourly series")
	}

	now := s.now()
	interval := s.opts.ForecastHours
	return display.Data{
		Content: display.WeatherContent{
			Location: s.opts.LocationName,
			Units:    s.opts.Units,
			Current: display.Observation{
				Temperature:   roundInt(body.Current.Temperature),
				Condition:     mapWeatherCode(body.Current.WeatherCode),
				WindSpeed:     roundInt(body.Current.WindSpeed),
				WindDirection: roundInt(body.Current.WindDirection),
				TimeLabel:     "Now",
			},
			Forecast1: s.outlookAt(&body, interval),
			Forecast2: s.outlookAt(&body, interval*2),
		},
		FetchedAt: now,
		Meta: display.Metadata{
			Priority:   "normal",
			DisplayFor: 30 * time.Second,
		},
	}, nil
}

func (s *WeatherSource) requestURL() string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(s.opts.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(s.opts.Longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m,weathercode,windspeed_10m,winddirection_10m")
	q.Set("hourly", "temperature_2m,weathercode")
	q.Set("temperature_unit", s.opts.Units)
	q.Set("windspeed_unit", "mph")
	q.Set("forecast_days", "1")
	q.Set("timezone", "auto")
	return s.opts.BaseURL + "?" + q.Encode()
}

// outlookAt picks the forecast point hoursAhead into the hourly series,
// clamped to the end of the day Open-Meteo returned.
func (s *WeatherSource) outlookAt(body *openMeteoResponse, hoursAhead int) display.Outlook {
	idx := hoursAhead
	if last := len(body.Hourly.Temperature) - 1; idx > last {
		idx = last
	}
	return display.Outlook{
		Temperature: roundInt(body.Hourly.Temperature[idx]),
		Condition:   mapWeatherCode(body.Hourly.WeatherCode[idx]),
		HoursAhead:  hoursAhead,
		TimeLabel:   fmt.Sprintf("+%dh", hoursAhead),
	}
}

func mapWeatherCode(code int) display.Condition {
	if c, ok := wmoConditions[code]; ok {
		return c
	}
	return display.ConditionCloudy
}

func roundInt(v float64) int { return int(math.Round(v)) }

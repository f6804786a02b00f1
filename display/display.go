// Package display defines the renderer-agnostic data model shared by
// providers and renderers. A provider produces a Data value; any renderer can
// turn it into target-specific output without knowing where it came from.
package display

import (
	"image"
	"time"
)

// Kind discriminates what a piece of content semantically is.
type Kind string

const (
	KindTime     Kind = "time"
	KindWeather  Kind = "weather"
	KindArrivals Kind = "bus_arrivals"
	KindImage    Kind = "image"
)

// Content is the tagged-union side of the model: one variant per Kind, each
// with its own typed field set. Renderers dispatch on the concrete type and
// must tolerate variants they do not recognize.
type Content interface {
	Kind() Kind
}

// Metadata carries rendering hints that are not part of the content itself.
type Metadata struct {
	Priority   string
	DisplayFor time.Duration
}

// Data is an immutable snapshot produced by a provider. Renderers receive it
// by value and must never mutate it; slices inside variants are read-only by
// convention.
type Data struct {
	Content   Content
	FetchedAt time.Time
	Meta      Metadata
}

// TimeContent holds the current instant preformatted in the layouts the
// bitmap renderer draws from.
type TimeContent struct {
	Now          time.Time
	Time12       string // "03:04 PM"
	Time24       string // "15:04"
	Date         string // "2006-01-02"
	DateShort    string // "01/02"
	DateUS       string // "01/02/2006"
	Weekday      string // "Monday"
	WeekdayShort string // "Mon"
}

func (TimeContent) Kind() Kind { return KindTime }

// Condition names a coarse weather state that maps 1:1 onto an icon.
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionSnowy        Condition = "snowy"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionWindy        Condition = "windy"
	ConditionError        Condition = "error"
)

// Observation is the current weather reading.
type Observation struct {
	Temperature   int // rounded, in configured units
	Condition     Condition
	WindSpeed     int // mph, rounded
	WindDirection int // meteorological degrees, 0 = from north
	TimeLabel     string
	AQI           *int // nil when no air-quality reading is available
}

// Outlook is a forecast point some hours ahead.
type Outlook struct {
	Temperature int
	Condition   Condition
	HoursAhead  int
	TimeLabel   string
}

// WeatherContent holds the current observation plus two forecast points.
type WeatherContent struct {
	Location  string
	Units     string
	Current   Observation
	Forecast1 Outlook
	Forecast2 Outlook
}

func (WeatherContent) Kind() Kind { return KindWeather }

// Urgency buckets an arrival by how soon it is.
type Urgency string

const (
	UrgencyUrgent Urgency = "urgent" // under 5 minutes
	UrgencySoon   Urgency = "soon"   // 5 to 10 minutes
	UrgencyNormal Urgency = "normal" // 10 minutes or more
)

// UrgencyFor buckets minutes-until-arrival into an Urgency.
func UrgencyFor(minutes int) Urgency {
	switch {
	case minutes < 5:
		return UrgencyUrgent
	case minutes < 10:
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}

// Arrival is one upcoming transit arrival at the watched stop.
type Arrival struct {
	Route     string
	Minutes   int
	Scheduled bool // true when no realtime vehicle data backs the estimate
	Urgency   Urgency
}

// ArrivalsContent lists upcoming arrivals, soonest first.
type ArrivalsContent struct {
	StopID   string
	Arrivals []Arrival
}

func (ArrivalsContent) Kind() Kind { return KindArrivals }

// ImageContent carries one decoded image from a cycling source. The image is
// full resolution; fitting it to panel dimensions belongs to the renderer.
type ImageContent struct {
	Image image.Image
	Name  string
	Index int // 1-based position within the current cycle
	Total int
}

func (ImageContent) Kind() Kind { return KindImage }

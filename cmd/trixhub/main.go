// trixhub renders provider data for a 64x32 LED matrix, either posting BMP
// frames to a trix-server or previewing them in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"github.com/ulfmagnetics/trix-hub/ansi"
	"github.com/ulfmagnetics/trix-hub/client"
	"github.com/ulfmagnetics/trix-hub/config"
	"github.com/ulfmagnetics/trix-hub/display"
	"github.com/ulfmagnetics/trix-hub/provider"
	"github.com/ulfmagnetics/trix-hub/render"
	"github.com/ulfmagnetics/trix-hub/ui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config")
	mode := flag.String("mode", "ascii", "Output mode: ascii, watch, or post")
	providerName := flag.String("provider", "time", "Provider: time, weather, arrivals, or images")
	every := flag.Duration("every", 0, "Post mode repeat interval (0 = post once)")
	fontPath := flag.String("font", "", "Optional TrueType font file for the bitmap renderer")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	prov, title, cond, err := buildProvider(*providerName, cfg)
	if err != nil {
		log.Fatal(err)
	}

	var bitmapOpts []render.BitmapOption
	if *fontPath != "" {
		bitmapOpts = append(bitmapOpts, render.WithFontPath(*fontPath))
	}
	if !cfg.Providers.Time.Format12h {
		bitmapOpts = append(bitmapOpts, render.With24HourClock())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "ascii":
		err = runASCII(ctx, cfg, prov, title, bitmapOpts)
	case "watch":
		err = runWatch(cfg, prov, title, bitmapOpts)
	case "post":
		err = runPost(ctx, cfg, prov, cond, *every, bitmapOpts)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// buildProvider wires the named provider from config. The returned
// conditions gate post-mode iterations; nil means always run.
func buildProvider(name string, cfg config.Config) (*provider.Provider, string, *provider.Conditions, error) {
	switch name {
	case "time":
		if !cfg.Providers.Time.Enabled {
			return nil, "", nil, fmt.Errorf("time provider is disabled in config")
		}
		return provider.New(provider.NewTimeSource()), "Time", nil, nil

	case "weather":
		wc := cfg.Providers.Weather
		if !wc.Enabled {
			return nil, "", nil, fmt.Errorf("weather provider is disabled in config")
		}
		src := provider.NewWeatherSource(provider.WeatherOptions{
			Latitude:      wc.Location.Latitude,
			Longitude:     wc.Location.Longitude,
			LocationName:  wc.Location.Name,
			Units:         wc.Units,
			ForecastHours: wc.ForecastHours,
			CacheFor:      wc.CacheFor(),
		})
		title := "Weather"
		if wc.Location.Name != "" {
			title = "Weather - " + wc.Location.Name
		}
		return provider.New(src), title, wc.Conditions, nil

	case "images":
		ic := cfg.Providers.Images
		if !ic.Enabled {
			return nil, "", nil, fmt.Errorf("images provider is disabled in config")
		}
		return provider.New(provider.NewImageSource(ic.Dir)), "Images", ic.Conditions, nil

	case "arrivals":
		// No live GTFS feed wired yet; serve fixture data so the arrivals
		// layout can be exercised end to end.
		return provider.New(provider.NewStaticSource(demoArrivals(), time.Minute)), "Bus Arrivals", nil, nil

	default:
		return nil, "", nil, fmt.Errorf("unknown provider %q", name)
	}
}

// colorMode resolves the preview encoding, inspecting the environment only
// here so renderers stay configuration-driven.
func colorMode(setting string) (ansi.Mode, error) {
	if setting == "" || setting == "auto" {
		if termenv.ColorProfile() == termenv.TrueColor {
			return ansi.ModeTrueColor, nil
		}
		return ansi.Mode256, nil
	}
	return ansi.ParseMode(setting)
}

func newANSIRenderer(cfg config.Config, bitmapOpts []render.BitmapOption) (*ansi.Renderer, error) {
	mode, err := colorMode(cfg.UI.Color)
	if err != nil {
		return nil, err
	}
	return ansi.NewRenderer(cfg.Matrix.Width, cfg.Matrix.Height,
		ansi.WithMode(mode), ansi.WithBitmapOptions(bitmapOpts...))
}

func runASCII(ctx context.Context, cfg config.Config, prov *provider.Provider, title string, bitmapOpts []render.BitmapOption) error {
	r, err := newANSIRenderer(cfg, bitmapOpts)
	if err != nil {
		return err
	}
	data, err := prov.GetData(ctx)
	if err != nil {
		return err
	}
	fmt.Println(r.Frame(title, data))
	fmt.Printf("\nkind=%s fetched=%s\n", data.Content.Kind(), data.FetchedAt.Format(time.RFC3339))
	return nil
}

func runWatch(cfg config.Config, prov *provider.Provider, title string, bitmapOpts []render.BitmapOption) error {
	r, err := newANSIRenderer(cfg, bitmapOpts)
	if err != nil {
		return err
	}
	return ui.Run(ui.New(prov, r, title, cfg.UI.Refresh()))
}

func runPost(ctx context.Context, cfg config.Config, prov *provider.Provider, cond *provider.Conditions, every time.Duration, bitmapOpts []render.BitmapOption) error {
	bitmap, err := render.NewBitmap(cfg.Matrix.Width, cfg.Matrix.Height, bitmapOpts...)
	if err != nil {
		return err
	}

	var sinks []client.Sink
	var matrix *client.Matrix
	if cfg.Matrix.Server != "" {
		matrix = client.NewMatrix(cfg.Matrix.Server, cfg.Matrix.Width, cfg.Matrix.Height,
			client.WithTimeout(cfg.Matrix.Timeout()))
		sinks = append(sinks, matrix)
	}
	if cfg.Matrix.Server == "" || cfg.Matrix.SaveDebug {
		file, err := client.NewFile(cfg.Matrix.OutputDir)
		if err != nil {
			return err
		}
		sinks = append(sinks, file)
	}

	postOnce := func() {
		if !cond.ShouldRun(time.Now()) {
			log.Printf("conditions not met, skipping")
			return
		}
		data, err := prov.GetData(ctx)
		if err != nil {
			// Hold the last good frame rather than blanking the panel.
			cached, ok := prov.Cached()
			if !ok {
				log.Printf("fetch failed, no data yet: %v", err)
				return
			}
			log.Printf("fetch failed, reposting stale data: %v", err)
			data = cached
		}
		grid := bitmap.Render(data)
		for _, sink := range sinks {
			if err := sink.PostBitmap(ctx, grid); err != nil {
				log.Printf("post: %v", err)
			}
		}
	}

	postOnce()
	if every <= 0 {
		return nil
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			postOnce()
		case <-ctx.Done():
			// Blank the panel on the way out so it doesn't show stale data
			// forever.
			if matrix != nil {
				clearCtx, cancel := context.WithTimeout(context.Background(), cfg.Matrix.Timeout())
				defer cancel()
				if err := matrix.Clear(clearCtx); err != nil {
					log.Printf("clear display: %v", err)
				}
			}
			return nil
		}
	}
}

// demoArrivals is the fixture payload behind the arrivals provider.
func demoArrivals() display.Data {
	now := time.Now()
	mk := func(route string, minutes int, scheduled bool) display.Arrival {
		return display.Arrival{
			Route:     route,
			Minutes:   minutes,
			Scheduled: scheduled,
			Urgency:   display.UrgencyFor(minutes),
		}
	}
	return display.Data{
		Content: display.ArrivalsContent{
			StopID: "demo",
			Arrivals: []display.Arrival{
				mk("67", 3, false),
				mk("69", 7, false),
				mk("61D", 12, true),
				mk("28X", 25, true),
			},
		},
		FetchedAt: now,
		Meta:      display.Metadata{Priority: "normal", DisplayFor: 30 * time.Second},
	}
}

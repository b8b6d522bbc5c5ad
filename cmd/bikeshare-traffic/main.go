package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	lib "github.com/theoremus-urban-solutions/bikeshare-traffic"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/config"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/dataset"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	minute := flag.Int("minute", traffic.AnyTime, "minute of day for oneshot (-1 = unfiltered)")
	stationsSrc := flag.String("stations", "", "stations CSV path or URL (overrides config)")
	tripsSrc := flag.String("trips", "", "trips CSV path or URL (overrides config)")
	timezone := flag.String("timezone", "", "IANA timezone for trip timestamps (overrides config)")
	flag.Parse()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}
	if err := lib.InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
	}
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config

	if *stationsSrc == "" {
		*stationsSrc = cfg.Dataset.StationsURL
	}
	if *tripsSrc == "" {
		*tripsSrc = cfg.Dataset.TripsURL
	}
	if *timezone == "" {
		*timezone = cfg.Dataset.Timezone
	}
	loc, err := time.LoadLocation(*timezone)
	if err != nil {
		log.Fatalf("timezone %q: %v", *timezone, err)
	}

	stations, err := dataset.LoadStations(*stationsSrc)
	if err != nil {
		log.Fatalf("load stations: %v", err)
	}
	trips, err := dataset.LoadTrips(*tripsSrc, loc)
	if err != nil {
		log.Fatalf("load trips: %v", err)
	}

	engine := traffic.NewEngine(stations, trips, traffic.ScaleConfig{
		UnfilteredRadiusMax: cfg.Map.UnfilteredRadiusMax,
		FilteredRadiusMin:   cfg.Map.FilteredRadiusMin,
		FilteredRadiusMax:   cfg.Map.FilteredRadiusMax,
	})
	app := lib.NewApp(engine)

	switch *mode {
	case "serve":
		lib.StartServer(app, cfg.Server.Port)
		lib.HandleGracefulShutdown()
	case "oneshot":
		buf, err := app.StationsJSON(*minute)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(string(buf))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DatasetConfig points at the station and trip CSV sources and fixes
// the time zone trip timestamps are parsed in.
type DatasetConfig struct {
	StationsURL string `yaml:"stationsURL" validate:"required"`
	TripsURL    string `yaml:"tripsURL" validate:"required"`
	Timezone    string `yaml:"timezone" validate:"omitempty,timezone"`
}

// MapConfig contains the marker radius ranges handed to the traffic
// engine. Zero values mean "use the default range".
type MapConfig struct {
	UnfilteredRadiusMax float64 `yaml:"unfilteredRadiusMax" validate:"gte=0"`
	FilteredRadiusMin   float64 `yaml:"filteredRadiusMin" validate:"gte=0"`
	FilteredRadiusMax   float64 `yaml:"filteredRadiusMax" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Dataset DatasetConfig `yaml:"dataset" validate:"required"`
	Map     MapConfig     `yaml:"map"`
}

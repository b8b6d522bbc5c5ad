package config

import "testing"

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
dataset:
  stationsURL: testdata/stations.csv
  tripsURL: testdata/trips.csv
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Server.Port != 16181 {
		t.Errorf("default port = %d, want 16181", cfg.Server.Port)
	}
	if cfg.Dataset.Timezone != "UTC" {
		t.Errorf("default timezone = %q, want UTC", cfg.Dataset.Timezone)
	}
	if cfg.Map.UnfilteredRadiusMax != 25 || cfg.Map.FilteredRadiusMin != 3 || cfg.Map.FilteredRadiusMax != 50 {
		t.Errorf("unexpected default map config: %+v", cfg.Map)
	}
}

func TestParseFullConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
server:
  port: 8080
dataset:
  stationsURL: https://example.com/stations.csv
  tripsURL: https://example.com/trips.csv
  timezone: America/Montreal
map:
  unfilteredRadiusMax: 20
  filteredRadiusMin: 2
  filteredRadiusMax: 40
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Dataset.Timezone != "America/Montreal" {
		t.Errorf("timezone = %q", cfg.Dataset.Timezone)
	}
	if cfg.Map.FilteredRadiusMax != 40 {
		t.Errorf("filteredRadiusMax = %v, want 40", cfg.Map.FilteredRadiusMax)
	}
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "negative port",
			yaml: "server:\n  port: -1\ndataset:\n  stationsURL: a\n  tripsURL: b\n",
		},
		{
			name: "missing dataset sources",
			yaml: "server:\n  port: 8080\n",
		},
		{
			name: "bad timezone",
			yaml: "dataset:\n  stationsURL: a\n  tripsURL: b\n  timezone: Mars/Olympus\n",
		},
		{
			name: "not yaml",
			yaml: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

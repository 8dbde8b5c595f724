package bootstrap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"train_routes/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Fixture is the reference data seeded into a freshly created schema.
type Fixture struct {
	Stations    []models.Station       `yaml:"stations" validate:"required,dive"`
	Cities      []models.City          `yaml:"cities" validate:"dive"`
	Platforms   []models.Platform      `yaml:"platforms" validate:"required,dive"`
	TrainTypes  []models.TrainType     `yaml:"train_types" validate:"required,dive"`
	Trains      []models.Train         `yaml:"trains" validate:"required,dive"`
	Assignments []models.TrainPlatform `yaml:"assignments" validate:"required,dive"`
	Routes      []models.Route         `yaml:"routes" validate:"dive"`
}

// DefaultFixture returns the built-in stations, trains and routes.
func DefaultFixture() (*Fixture, error) {
	return LoadFixture(bytes.NewReader(defaultSeed))
}

// LoadFixture decodes and validates a YAML fixture.
func LoadFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks field constraints and that every reference points at a
// row of the fixture. Each train needs exactly one start and one end
// platform, otherwise its routes cannot be resolved.
func (f *Fixture) Validate() error {
	if err := validator.New().Struct(f); err != nil {
		return fmt.Errorf("invalid fixture: %w", err)
	}

	stations := make(map[int]bool, len(f.Stations))
	for _, s := range f.Stations {
		stations[s.ID] = true
	}
	platforms := make(map[int]bool, len(f.Platforms))
	for _, p := range f.Platforms {
		platforms[p.ID] = true
	}
	trainTypes := make(map[int]bool, len(f.TrainTypes))
	for _, tt := range f.TrainTypes {
		trainTypes[tt.ID] = true
	}
	trains := make(map[int]bool, len(f.Trains))
	for _, t := range f.Trains {
		trains[t.Number] = true
	}

	var errs []error
	for _, c := range f.Cities {
		if !stations[c.StationID] {
			errs = append(errs, fmt.Errorf("city %d references unknown station %d", c.ID, c.StationID))
		}
	}
	for _, p := range f.Platforms {
		if !stations[p.StationID] {
			errs = append(errs, fmt.Errorf("platform %d references unknown station %d", p.ID, p.StationID))
		}
	}
	for _, t := range f.Trains {
		if !trainTypes[t.TrainTypeID] {
			errs = append(errs, fmt.Errorf("train %d references unknown train type %d", t.Number, t.TrainTypeID))
		}
	}

	starts := make(map[int]int)
	ends := make(map[int]int)
	for _, a := range f.Assignments {
		if !trains[a.TrainNumber] {
			errs = append(errs, fmt.Errorf("assignment references unknown train %d", a.TrainNumber))
		}
		if !platforms[a.PlatformID] {
			errs = append(errs, fmt.Errorf("assignment of train %d references unknown platform %d", a.TrainNumber, a.PlatformID))
		}
		if a.Start {
			starts[a.TrainNumber]++
		} else {
			ends[a.TrainNumber]++
		}
	}
	for _, t := range f.Trains {
		if starts[t.Number] != 1 || ends[t.Number] != 1 {
			errs = append(errs, fmt.Errorf("train %d needs one start and one end platform, has %d and %d",
				t.Number, starts[t.Number], ends[t.Number]))
		}
	}

	for _, r := range f.Routes {
		if !trains[r.TrainNumber] {
			errs = append(errs, fmt.Errorf("route %d references unknown train %d", r.ID, r.TrainNumber))
		}
		if r.Arrival.Before(r.Departure) {
			errs = append(errs, fmt.Errorf("route %d arrives before it departs", r.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid fixture: %w", errors.Join(errs...))
	}
	return nil
}

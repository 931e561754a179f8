// Package cityfile loads tenant configurations from YAML. The tenants that
// ship with the service are baked into the binary; a directory of extra
// files can add cities or replace the built-in ones without a rebuild.
package cityfile

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"resonate/internal/core/domain"
	"resonate/internal/core/engine"
	"resonate/internal/core/port"
)

//go:embed cities/*.yaml
var builtin embed.FS

// Registry is an immutable, validated set of city configurations.
type Registry struct {
	cities map[string]*domain.CityConfig
	sorted []*domain.CityConfig
}

var _ port.CityRegistry = (*Registry)(nil)

// Load reads the built-in tenants and, when dir is not empty, every *.yaml
// file in dir. A file whose id matches a built-in tenant replaces it. Any
// malformed file fails the whole load.
func Load(dir string, logger *slog.Logger) (*Registry, error) {
	cities := make(map[string]*domain.CityConfig)

	sub, err := fs.Sub(builtin, "cities")
	if err != nil {
		return nil, eris.Wrap(err, "cityfile: open built-in cities")
	}
	if err := loadFS(sub, "builtin", cities, logger); err != nil {
		return nil, err
	}

	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, eris.Wrap(err, "cityfile: open city directory")
		}
		if !info.IsDir() {
			return nil, eris.Errorf("cityfile: %s is not a directory", dir)
		}
		if err := loadFS(os.DirFS(dir), dir, cities, logger); err != nil {
			return nil, err
		}
	}
	return newRegistry(cities), nil
}

// New builds a registry from configurations already in memory.
func New(cities ...*domain.CityConfig) (*Registry, error) {
	m := make(map[string]*domain.CityConfig, len(cities))
	for _, c := range cities {
		cc := *c
		cc.ID = normalizeID(cc.ID)
		if err := check(&cc); err != nil {
			return nil, err
		}
		m[cc.ID] = &cc
	}
	return newRegistry(m), nil
}

func newRegistry(cities map[string]*domain.CityConfig) *Registry {
	sorted := make([]*domain.CityConfig, 0, len(cities))
	for _, c := range cities {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &Registry{cities: cities, sorted: sorted}
}

// Get returns the city with the given id or domain.ErrCityNotFound.
func (r *Registry) Get(id string) (*domain.CityConfig, error) {
	c, ok := r.cities[normalizeID(id)]
	if !ok {
		return nil, domain.ErrCityNotFound
	}
	return c, nil
}

// List returns every city ordered by id.
func (r *Registry) List() []*domain.CityConfig {
	out := make([]*domain.CityConfig, len(r.sorted))
	copy(out, r.sorted)
	return out
}

func loadFS(fsys fs.FS, origin string, into map[string]*domain.CityConfig, logger *slog.Logger) error {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return eris.Wrapf(err, "cityfile: list %s", origin)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return eris.Wrapf(err, "cityfile: read %s", path.Join(origin, name))
		}
		city, err := Decode(data)
		if err != nil {
			var cfgErr *domain.ConfigError
			if errors.As(err, &cfgErr) {
				return err
			}
			return eris.Wrapf(err, "cityfile: decode %s", path.Join(origin, name))
		}
		if _, replaced := into[city.ID]; replaced {
			logger.Info("city configuration replaced", slog.String("city", city.ID), slog.String("source", origin))
		}
		into[city.ID] = city
		logger.Debug("city configuration loaded",
			slog.String("city", city.ID),
			slog.String("file", name),
			slog.Int("units", len(city.Geography.Units)),
		)
	}
	return nil
}

// Decode parses a single tenant document. Unknown keys are rejected so a
// misspelled field fails loudly instead of silently falling back to a
// default.
func Decode(data []byte) (*domain.CityConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var city domain.CityConfig
	if err := dec.Decode(&city); err != nil {
		return nil, err
	}
	city.ID = normalizeID(city.ID)
	if err := check(&city); err != nil {
		return nil, err
	}
	return &city, nil
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// check validates the configuration and makes sure its catalog can be
// grouped, so a bad group reference surfaces at load time.
func check(c *domain.CityConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := engine.GroupsFor(c); err != nil {
		return err
	}
	return nil
}

// Package config loads routeperm run settings.
//
// Settings come from four layers, later layers winning: built-in defaults,
// an optional TOML run file, environment variables (optionally seeded from a
// .env file), and finally command-line flags, which the CLI applies on top of
// the returned Config.
//
// A run file looks like:
//
//	lookup    = "data/look_up.json"
//	from      = "IA"
//	to        = "DC"
//	stops     = ["OH", "TX"]
//	unit      = "km"
//	max_stops = 8
//
//	[output]
//	routes  = "out/cypher.csv"
//	summary = "out/output.json"
//	graph   = "out/route.svg"
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/pipeline"
	"github.com/matzehuels/routeperm/pkg/route"
)

// Environment variables read by [ApplyEnv].
const (
	EnvLookup   = "ROUTEPERM_LOOKUP"
	EnvRequest  = "ROUTEPERM_REQUEST"
	EnvUnit     = "ROUTEPERM_UNIT"
	EnvMaxStops = "ROUTEPERM_MAX_STOPS"
	EnvOutDir   = "ROUTEPERM_OUT_DIR"
)

// Config holds the settings of one run.
type Config struct {
	Lookup   string   `toml:"lookup"`
	Request  string   `toml:"request"`
	From     string   `toml:"from"`
	To       string   `toml:"to"`
	Stops    []string `toml:"stops"`
	Unit     string   `toml:"unit"`
	MaxStops int      `toml:"max_stops"`
	Top      int      `toml:"top"`
	Output   Output   `toml:"output"`
}

// Output names the files a run writes. An empty Summary or Graph disables
// that output.
type Output struct {
	Routes  string `toml:"routes"`
	Summary string `toml:"summary"`
	Graph   string `toml:"graph"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lookup:   pipeline.DefaultLookupPath,
		Request:  pipeline.DefaultRequestPath,
		Unit:     string(pipeline.DefaultUnit),
		MaxStops: pipeline.DefaultMaxStops,
		Top:      pipeline.DefaultTop,
		Output: Output{
			Routes:  pipeline.DefaultRoutesPath,
			Summary: pipeline.DefaultSummaryPath,
		},
	}
}

// Load returns the defaults overlaid with the run file at path (skipped when
// path is empty) and then with the process environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open config %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeParse, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from the given .env files (".env" when
// none are given) into the process environment. Variables already set are
// left alone, and missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrap(errors.ErrCodeParse, err, "load %s", p)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables looked up with
// lookup (os.LookupEnv in production). Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	if v := get(EnvLookup); v != "" {
		c.Lookup = v
	}
	if v := get(EnvRequest); v != "" {
		c.Request = v
	}
	if v := get(EnvUnit); v != "" {
		c.Unit = v
	}
	if v := get(EnvMaxStops); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeParse, err, "%s", EnvMaxStops)
		}
		c.MaxStops = n
	}
	if dir := get(EnvOutDir); dir != "" {
		c.Output.Routes = inDir(dir, c.Output.Routes)
		c.Output.Summary = inDir(dir, c.Output.Summary)
		c.Output.Graph = inDir(dir, c.Output.Graph)
	}
	return nil
}

// inDir places a relative output path under dir.
func inDir(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// PipelineOptions converts the settings into pipeline options.
// Explicit From/To endpoints replace the request file.
func (c Config) PipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		LookupPath:  c.Lookup,
		RequestPath: c.Request,
		Stops:       c.Stops,
		Unit:        c.Unit,
		MaxStops:    c.MaxStops,
		Top:         c.Top,
		RoutesPath:  c.Output.Routes,
		SummaryPath: c.Output.Summary,
		GraphPath:   c.Output.Graph,
	}
	if c.From != "" || c.To != "" {
		opts.Request = route.Request{From: c.From, To: c.To}
		opts.RequestPath = ""
	}
	return opts
}

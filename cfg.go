package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/zucenko/mazeball/config"
)

// options are the command line overrides. Only flags the user set are
// applied, so file and environment values survive unset flags.
type options struct {
	configPath string
	rows, cols int
	width      float64
	height     float64
	seed       int64
	wireframe  bool
	logLevel   string
	verbose    bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML config file")
	fs.IntVar(&o.rows, "rows", def.Rows, "maze rows")
	fs.IntVar(&o.cols, "cols", def.Cols, "maze columns")
	fs.Float64Var(&o.width, "width", def.Width, "arena width in pixels")
	fs.Float64Var(&o.height, "height", def.Height, "arena height in pixels")
	fs.Int64Var(&o.seed, "seed", def.Seed, "maze seed, 0 picks one from the clock")
	fs.BoolVar(&o.wireframe, "wireframe", def.Wireframe, "draw body outlines only")
	fs.StringVar(&o.logLevel, "log-level", def.LogLevel, "log level")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "shorthand for --log-level=debug")
}

// load builds the final config: defaults, YAML file, environment, flags.
func (o *options) load(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if fs.Changed("rows") {
		cfg.Rows = o.rows
	}
	if fs.Changed("cols") {
		cfg.Cols = o.cols
	}
	if fs.Changed("width") {
		cfg.Width = o.width
	}
	if fs.Changed("height") {
		cfg.Height = o.height
	}
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("wireframe") {
		cfg.Wireframe = o.wireframe
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if o.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}

	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	return cfg, nil
}

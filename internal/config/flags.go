package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the command and applyFlags.
const (
	FlagLogLevel      = "log-level"
	FlagLogFile       = "log-file"
	FlagHeuristic     = "heuristic"
	FlagScale         = "heuristic-scale"
	FlagTolerance     = "tolerance"
	FlagMaxExpansions = "max-expansions"
	FlagTimeout       = "timeout"
	FlagWorkers       = "workers"
	FlagWidth         = "width"
	FlagHeight        = "height"
	FlagFormat        = "format"
	FlagProjection    = "projection"
)

// BindFlags registers the search and logging flags on fs, using the
// built-in defaults for help text.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagLogLevel, d.Logging.Level, "log level (debug, info, warn, error)")
	fs.String(FlagLogFile, d.Logging.File, "rotating log file (empty disables)")
	fs.String(FlagHeuristic, d.Search.Heuristic, "search heuristic (euclidean, zero, dijkstra)")
	fs.Float64(FlagScale, d.Search.Scale, "heuristic scale factor")
	fs.Float64(FlagTolerance, d.Search.Tolerance, "barycentric weight tolerance")
	fs.Int(FlagMaxExpansions, d.Search.MaxExpansions, "maximum faces expanded per query (0 = unlimited)")
	fs.Duration(FlagTimeout, d.Search.Timeout, "per-run timeout (0 = none)")
	fs.Int(FlagWorkers, d.Search.Workers, "parallel queries in batch mode (0 = GOMAXPROCS)")
}

// BindRenderFlags registers the plot output flags on fs.
func BindRenderFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Float64(FlagWidth, d.Render.Width, "image width in inches")
	fs.Float64(FlagHeight, d.Render.Height, "image height in inches")
	fs.String(FlagFormat, d.Render.Format, "image format when writing to stdout (png, svg, pdf)")
	fs.String(FlagProjection, d.Render.Projection, "projection plane (xy, xz, yz)")
}

// applyFlags copies every flag the user set on fs into cfg. Unknown names
// are skipped so one function serves all subcommands.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err != nil {
			return
		}
		if f := fs.Lookup(name); f != nil && f.Changed {
			err = apply()
		}
	}

	set(FlagLogLevel, func() (e error) { cfg.Logging.Level, e = fs.GetString(FlagLogLevel); return })
	set(FlagLogFile, func() (e error) { cfg.Logging.File, e = fs.GetString(FlagLogFile); return })
	set(FlagHeuristic, func() (e error) { cfg.Search.Heuristic, e = fs.GetString(FlagHeuristic); return })
	set(FlagScale, func() (e error) { cfg.Search.Scale, e = fs.GetFloat64(FlagScale); return })
	set(FlagTolerance, func() (e error) { cfg.Search.Tolerance, e = fs.GetFloat64(FlagTolerance); return })
	set(FlagMaxExpansions, func() (e error) { cfg.Search.MaxExpansions, e = fs.GetInt(FlagMaxExpansions); return })
	set(FlagTimeout, func() (e error) { cfg.Search.Timeout, e = fs.GetDuration(FlagTimeout); return })
	set(FlagWorkers, func() (e error) { cfg.Search.Workers, e = fs.GetInt(FlagWorkers); return })
	set(FlagWidth, func() (e error) { cfg.Render.Width, e = fs.GetFloat64(FlagWidth); return })
	set(FlagHeight, func() (e error) { cfg.Render.Height, e = fs.GetFloat64(FlagHeight); return })
	set(FlagFormat, func() (e error) { cfg.Render.Format, e = fs.GetString(FlagFormat); return })
	set(FlagProjection, func() (e error) { cfg.Render.Projection, e = fs.GetString(FlagProjection); return })

	return err
}

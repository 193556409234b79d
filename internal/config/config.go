package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/lcdmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Source  string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envConfig  = "LCDMENU_CONFIG"
	envRows    = "LCDMENU_ROWS"
	envCols    = "LCDMENU_COLS"
	envDepth   = "LCDMENU_DEPTH"
	envCursor  = "LCDMENU_CURSOR"
	envAsset   = "LCDMENU_ASSET"
	envStore   = "LCDMENU_STORE"
	envDevice  = "LCDMENU_DEVICE"
	envRoot    = "LCDMENU_ROOT"
	envRefresh = "LCDMENU_REFRESH"
	envDisplay = "LCDMENU_DISPLAY"
	envWidth   = "LCDMENU_WIDTH"
	envHeight  = "LCDMENU_HEIGHT"
	envFooter  = "LCDMENU_FOOTER"
	envTrace   = "LCDMENU_TRACE"
	envLogFile = "LCDMENU_LOG_FILE"
	envLevel   = "LCDMENU_LOG_LEVEL"
)

// fileConfig mirrors the optional TOML file. Anything it sets becomes the
// default that the environment and flags may override.
type fileConfig struct {
	Rows    int    `toml:"rows"`
	Cols    int    `toml:"cols"`
	Depth   int    `toml:"depth"`
	Cursor  string `toml:"cursor"`
	Asset   string `toml:"asset"`
	Store   string `toml:"store"`
	Device  string `toml:"device"`
	Root    string `toml:"root"`
	Refresh string `toml:"refresh"`
	Display string `toml:"display"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Footer  bool   `toml:"footer"`
	Log     struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
		Trace bool   `toml:"trace"`
	} `toml:"log"`
}

func defaults() fileConfig {
	fc := fileConfig{
		Rows:    2,
		Cols:    16,
		Depth:   4,
		Cursor:  ">",
		Refresh: "500ms",
		Display: "lcd",
	}
	fc.Log.Level = "info"
	return fc
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fc := defaults()
	source := configPath(args, envOrDefault(env, envConfig, ""))
	if source != "" {
		if _, err := toml.DecodeFile(source, &fc); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", source, err)
		}
	}

	fs := flag.NewFlagSet("lcdmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", source, "path to a TOML config file")
	rows := fs.Int("rows", envOrInt(env, envRows, fc.Rows), "character rows on the display")
	cols := fs.Int("cols", envOrInt(env, envCols, fc.Cols), "character columns on the display")
	depth := fs.Int("depth", envOrInt(env, envDepth, fc.Depth), "number of submenu levels Back can return through")
	cursor := fs.String("cursor", envOrDefault(env, envCursor, fc.Cursor), "glyph marking the highlighted entry")
	asset := fs.String("asset", envOrDefault(env, envAsset, fc.Asset), "path to a YAML menu asset (empty uses the built-in menu)")
	store := fs.String("store", envOrDefault(env, envStore, fc.Store), "value store: empty for memory, .yaml or .db file")
	device := fs.String("device", envOrDefault(env, envDevice, fc.Device), "evdev input device for hardware buttons")
	root := fs.String("root", envOrDefault(env, envRoot, fc.Root), "start in the named submenu")
	refresh := fs.String("refresh", envOrDefault(env, envRefresh, fc.Refresh), "repaint interval, 0 disables")
	display := fs.String("display", envOrDefault(env, envDisplay, fc.Display), "simulated display: lcd or oled")
	width := fs.Int("width", envOrInt(env, envWidth, fc.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, fc.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, fc.Footer), "show key help under the display")
	trace := fs.Bool("trace", envOrBool(env, envTrace, fc.Log.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, fc.Log.File), "path to the log file")
	level := fs.String("log-level", envOrDefault(env, envLevel, fc.Log.Level), "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	interval, err := time.ParseDuration(normalizeDuration(*refresh))
	if err != nil {
		return Config{}, fmt.Errorf("refresh: %w", err)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Rows:       *rows,
			Cols:       *cols,
			Depth:      *depth,
			Cursor:     *cursor,
			AssetPath:  *asset,
			StorePath:  *store,
			Device:     *device,
			RootMenu:   *root,
			Refresh:    interval,
			Display:    *display,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Level:    *level,
			Trace:    *trace,
		},
		Source: source,
		Flags: map[string]string{
			"rows":     strconv.Itoa(*rows),
			"cols":     strconv.Itoa(*cols),
			"depth":    strconv.Itoa(*depth),
			"cursor":   *cursor,
			"asset":    *asset,
			"store":    *store,
			"device":   *device,
			"root":     *root,
			"refresh":  interval.String(),
			"display":  *display,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"logLevel": *level,
		},
		Args: append([]string(nil), fs.Args()...),
	}

	return cfg, nil
}

// configPath finds -config ahead of the full parse so the file can supply
// defaults for every other flag.
func configPath(args []string, fallback string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(name, "config=") {
			return strings.TrimPrefix(name, "config=")
		}
	}
	return fallback
}

// normalizeDuration accepts a bare integer as milliseconds.
func normalizeDuration(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "0"
	}
	if _, err := strconv.Atoi(v); err == nil {
		return v + "ms"
	}
	return v
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the display geometry and modes make sense.
func Validate(cfg Config) error {
	var errs []error
	a := cfg.App
	if a.Rows < 1 {
		errs = append(errs, fmt.Errorf("rows must be >= 1 (got %d)", a.Rows))
	}
	if a.Cols < 2 {
		errs = append(errs, fmt.Errorf("cols must be >= 2 (got %d)", a.Cols))
	}
	if a.Depth < 1 {
		errs = append(errs, fmt.Errorf("depth must be >= 1 (got %d)", a.Depth))
	}
	if a.Cursor == "" || len(a.Cursor) >= a.Cols {
		errs = append(errs, fmt.Errorf("cursor %q must be non-empty and narrower than the display", a.Cursor))
	}
	if a.Refresh < 0 {
		errs = append(errs, fmt.Errorf("refresh must be >= 0 (got %s)", a.Refresh))
	}
	switch a.Display {
	case "lcd", "oled":
	default:
		errs = append(errs, fmt.Errorf("display must be lcd or oled (got %q)", a.Display))
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", cfg.Logging.Level))
	}
	return errors.Join(errs...)
}

// Package cli handles flag parsing and configuration for quokka-say.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fsmiamoto/quokka-say/internal/colors"
	"github.com/fsmiamoto/quokka-say/internal/config"
	"github.com/fsmiamoto/quokka-say/internal/layout"
)

// Config holds the parsed CLI configuration.
type Config struct {
	Message []string // positional words

	Color   colors.Color
	Rainbow colors.RainbowMode
	Display layout.Mode
	Width   int // 0 = ask the terminal

	FigureFile     string // alternative figure art
	Fortune        bool   // fall back to the fortune program
	FortuneCommand string // only settable from the config file
	Markdown       bool   // flatten Markdown before rendering
	Live           bool   // full-screen, resize-aware view

	ConfigFile  string // explicit --config path, "" = default location
	ShowVersion bool

	set map[string]bool // long names of flags given on the command line
}

const usage = `Usage: quokka-say [flags] [MESSAGE...]

A quokka says your message in a speech bubble.
Without MESSAGE the text is read from piped stdin, then from fortune(6)
when --fortune is set, then a friendly default is used.

Flags:
  -r, --rainbow <mode>    Rainbow colours: char or line
  -c, --color <name>      Colour: red, orange, yellow, green, blue, indigo,
                          violet, cyan, magenta, white, black
  -d, --display <mode>    Layout: auto, top, side or bottom (default: auto)
  -w, --width <n>         Terminal width override (default: detected)
      --figure <file>     Draw the art in <file> instead of the quokka
      --fortune           Ask fortune(6) when no message is given
      --markdown          Render the message as Markdown first
      --live              Full-screen view that follows terminal resizes
      --config <file>     Config file (default: <config dir>/quokka-say/config.toml)
  -v, --version           Print the version
  -h, --help              Show this help
`

// shortFlags maps short flag names to their long form.
var shortFlags = map[string]string{
	"r": "rainbow",
	"c": "color",
	"d": "display",
	"w": "width",
	"v": "version",
	"h": "help",
}

// Parse parses command-line arguments and returns a Config.
// It writes usage to stderr on invalid flags. The returned error has an
// empty message when --help was requested; the caller should exit 0.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("quokka-say", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // we handle output ourselves

	var (
		rainbowFlag  string
		rainbowShort string
		colorFlag    string
		colorShort   string
		displayFlag  string
		displayShort string
		widthFlag    string
		widthShort   string
		figureFile   string
		fortune      bool
		markdown     bool
		live         bool
		configFile   string
		version      bool
		versionShort bool
		help         bool
		helpShort    bool
	)

	fs.StringVar(&rainbowFlag, "rainbow", "", "")
	fs.StringVar(&rainbowShort, "r", "", "")
	fs.StringVar(&colorFlag, "color", "", "")
	fs.StringVar(&colorShort, "c", "", "")
	fs.StringVar(&displayFlag, "display", "", "")
	fs.StringVar(&displayShort, "d", "", "")
	fs.StringVar(&widthFlag, "width", "", "")
	fs.StringVar(&widthShort, "w", "", "")
	fs.StringVar(&figureFile, "figure", "", "")
	fs.BoolVar(&fortune, "fortune", false, "")
	fs.BoolVar(&markdown, "markdown", false, "")
	fs.BoolVar(&live, "live", false, "")
	fs.StringVar(&configFile, "config", "", "")
	fs.BoolVar(&version, "version", false, "")
	fs.BoolVar(&versionShort, "v", false, "")
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&helpShort, "h", false, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, usage)
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	if help || helpShort {
		fmt.Fprint(os.Stderr, usage)
		return nil, errors.New("") // signals help-requested; caller exits 0
	}

	cfg := &Config{
		Message:     fs.Args(),
		FigureFile:  figureFile,
		Fortune:     fortune,
		Markdown:    markdown,
		Live:        live,
		ConfigFile:  configFile,
		ShowVersion: version || versionShort,
		set:         map[string]bool{},
	}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := shortFlags[name]; ok {
			name = long
		}
		cfg.set[name] = true
	})

	// Short flag wins if set, then long flag.
	var err error
	if cfg.Rainbow, err = colors.ParseRainbow(pick(rainbowShort, rainbowFlag)); err != nil {
		return nil, err
	}
	if cfg.Color, err = colors.ParseColor(pick(colorShort, colorFlag)); err != nil {
		return nil, err
	}
	if cfg.Display, err = layout.ParseMode(pick(displayShort, displayFlag)); err != nil {
		return nil, err
	}
	if raw := pick(widthShort, widthFlag); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("--width must be a non-negative integer, got %q", raw)
		}
		cfg.Width = n
	}

	if cfg.Live && cfg.Width != 0 {
		return nil, fmt.Errorf("--live follows the terminal size and cannot be combined with --width")
	}

	return cfg, nil
}

// IsSet reports whether the flag with the given long name was passed.
func (c *Config) IsSet(name string) bool { return c.set[name] }

// ApplyFile fills in settings the command line left unset. Values in fc
// must already be validated, as config.Load does.
func (c *Config) ApplyFile(fc config.Config) error {
	if !c.IsSet("color") && fc.Color != "" {
		col, err := colors.ParseColor(fc.Color)
		if err != nil {
			return err
		}
		c.Color = col
	}
	if !c.IsSet("rainbow") && fc.Rainbow != "" {
		mode, err := colors.ParseRainbow(fc.Rainbow)
		if err != nil {
			return err
		}
		c.Rainbow = mode
	}
	if !c.IsSet("display") && fc.Display != "" {
		mode, err := layout.ParseMode(fc.Display)
		if err != nil {
			return err
		}
		c.Display = mode
	}
	if !c.IsSet("width") && !c.Live && fc.Width > 0 {
		c.Width = fc.Width
	}
	if !c.IsSet("figure") && fc.Figure != "" {
		c.FigureFile = fc.Figure
	}
	if !c.IsSet("fortune") && fc.Fortune {
		c.Fortune = true
	}
	if fc.FortuneCommand != "" {
		c.FortuneCommand = fc.FortuneCommand
	}
	return nil
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Command quokka-say prints a message in a speech bubble next to a quokka.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/muesli/termenv"

	"github.com/fsmiamoto/quokka-say/internal/cli"
	"github.com/fsmiamoto/quokka-say/internal/colors"
	"github.com/fsmiamoto/quokka-say/internal/config"
	"github.com/fsmiamoto/quokka-say/internal/figure"
	"github.com/fsmiamoto/quokka-say/internal/live"
	"github.com/fsmiamoto/quokka-say/internal/markdown"
	"github.com/fsmiamoto/quokka-say/internal/message"
	"github.com/fsmiamoto/quokka-say/internal/quokka"
	"github.com/fsmiamoto/quokka-say/internal/termsize"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdin, stdout *os.File, stderr io.Writer) int {
	cfg, err := cli.Parse(args)
	if err != nil {
		// Empty message means --help was requested.
		if err.Error() == "" {
			return 0
		}
		fmt.Fprintf(stderr, "quokka-say: %v\n", err)
		return 1
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "quokka-say %s\n", cli.Version)
		return 0
	}

	if err := applyConfigFile(cfg, stderr); err != nil {
		fmt.Fprintf(stderr, "quokka-say: %v\n", err)
		return 1
	}

	fig := figure.Quokka()
	if cfg.FigureFile != "" {
		if fig, err = figure.Load(cfg.FigureFile); err != nil {
			fmt.Fprintf(stderr, "quokka-say: %v\n", err)
			return 1
		}
	}

	in := message.ResolveInput{
		Args:           cfg.Message,
		Fortune:        cfg.Fortune,
		FortuneCommand: cfg.FortuneCommand,
	}
	if stdin != nil && !termsize.IsTerminal(stdin.Fd()) {
		in.Stdin = stdin
	}
	res, err := message.Resolve(ctx, in)
	if err != nil {
		fmt.Fprintf(stderr, "quokka-say: %v\n", err)
		return 1
	}
	if res.FortuneErr != nil {
		fmt.Fprintf(stderr, "quokka-say: warning: %v\n", res.FortuneErr)
	}

	text := res.Text
	if cfg.Markdown {
		if plain, err := markdown.ToPlain(text); err != nil {
			fmt.Fprintf(stderr, "quokka-say: warning: %v\n", err)
		} else {
			text = plain
		}
	}

	painter := colors.New(colorProfile())
	opts := colors.Options{Color: cfg.Color, Rainbow: cfg.Rainbow}
	decorate := func(s string) string { return painter.Decorate(s, opts) }

	f := quokka.New(fig)

	if cfg.Live {
		if !termsize.IsTerminal(stdout.Fd()) {
			fmt.Fprintln(stderr, "quokka-say: --live needs a terminal on stdout")
			return 1
		}
		if err := live.Run(ctx, live.New(f, text, cfg.Display, decorate)); err != nil {
			fmt.Fprintf(stderr, "quokka-say: %v\n", err)
			return 1
		}
		return 0
	}

	width := cfg.Width
	if width == 0 {
		width = termsize.Width(stdout.Fd())
	}
	fmt.Fprintln(stdout, decorate(f.Format(text, width, cfg.Display)))
	return 0
}

// applyConfigFile merges the config file into cfg. A broken file at the
// default location only warns; an explicit --config must load.
func applyConfigFile(cfg *cli.Config, stderr io.Writer) error {
	path := cfg.ConfigFile
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return nil
		}
		path = p
	}

	fc, err := config.Load(path)
	if err != nil {
		if explicit {
			return err
		}
		fmt.Fprintf(stderr, "quokka-say: warning: %v\n", err)
		return nil
	}
	return cfg.ApplyFile(fc)
}

// colorProfile honours NO_COLOR (https://no-color.org).
func colorProfile() termenv.Profile {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return termenv.Ascii
	}
	return termenv.ANSI256
}

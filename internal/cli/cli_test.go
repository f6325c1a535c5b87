package cli

import (
	"reflect"
	"testing"

	"github.com/fsmiamoto/quokka-say/internal/colors"
	"github.com/fsmiamoto/quokka-say/internal/config"
	"github.com/fsmiamoto/quokka-say/internal/layout"
)

func TestParseNoArgs_Default(t *testing.T) {
	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Message) != 0 {
		t.Errorf("Message = %q, want empty", cfg.Message)
	}
	if cfg.Display != layout.Auto {
		t.Errorf("Display = %v, want auto", cfg.Display)
	}
	if cfg.Rainbow != colors.RainbowOff || cfg.Color.Name != "" {
		t.Errorf("unexpected decoration: %+v %v", cfg.Color, cfg.Rainbow)
	}
	if cfg.Width != 0 {
		t.Errorf("Width = %d, want 0", cfg.Width)
	}
}

func TestParsePositionalMessage(t *testing.T) {
	cfg, err := Parse([]string{"hello", "quokka"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Message, []string{"hello", "quokka"}) {
		t.Errorf("Message = %q", cfg.Message)
	}
}

func TestParseFlagsBeforeMessage(t *testing.T) {
	cfg, err := Parse([]string{"-c", "green", "--display", "side", "-w", "120", "--markdown", "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color.Name != "green" {
		t.Errorf("Color = %q, want green", cfg.Color.Name)
	}
	if cfg.Display != layout.Side {
		t.Errorf("Display = %v, want side", cfg.Display)
	}
	if cfg.Width != 120 {
		t.Errorf("Width = %d, want 120", cfg.Width)
	}
	if !cfg.Markdown {
		t.Error("Markdown = false, want true")
	}
	if !reflect.DeepEqual(cfg.Message, []string{"hi"}) {
		t.Errorf("Message = %q", cfg.Message)
	}
}

func TestParseShortFlagWins(t *testing.T) {
	cfg, err := Parse([]string{"--rainbow", "line", "-r", "char"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rainbow != colors.RainbowChar {
		t.Errorf("Rainbow = %v, want char", cfg.Rainbow)
	}
}

func TestParseInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"--display", "left"},
		{"-d", "middle"},
		{"--color", "plaid"},
		{"--rainbow", "diagonal"},
		{"--width", "wide"},
		{"-w", "-3"},
		{"--live", "--width", "100"},
		{"--no-such-flag"},
	} {
		if _, err := Parse(args); err == nil {
			t.Errorf("Parse(%q): expected error", args)
		}
	}
}

func TestParseHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		_, err := Parse([]string{flag})
		if err == nil {
			t.Fatalf("Parse(%q): expected error, got nil", flag)
		}
		if err.Error() != "" {
			t.Errorf("Parse(%q): error = %q, want empty string", flag, err.Error())
		}
	}
}

func TestParseVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		cfg, err := Parse([]string{flag})
		if err != nil {
			t.Fatalf("Parse(%q): %v", flag, err)
		}
		if !cfg.ShowVersion {
			t.Errorf("Parse(%q): ShowVersion = false", flag)
		}
	}
}

func TestIsSetTracksShortFlags(t *testing.T) {
	cfg, err := Parse([]string{"-c", "red", "--fortune"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsSet("color") || !cfg.IsSet("fortune") {
		t.Error("expected color and fortune to be marked set")
	}
	if cfg.IsSet("display") {
		t.Error("display was not passed")
	}
}

func TestApplyFile(t *testing.T) {
	cfg, err := Parse([]string{"-c", "red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = cfg.ApplyFile(config.Config{
		Color:          "blue",
		Rainbow:        "line",
		Display:        "bottom",
		Width:          90,
		Figure:         "/tmp/cat.txt",
		Fortune:        true,
		FortuneCommand: "/usr/games/fortune",
	})
	if err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}

	if cfg.Color.Name != "red" {
		t.Errorf("explicit flag overridden: Color = %q", cfg.Color.Name)
	}
	if cfg.Rainbow != colors.RainbowLine {
		t.Errorf("Rainbow = %v, want line", cfg.Rainbow)
	}
	if cfg.Display != layout.Bottom {
		t.Errorf("Display = %v, want bottom", cfg.Display)
	}
	if cfg.Width != 90 {
		t.Errorf("Width = %d, want 90", cfg.Width)
	}
	if cfg.FigureFile != "/tmp/cat.txt" || !cfg.Fortune || cfg.FortuneCommand != "/usr/games/fortune" {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestApplyFileLiveIgnoresWidth(t *testing.T) {
	cfg, err := Parse([]string{"--live"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.ApplyFile(config.Config{Width: 90}); err != nil {
		t.Fatalf("ApplyFile: %v", err)
	}
	if cfg.Width != 0 {
		t.Errorf("Width = %d, want 0 in live mode", cfg.Width)
	}
}

func TestApplyFileRejectsBadValues(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.ApplyFile(config.Config{Display: "left"}); err == nil {
		t.Fatal("expected error for invalid display")
	}
}

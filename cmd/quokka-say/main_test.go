package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// tempFile returns a file holding content, rewound for reading.
func tempFile(t *testing.T, name, content string) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	return f
}

// runCLI runs the command with an isolated config directory and returns
// the exit code, stdout and stderr.
func runCLI(t *testing.T, stdinText string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	stdin := tempFile(t, "stdin", stdinText)
	stdout := tempFile(t, "stdout", "")
	var stderr bytes.Buffer

	code := run(context.Background(), args, stdin, stdout, &stderr)

	out, err := os.ReadFile(stdout.Name())
	if err != nil {
		t.Fatal(err)
	}
	return code, string(out), stderr.String()
}

func TestRunMessageArg(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-w", "200", "Hello,", "world!")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"Hello, world!", "==> ", "┌", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunStdin(t *testing.T) {
	code, out, errOut := runCLI(t, "piped words\n", "-w", "200")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "piped words") {
		t.Fatalf("stdin text missing:\n%s", out)
	}
}

func TestRunDefaultMessage(t *testing.T) {
	code, out, _ := runCLI(t, "", "-w", "40")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "Hello, I'm a quokka!") {
		t.Fatalf("default message missing:\n%s", out)
	}
	if !strings.Contains(out, "  ||  ") {
		t.Fatalf("narrow width should stack vertically:\n%s", out)
	}
}

func TestRunColor(t *testing.T) {
	code, out, _ := runCLI(t, "", "-w", "200", "-c", "red", "hi")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatal("expected ANSI escapes in coloured output")
	}
	if !strings.Contains(ansi.Strip(out), "│ hi         │") {
		t.Fatalf("content changed by colouring:\n%s", ansi.Strip(out))
	}
}

func TestRunNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	_, out, _ := runCLI(t, "", "-w", "200", "--rainbow", "char", "hi")
	if strings.Contains(out, "\x1b[") {
		t.Fatal("NO_COLOR should suppress escapes")
	}
}

func TestRunInvalidDisplay(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--display", "left", "hi")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut, "display mode") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestRunHelp(t *testing.T) {
	if code, _, _ := runCLI(t, "", "--help"); code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	if code != 0 || !strings.HasPrefix(out, "quokka-say ") {
		t.Fatalf("exit %d, out %q", code, out)
	}
}

func TestRunFigureFile(t *testing.T) {
	art := tempFile(t, "cat.txt", " /\\_/\\\n( o.o )\n > ^ <\n")
	code, out, errOut := runCLI(t, "", "-w", "200", "--figure", art.Name(), "meow")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	if !strings.HasPrefix(out, " /\\_/\\") || strings.Contains(out, "█") {
		t.Fatalf("custom figure not used:\n%s", out)
	}
}

func TestRunMissingFigureFile(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--figure", "/no/such/art.txt", "hi")
	if code != 1 || !strings.Contains(errOut, "read figure file") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestRunConfigFile(t *testing.T) {
	cfgFile := tempFile(t, "config.toml", "display = \"bottom\"\n")
	code, out, errOut := runCLI(t, "", "--config", cfgFile.Name(), "-w", "500", "hi")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	if strings.Contains(out, "==> ") {
		t.Fatalf("config display=bottom ignored:\n%s", out)
	}
}

func TestRunBadExplicitConfig(t *testing.T) {
	cfgFile := tempFile(t, "config.toml", "bogus = 1\n")
	code, _, errOut := runCLI(t, "", "--config", cfgFile.Name(), "hi")
	if code != 1 || !strings.Contains(errOut, "unknown keys") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestRunMarkdown(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-w", "200", "--markdown", "# Title\n\nSome *text*.")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "text") {
		t.Fatalf("markdown content missing:\n%s", out)
	}
}

func TestRunLiveNeedsTerminal(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--live", "hi")
	if code != 1 || !strings.Contains(errOut, "needs a terminal") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

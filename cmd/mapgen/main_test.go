package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"runedelve/pkg/game/generator"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-width", "31", "-height", "21", "-seed", "9", "-no-color", "-dump", "out.txt"})
	if err != nil {
		t.Fatalf("parseFlags error: %v", err)
	}
	if opts.width != 31 || opts.height != 21 || opts.seed != 9 || !opts.noColor || opts.dump != "out.txt" {
		t.Errorf("parseFlags = %+v", opts)
	}
	if opts.roomAttempts != generator.DefaultRoomAttempts || opts.locale != "en_GB" {
		t.Errorf("defaults not applied: %+v", opts)
	}

	if _, err := parseFlags([]string{"-width", "-4"}); !errors.Is(err, generator.ErrInvalidSize) {
		t.Errorf("negative width error = %v, want ErrInvalidSize", err)
	}
	if _, err := parseFlags([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
}

func TestMapSize(t *testing.T) {
	if w, h := mapSize(options{width: 25, height: 13}); w != 25 || h != 13 {
		t.Errorf("mapSize = %dx%d, want the explicit 25x13", w, h)
	}
	w, h := mapSize(options{width: 25})
	if w != 25 || h <= 0 || h%2 == 0 {
		t.Errorf("mapSize = %dx%d, want width 25 and an odd fitted height", w, h)
	}
}

func TestRun(t *testing.T) {
	initGettext(filepath.Join("..", "..", "locales"), "en_GB")
	log, _ := logtest.NewNullLogger()
	dump := filepath.Join(t.TempDir(), "map.txt")

	var out bytes.Buffer
	err := run(options{width: 21, height: 11, seed: 4, roomAttempts: 50, noColor: true, dump: dump}, &out, log)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("output has %d lines, want 11 map rows and a summary:\n%s", len(lines), out.String())
	}
	if strings.Count(out.String(), "@") != 1 {
		t.Errorf("expected one spawn marker:\n%s", out.String())
	}
	if !strings.Contains(lines[11], "4") {
		t.Errorf("summary %q does not mention the seed", lines[11])
	}
	if _, err := os.Stat(dump); err != nil {
		t.Errorf("dump not written: %v", err)
	}
}

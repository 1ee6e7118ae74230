package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader(t *testing.T) {
	path := writeConfig(t, `
tape: prealloc: 4096
trace: true
`)
	loader := NewLoader([]string{path}, Schema)

	var prealloc int
	if err := loader.AssignFirst("tape.prealloc", &prealloc); err != nil {
		t.Fatal(err)
	}
	if prealloc != 4096 {
		t.Fatalf("got %d", prealloc)
	}

	var trace bool
	if err := loader.AssignFirst("trace", &trace); err != nil {
		t.Fatal(err)
	}
	if !trace {
		t.Fatal()
	}
}

func TestValueNotFound(t *testing.T) {
	path := writeConfig(t, `trace: false`)
	loader := NewLoader([]string{path}, Schema)

	var prealloc int
	err := loader.AssignFirst("tape.prealloc", &prealloc)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestSchemaViolation(t *testing.T) {
	path := writeConfig(t, `tape: prealloc: 0`)
	loader := NewLoader([]string{path}, Schema)

	var prealloc int
	err := loader.AssignFirst("tape.prealloc", &prealloc)
	if err == nil {
		t.Fatal("expected schema violation")
	}
}

func TestFirst(t *testing.T) {
	pathA := writeConfig(t, `tape: prealloc: 1`)
	pathB := writeConfig(t, `tape: prealloc: 2`)
	loader := NewLoader([]string{pathA, pathB}, Schema)

	if n := First[int](loader, "tape.prealloc"); n != 1 {
		t.Fatalf("got %d", n)
	}
	// missing value decodes to zero
	if First[bool](loader, "trace") {
		t.Fatal()
	}
}

func TestAll(t *testing.T) {
	pathA := writeConfig(t, `trace: true`)
	pathB := writeConfig(t, `trace: false`)
	loader := NewLoader([]string{pathA, pathB}, Schema)

	var values []bool
	for v := range All[bool](loader, "trace") {
		values = append(values, v)
	}
	if len(values) != 2 || !values[0] || values[1] {
		t.Fatalf("got %v", values)
	}
}

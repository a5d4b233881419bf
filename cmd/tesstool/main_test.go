package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/tessview/internal/tessellate"
)

func TestCmdStats(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"-shape", "cube", "-n", "4"}, []string{"Triangles:  192", "Watertight: true"}},
		{[]string{"-shape", "sphere", "-n", "1"}, []string{"Triangles:  80", "Vertices:   42"}},
		{[]string{"-shape", "Cylinder", "-n", "3", "-m", "1"}, []string{"cylinder (n=3, m=1)"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var buf bytes.Buffer
			if err := cmdStats(tt.args, &buf); err != nil {
				t.Fatalf("cmdStats() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestCmdStatsUnknownShape(t *testing.T) {
	var buf bytes.Buffer
	if err := cmdStats([]string{"-shape", "torus"}, &buf); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestParamsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"cube n above max", []string{"-shape", "cube", "-n", "400"}},
		{"cube n zero", []string{"-shape", "cube", "-n", "0"}},
		{"cylinder negative", []string{"-shape", "cylinder", "-n", "-5", "-m", "0"}},
		{"cone below round sides", []string{"-shape", "cone", "-n", "2"}},
		{"cylinder m above max", []string{"-shape", "cylinder", "-n", "3", "-m", "151"}},
		{"sphere beyond depth cap", []string{"-shape", "sphere", "-n", "9"}},
	}

	commands := map[string]func([]string, *bytes.Buffer) error{
		"stats": func(args []string, b *bytes.Buffer) error { return cmdStats(args, b) },
		"obj":   func(args []string, b *bytes.Buffer) error { return cmdObj(args, b) },
	}

	for _, tt := range tests {
		for cmd, run := range commands {
			t.Run(cmd+"/"+tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				err := run(tt.args, &buf)
				if err == nil || !strings.Contains(err.Error(), "out of range") {
					t.Errorf("error = %v, want out of range", err)
				}
				if buf.Len() != 0 {
					t.Errorf("wrote %d bytes for rejected parameters", buf.Len())
				}
			})
		}
	}
}

func TestCmdStatsAtMax(t *testing.T) {
	var buf bytes.Buffer
	if err := cmdStats([]string{"-shape", "cube", "-n", "150"}, &buf); err != nil {
		t.Fatalf("cmdStats() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Triangles:  270000") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestCmdSweep(t *testing.T) {
	var buf bytes.Buffer
	if err := cmdSweep([]string{"-shape", "cube", "-from", "1", "-to", "3"}, &buf); err != nil {
		t.Fatalf("cmdSweep() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header plus 3", len(lines))
	}

	if err := cmdSweep([]string{"-from", "5", "-to", "2"}, &buf); err == nil {
		t.Error("expected error for empty range")
	}
	if err := cmdSweep([]string{"-shape", "cube", "-from", "1", "-to", "151"}, &buf); err == nil {
		t.Error("expected error for range past the maximum")
	}
	if err := cmdSweep([]string{"-shape", "cone", "-from", "1", "-to", "4"}, &buf); err == nil {
		t.Error("expected error for cone below three sides")
	}
}

func TestCmdObjFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cone.obj")

	var buf bytes.Buffer
	if err := cmdObj([]string{"-shape", "cone", "-n", "3", "-m", "1", "-o", path}, &buf); err != nil {
		t.Fatalf("cmdObj() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("stdout got %d bytes with -o set", buf.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// cone 3/1: 6 triangles
	if got := strings.Count(string(data), "\nf "); got != 6 {
		t.Errorf("faces = %d, want 6", got)
	}
}

func TestWriteOBJFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.obj")
	if err := writeOBJFile(path, "cube", tessellate.Cube{N: 1}); err == nil {
		t.Error("expected error creating file in a missing directory")
	}
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOBJ(&buf, "cube 1", tessellate.Cube{N: 1}); err != nil {
		t.Fatalf("writeOBJ() error = %v", err)
	}

	var verts, faces int
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "f "):
			faces++
		}
	}
	if verts != 36 || faces != 12 {
		t.Errorf("verts = %d, faces = %d, want 36 and 12", verts, faces)
	}
	if !strings.HasPrefix(buf.String(), "o cube_1\n") {
		t.Errorf("unexpected object line: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

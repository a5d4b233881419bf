// tesstool is a CLI utility that tessellates shapes without opening a
// window and reports on the resulting meshes.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/tessview/internal/mesh"
	"github.com/Faultbox/tessview/internal/tessellate"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "stats":
		err = cmdStats(args, os.Stdout)
	case "sweep":
		err = cmdSweep(args, os.Stdout)
	case "obj":
		err = cmdObj(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tesstool - shape tessellation utility

Usage:
  tesstool <command> [options]

Commands:
  stats -shape S -n N -m M         Print triangle count, vertices, watertightness and bounds
  sweep -shape S -from A -to B     Print triangle counts for primary values A..B
  obj -shape S -n N -m M [-o F]    Write the mesh as Wavefront OBJ

Examples:
  tesstool stats -shape cylinder -n 12 -m 3
  tesstool sweep -shape sphere -from 1 -to 6
  tesstool obj -shape cone -n 24 -m 4 -o cone.obj`)
}

// shapeFlags registers the flags shared by all commands.
type shapeFlags struct {
	shape *string
	n, m  *int
}

func newShapeFlags(fs *flag.FlagSet) shapeFlags {
	return shapeFlags{
		shape: fs.String("shape", "cube", "Shape (cube, cylinder, cone, sphere)"),
		n:     fs.Int("n", 1, "Primary tessellation"),
		m:     fs.Int("m", 1, "Secondary tessellation"),
	}
}

// build parses the flags into a shape, rejecting values the viewer would
// never allow.
func (f shapeFlags) build() (tessellate.Shape, error) {
	kind, err := tessellate.ParseKind(*f.shape)
	if err != nil {
		return nil, err
	}
	if err := tessellate.CheckParams(kind, *f.n, *f.m, tessellate.MaxSphereDepth); err != nil {
		return nil, err
	}
	return tessellate.For(kind, *f.n, *f.m), nil
}

func cmdStats(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	sf := newShapeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	shape, err := sf.build()
	if err != nil {
		return err
	}
	st := mesh.Analyze(tessellate.Triangles(shape), mesh.DefaultWeldEpsilon)

	fmt.Fprintf(out, "Shape:      %s (n=%d, m=%d)\n", shape.Kind(), *sf.n, *sf.m)
	fmt.Fprintf(out, "Triangles:  %d\n", st.Triangles)
	fmt.Fprintf(out, "Vertices:   %d\n", st.Vertices)
	fmt.Fprintf(out, "Watertight: %t\n", st.Watertight())
	if st.BoundaryEdges > 0 || st.NonManifoldEdges > 0 || st.Degenerate > 0 {
		fmt.Fprintf(out, "  boundary edges %d, non-manifold edges %d, degenerate %d\n",
			st.BoundaryEdges, st.NonManifoldEdges, st.Degenerate)
	}
	fmt.Fprintf(out, "Bounds:     (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
		st.Min.X, st.Min.Y, st.Min.Z, st.Max.X, st.Max.Y, st.Max.Z)
	fmt.Fprintf(out, "Radius:     %.4f - %.4f\n", st.MinRadius, st.MaxRadius)
	return nil
}

func cmdSweep(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	shape := fs.String("shape", "cube", "Shape (cube, cylinder, cone, sphere)")
	from := fs.Int("from", 1, "First primary value")
	to := fs.Int("to", 10, "Last primary value")
	m := fs.Int("m", 1, "Secondary tessellation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := tessellate.ParseKind(*shape)
	if err != nil {
		return err
	}
	if *to < *from {
		return fmt.Errorf("empty range %d..%d", *from, *to)
	}
	for _, n := range []int{*from, *to} {
		if err := tessellate.CheckParams(kind, n, *m, tessellate.MaxSphereDepth); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%-6s %10s %10s %s\n", "n", "triangles", "vertices", "watertight")
	for n := *from; n <= *to; n++ {
		st := mesh.Analyze(tessellate.Triangles(tessellate.For(kind, n, *m)), mesh.DefaultWeldEpsilon)
		fmt.Fprintf(out, "%-6d %10d %10d %t\n", n, st.Triangles, st.Vertices, st.Watertight())
	}
	return nil
}

func cmdObj(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("obj", flag.ContinueOnError)
	sf := newShapeFlags(fs)
	output := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	shape, err := sf.build()
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%d_%d", shape.Kind(), *sf.n, *sf.m)

	if *output == "" {
		return writeOBJ(out, name, shape)
	}
	return writeOBJFile(*output, name, shape)
}

// writeOBJFile writes s to path. A failed close is reported, since it can
// mean the OBJ was cut short.
func writeOBJFile(path, name string, s tessellate.Shape) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeOBJ(f, name, s); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// writeOBJ writes s as one object with three vertices per face.
func writeOBJ(out io.Writer, name string, s tessellate.Shape) error {
	points := tessellate.Triangles(s)

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "o %s\n", strings.ReplaceAll(name, " ", "_"))
	for _, p := range points {
		fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for i := 1; i+2 <= len(points); i += 3 {
		fmt.Fprintf(w, "f %d %d %d\n", i, i+1, i+2)
	}
	return w.Flush()
}

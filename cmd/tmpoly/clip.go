package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mizrak/go.tmpoly"
	"github.com/mizrak/go.tmpoly/tmpolyio"
)

var clipOpt struct {
	a, b string
	op   string
	out  string
}

var clipDirections = map[string][2]tmpoly.Direction{
	"and":     {tmpoly.Forward, tmpoly.Forward},
	"or":      {tmpoly.Backward, tmpoly.Backward},
	"a-not-b": {tmpoly.Backward, tmpoly.Forward},
	"b-not-a": {tmpoly.Forward, tmpoly.Backward},
}

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Clip polygon A against polygon B",
	RunE:  runClip,
}

func init() {
	flags := clipCmd.Flags()
	flags.StringVar(&clipOpt.a, "a", "", "path to polygon A's JSON file (required)")
	flags.StringVar(&clipOpt.b, "b", "", "path to polygon B's JSON file (required)")
	flags.StringVar(&clipOpt.op, "op", "and", "operation: and, or, a-not-b, b-not-a")
	flags.StringVar(&clipOpt.out, "out", "-", "path to write the resulting polygons JSON to, or - for stdout")
	clipCmd.MarkFlagRequired("a")
	clipCmd.MarkFlagRequired("b")
}

func runClip(cmd *cobra.Command, args []string) error {
	log := logger()

	dirs, ok := clipDirections[clipOpt.op]
	if !ok {
		return errors.Errorf("unknown --op %q", clipOpt.op)
	}

	av, err := readPolygon(clipOpt.a)
	if err != nil {
		return err
	}
	bv, err := readPolygon(clipOpt.b)
	if err != nil {
		return err
	}
	log.Debugf("clipping %d-vertex A against %d-vertex B with op %s", len(av), len(bv), clipOpt.op)

	aSlab, bSlab := tmpolyio.ClipBuffers(len(av), len(bv))
	a := tmpoly.Transform(av, aSlab)
	b := tmpoly.Transform(bv, bSlab)
	tmpoly.FindIntersections(&a, &b)
	tmpoly.MarkEntryExit(&a, &b, dirs[0], dirs[1])

	polygons := make([]tmpoly.PolygonSpan, len(av)+len(bv))
	vertices := make([]tmpoly.Vector, 2*(a.Size+b.Size))
	n, used := tmpoly.EmitPolygons(&a, &b, polygons, vertices)
	log.Debugf("emitted %d polygons, %d vertices", n, used)

	result := make([]tmpolyio.Polygon, n)
	for i := 0; i < n; i++ {
		span := polygons[i]
		verts := vertices[span.Start : span.Start+span.Count]
		p := tmpolyio.Polygon{Vertices: make([][2]float64, len(verts))}
		for j, v := range verts {
			p.Vertices[j] = [2]float64{float64(v.X), float64(v.Y)}
		}
		result[i] = p
	}

	w := os.Stdout
	if clipOpt.out != "-" {
		f, err := os.Create(clipOpt.out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		w = f
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		return errors.Wrap(err, "writing polygons")
	}
	return nil
}

func readPolygon(path string) ([]tmpoly.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	vertices, err := tmpolyio.DecodePolygon(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return vertices, nil
}

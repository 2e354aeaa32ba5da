package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mizrak/go.tmpoly"
	"github.com/mizrak/go.tmpoly/tmpolyio"
)

var triangulateOpt struct {
	in  string
	out string
}

var triangulateCmd = &cobra.Command{
	Use:   "triangulate",
	Short: "Triangulate a single polygon into a triangle index list",
	RunE:  runTriangulate,
}

func init() {
	flags := triangulateCmd.Flags()
	flags.StringVar(&triangulateOpt.in, "in", "", "path to a polygon JSON file (required)")
	flags.StringVar(&triangulateOpt.out, "out", "-", "path to write the index list JSON to, or - for stdout")
	triangulateCmd.MarkFlagRequired("in")
}

func runTriangulate(cmd *cobra.Command, args []string) error {
	log := logger()

	f, err := os.Open(triangulateOpt.in)
	if err != nil {
		return errors.Wrap(err, "opening polygon file")
	}
	defer f.Close()

	vertices, err := tmpolyio.DecodePolygon(f)
	if err != nil {
		return errors.Wrap(err, "reading polygon")
	}
	log.Debugf("read %d vertices from %s", len(vertices), triangulateOpt.in)

	clockwise := tmpoly.Clockwise(vertices)
	scratch, out := tmpolyio.TriangulationBuffers(len(vertices))
	written := tmpoly.Triangulate(vertices, clockwise, scratch, 0, out)

	want := 3 * (len(vertices) - 2)
	if len(vertices) >= 3 && written < want {
		log.Warnf("triangulation truncated: wrote %d indices, expected %d", written, want)
	}

	w := os.Stdout
	if triangulateOpt.out != "-" {
		f, err := os.Create(triangulateOpt.out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		w = f
	}
	if err := json.NewEncoder(w).Encode(out[:written]); err != nil {
		return errors.Wrap(err, "writing indices")
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/IceTiki/cfst-builder/internal/rigid"
	"github.com/IceTiki/cfst-builder/internal/specimen"
	"github.com/spf13/cobra"
)

var (
	transportFile     string
	transportRef      string
	transportTarget   string
	transportSpecimen string
	transportEnd      string
	transportAt       string
	transportOutput   string
)

var transportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Transport reference point motion to a point of a rigid end face",
	Long: `Compute the displacement history of a point on a rigid end face from the
recorded motion of the face's reference point.

For every sample the rotation vector (ur1, ur2, ur3) is turned into a
rotation matrix R; the point moves by R·r - r + u, where r is the offset
from the reference point to the point at their undeformed positions.
Rotations are copied unchanged.

The motion file is CSV with the columns time,u1,u2,u3,ur1,ur2,ur3.
Points are given directly (--ref, --target) or from a specimen end face
(--specimen, --end, --at fx,fy with fractions of the face sides).

Examples:
  cfst transport --file rp-top.csv --ref 75,150,1250 --target 150,300,1200
  cfst transport --file rp-top.csv --specimen column.json --end top --at 1,1 -o corner.csv`,
	RunE: runTransport,
}

func init() {
	rootCmd.AddCommand(transportCmd)

	transportCmd.Flags().StringVarP(&transportFile, "file", "f", "", "Motion record CSV of the reference point [required]")
	transportCmd.MarkFlagRequired("file")

	transportCmd.Flags().StringVar(&transportRef, "ref", "", "Undeformed reference point x,y,z (mm)")
	transportCmd.Flags().StringVar(&transportTarget, "target", "", "Undeformed target point x,y,z (mm)")
	transportCmd.Flags().StringVar(&transportSpecimen, "specimen", "", "Specimen JSON file locating the end face")
	transportCmd.Flags().StringVar(&transportEnd, "end", "top", "End face: top or bottom")
	transportCmd.Flags().StringVar(&transportAt, "at", "0.5,0.5", "Face fractions fx,fy of the target point")
	transportCmd.Flags().StringVarP(&transportOutput, "output", "o", "", "Write the result to a CSV file (default stdout)")
}

func runTransport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(transportFile)
	if err != nil {
		return err
	}
	defer f.Close()

	rec, err := rigid.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", transportFile, err)
	}

	var ref, target rigid.Vec
	switch {
	case transportSpecimen != "":
		s, err := specimen.LoadFromFile(transportSpecimen)
		if err != nil {
			return err
		}
		end, err := specimen.ParseEnd(transportEnd)
		if err != nil {
			return err
		}
		at, err := parseFloats(transportAt, 2)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		ref = s.ReferencePosition(end)
		target = s.EndFacePoint(at[0], at[1], end)
	case transportRef != "" && transportTarget != "":
		r, err := parseFloats(transportRef, 3)
		if err != nil {
			return fmt.Errorf("--ref: %w", err)
		}
		t, err := parseFloats(transportTarget, 3)
		if err != nil {
			return fmt.Errorf("--target: %w", err)
		}
		ref, target = rigid.Vec{r[0], r[1], r[2]}, rigid.Vec{t[0], t[1], t[2]}
	default:
		return fmt.Errorf("either --specimen or both --ref and --target are required")
	}
	log.Printf("transport: %d samples, reference %v, target %v", len(rec), ref, target)

	out, err := rigid.TransportTo(rec, ref, target)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if transportOutput != "" {
		of, err := os.Create(transportOutput)
		if err != nil {
			return err
		}
		defer of.Close()
		w = of
	}
	if err := rigid.WriteCSV(w, out); err != nil {
		return err
	}
	if transportOutput != "" {
		fmt.Printf("  ✓ %d samples written to: %s\n", len(out), transportOutput)
	}
	return nil
}

// parseFloats reads n comma separated numbers
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated values, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

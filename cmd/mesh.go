package cmd

import (
	"bytes"
	"fmt"
	"math"

	"github.com/achilleasa/visualmesh/geometry"
	"github.com/achilleasa/visualmesh/mesh"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func shapeFromFlags(ctx *cli.Context) (geometry.Shape, error) {
	radius := ctx.Float64("radius")
	if radius <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}
	switch ctx.String("geometry") {
	case "sphere":
		return geometry.NewSphere(geometry.Scalar(radius)), nil
	case "circle":
		return geometry.NewCircle(geometry.Scalar(radius)), nil
	default:
		return nil, fmt.Errorf(`unknown geometry %q, expected "sphere" or "circle"`, ctx.String("geometry"))
	}
}

// Generate a mesh from the command line flags and display a per-ring
// breakdown of its structure.
func GenerateMesh(ctx *cli.Context) error {
	setupLogging(ctx)

	shape, err := shapeFromFlags(ctx)
	if err != nil {
		return err
	}

	maxDistance := ctx.Float64("max-distance")
	if maxDistance <= 0 {
		maxDistance = math.Inf(1)
	}

	m, err := mesh.Generate(
		shape,
		geometry.Scalar(ctx.Float64("height")),
		geometry.Scalar(ctx.Float64("n")),
		geometry.Scalar(maxDistance),
		geometry.Scalar(ctx.Float64("min-angular-res")),
		ctx.Int("max-ring-size"),
	)
	if err != nil {
		return err
	}

	logger.Noticef("generated mesh with %d rows and %d nodes", len(m.Rows), len(m.Nodes))
	displayRingStats(m)

	return nil
}

func displayRingStats(m *mesh.Mesh) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Row", "Phi (rad)", "Begin", "End", "Nodes"})
	for i, row := range m.Rows {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.6f", float64(row.Phi)),
			fmt.Sprintf("%d", row.Begin),
			fmt.Sprintf("%d", row.End),
			fmt.Sprintf("%d", row.End-row.Begin),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", len(m.Nodes))})

	table.Render()
	logger.Noticef("ring breakdown\n%s", buf.String())
}

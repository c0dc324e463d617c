package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/achilleasa/visualmesh/operator"
	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/visibility"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli"
)

// projectConfig is the on-disk (TOML) shape of a projection request. It is
// friendlier to hand-edit than operator.Request: the pose is given as an
// axis/angle pair rather than a raw rotation matrix, and lens kind and
// geometry are plain strings.
type projectConfig struct {
	ImageWidth        int        `toml:"image_width"`
	ImageHeight       int        `toml:"image_height"`
	Lens              string     `toml:"lens"`
	Projection        string     `toml:"projection"`
	FOV               [2]float64 `toml:"fov"`
	FocalLengthPixels float64    `toml:"focal_length_pixels"`
	LensCentre        [2]float64 `toml:"lens_centre"`

	PoseAxis  [3]float64 `toml:"pose_axis"`
	PoseAngle float64    `toml:"pose_angle_radians"`

	Height float64 `toml:"height"`
	N      float64 `toml:"n"`

	CacheCapacity int     `toml:"cache_capacity"`
	Tolerance     float64 `toml:"tolerance"`
	MaxDistance   float64 `toml:"max_distance"`

	Geometry string  `toml:"geometry"`
	Radius   float64 `toml:"radius"`
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg projectConfig) toRequest() (operator.Request, error) {
	var lensKind visibility.Kind
	switch cfg.Lens {
	case "equirectangular", "":
		lensKind = visibility.Equirectangular
	case "radial":
		lensKind = visibility.Radial
	default:
		return operator.Request{}, fmt.Errorf(`unknown lens %q, expected "equirectangular" or "radial"`, cfg.Lens)
	}

	var proj visibility.Projection
	switch cfg.Projection {
	case "equidistant", "":
		proj = visibility.Equidistant
	case "equisolid":
		proj = visibility.Equisolid
	case "rectilinear":
		proj = visibility.Rectilinear
	default:
		return operator.Request{}, fmt.Errorf(`unknown projection %q`, cfg.Projection)
	}

	maxDistance := cfg.MaxDistance
	if maxDistance <= 0 {
		maxDistance = math.Inf(1)
	}

	return operator.Request{
		ImageWidth:        cfg.ImageWidth,
		ImageHeight:       cfg.ImageHeight,
		LensKind:          lensKind,
		FOV:               cfg.FOV,
		FocalLengthPixels: cfg.FocalLengthPixels,
		LensCentre:        cfg.LensCentre,
		RadialProjection:  proj,
		Roc:               rocFromAxisAngle(cfg.PoseAxis, cfg.PoseAngle),
		Height:            cfg.Height,
		N:                 cfg.N,
		CacheCapacity:     cfg.CacheCapacity,
		Tolerance:         cfg.Tolerance,
		MaxDistance:       maxDistance,
		Geometry:          cfg.Geometry,
		Radius:            cfg.Radius,
	}, nil
}

// rocFromAxisAngle turns a (possibly zero) axis/angle pair into a row-major
// rotation matrix via a quaternion, so pose files can describe "tilted
// forward 12 degrees about the x axis" instead of hand-deriving nine matrix
// entries.
func rocFromAxisAngle(axis [3]float64, angle float64) [3][3]float64 {
	v := types.Vec3{float32(axis[0]), float32(axis[1]), float32(axis[2])}
	if v.Len() < 1e-9 {
		return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}
	q := types.QuatFromAxisAngle(v.Normalize(), float32(angle))
	rot := q.Mat4().Mat3()
	var out [3][3]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = float64(rot.At(r, c))
		}
	}
	return out
}

// Project runs a single projection request described by a TOML config file
// and reports the resulting mesh statistics. With --out, the full response
// (pixel coordinates and neighbour graph) is also written as JSON.
func Project(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing request config file argument")
	}

	cfg, err := loadProjectConfig(ctx.Args().First())
	if err != nil {
		return err
	}
	req, err := cfg.toRequest()
	if err != nil {
		return err
	}

	requestID := uuid.New()
	logger.Noticef("running projection request %s", requestID)

	resp, err := operator.Run(req)
	if err != nil {
		return err
	}

	displayProjectionStats(requestID, resp)

	if out := ctx.String("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
		logger.Noticef("wrote response to %s", out)
	}

	return nil
}

func displayProjectionStats(requestID uuid.UUID, resp operator.Response) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Request", "Visible nodes", "Neighbour rows"})
	table.Append([]string{
		requestID.String(),
		fmt.Sprintf("%d", len(resp.Pixels)),
		fmt.Sprintf("%d", len(resp.Neighbours)),
	})
	table.Render()
	logger.Noticef("projection statistics\n%s", buf.String())
}

package main

import (
	"os"

	"github.com/achilleasa/visualmesh/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "visualmesh"
	app.Usage = "build and project geometry-aware ray-sampling meshes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "mesh",
			Usage: "generate a mesh and inspect its structure",
			Subcommands: []cli.Command{
				{
					Name:  "generate",
					Usage: "generate a mesh for the given shape and display its ring breakdown",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "geometry",
							Value: "sphere",
							Usage: `target shape: "sphere" or "circle"`,
						},
						cli.Float64Flag{
							Name:  "radius",
							Value: 0.1,
							Usage: "target shape radius, metres",
						},
						cli.Float64Flag{
							Name:  "height",
							Value: 1.0,
							Usage: "camera height above the observation plane, metres",
						},
						cli.Float64Flag{
							Name:  "n",
							Value: 4.0,
							Usage: "desired number of shape intersections per ring step",
						},
						cli.Float64Flag{
							Name:  "max-distance",
							Usage: "maximum ground distance to sample, metres (0 disables the limit)",
						},
						cli.Float64Flag{
							Name:  "min-angular-res",
							Value: 1e-4,
							Usage: "smallest angular step allowed between rings, radians",
						},
						cli.IntFlag{
							Name:  "max-ring-size",
							Value: 1 << 16,
							Usage: "maximum number of nodes allowed in a single ring",
						},
					},
					Action: cmd.GenerateMesh,
				},
			},
		},
		{
			Name:      "project",
			Usage:     "run a single projection request described by a TOML config file",
			ArgsUsage: "request.toml",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "write the full JSON response to this file",
				},
			},
			Action: cmd.Project,
		},
		{
			Name:   "list-devices",
			Usage:  "list opencl devices available to the accelerated projection engine",
			Action: cmd.ListDevices,
		},
	}

	app.Run(os.Args)
}

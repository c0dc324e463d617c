//go:build opencl

package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/visualmesh/engine/opencl/device"
	"github.com/urfave/cli"
)

// List the opencl devices available for the accelerated projection engine.
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	platforms, err := device.GetPlatformInfo()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("\nsystem provides %d opencl platform(s):\n\n", len(platforms)))
	for pIdx, platform := range platforms {
		buf.WriteString(fmt.Sprintf("[Platform %02d] %s\n", pIdx, platform.String()))
	}

	logger.Notice(buf.String())
	return nil
}

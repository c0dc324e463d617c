//go:build !opencl

package cmd

import (
	"errors"

	"github.com/urfave/cli"
)

// ListDevices is only meaningful when the binary was built with the
// "opencl" build tag; this stub lets the command exist in every build.
func ListDevices(ctx *cli.Context) error {
	return errors.New("list-devices: built without opencl support, rebuild with -tags opencl")
}

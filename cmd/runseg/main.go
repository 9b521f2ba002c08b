// runseg - connected region segmentation for images
//
// runseg thresholds an image with Otsu's method and paints each connected
// foreground region in its own colour.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/runseg/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

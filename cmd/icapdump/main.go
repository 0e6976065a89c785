// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Command icapdump parses ICAP messages from files (or stdin) and
// prints the decoded structure. It is a thin CLI front end over
// icapsp; none of its ambient stack (logging, config, concurrency)
// reaches into the core parser's scope.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "icapdump",
	Short: "Decode ICAP/1.0 requests and responses",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

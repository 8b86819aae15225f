// Command fitctl decodes and builds FIT files from the command line:
// fitctl dump prints a file's records as indented JSON, fitctl build
// encodes a JSON record list into a FIT file, optionally cloning an
// existing file's definitions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var templatePath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "fitctl",
		Short: "Decode and build FIT files",
	}

	dumpCmd := &cobra.Command{
		Use:   "dump <file.fit>",
		Short: "Decode a FIT file and print its records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}

	buildCmd := &cobra.Command{
		Use:   "build <records.json> <out.fit>",
		Short: "Encode a JSON record list into a FIT file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], args[1], templatePath)
		},
	}
	buildCmd.Flags().StringVar(&templatePath, "template", "", "clone definitions from this FIT file instead of deriving them")

	rootCmd.AddCommand(dumpCmd, buildCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

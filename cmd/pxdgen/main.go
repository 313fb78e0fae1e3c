package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jward/pxdgen"
	"github.com/spf13/cobra"
)

var (
	flagStd      string
	flagIncludes []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "pxdgen LIBNAME HEADER",
	Short:         "Generate Cython binding declarations from a C/C++ header",
	Long:          "Pxdgen parses a header with tree-sitter, extracts the library's typedefs, enums, and function signatures, and prints binding declarations with the library-name prefix stripped.",
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStd, "std", "c++11", "language standard used to parse the header (c89..c17, c++03..c++20)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagIncludes, "include", "I", nil, "include search path (repeatable)")

	rootCmd.AddCommand(dumpCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	lib, header := args[0], args[1]
	start := time.Now()

	gen := pxdgen.New(
		pxdgen.WithStandard(flagStd),
		pxdgen.WithIncludePaths(flagIncludes...),
		pxdgen.WithOutput(cmd.OutOrStdout()),
	)
	if err := gen.Generate(cmd.Context(), lib, header); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Generated %s bindings from %s in %s\n",
		lib, header, time.Since(start).Round(time.Millisecond))
	return nil
}

var dumpCmd = &cobra.Command{
	Use:   "dump HEADER",
	Short: "Print the parsed cursor tree for a header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := pxdgen.New(
			pxdgen.WithStandard(flagStd),
			pxdgen.WithIncludePaths(flagIncludes...),
			pxdgen.WithOutput(cmd.OutOrStdout()),
		)
		return gen.Dump(cmd.Context(), args[0])
	},
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagArcIndex int
	flagXs       string
	flagOs       string
	flagSheets   int
	flagTimeout  int
	flagVerbose  bool
	flagQuiet    bool
	flagSilent   bool

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "gridhfk",
	Short:   "Decide whether a grid-diagram generator is null-homologous",
	Long:    `gridhfk builds a grid diagram from X and O column markings and decides null-homology of its distinguished generators under the D0, D1, and n-sheet lift chain maps.`,
	Version: version,
	RunE:    runDecision,
}

func init() {
	rootCmd.Flags().IntVarP(&flagArcIndex, "index", "i", 0, "arc index N (>= 2)")
	rootCmd.Flags().StringVarP(&flagXs, "xs", "X", "", "X permutation, e.g. [1,2,3]")
	rootCmd.Flags().StringVarP(&flagOs, "os", "O", "", "O permutation, e.g. [2,3,1]")
	rootCmd.Flags().IntVarP(&flagSheets, "sheets", "n", 1, "number of sheets (1 = single-sheet mode, >=2 = lift mode)")
	rootCmd.Flags().IntVarP(&flagTimeout, "timeout", "t", 0, "wall-clock timeout in seconds (0 = no timeout)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "quiet output (result lines only)")
	rootCmd.Flags().BoolVarP(&flagSilent, "silent", "s", false, "no output at all")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet", "silent")
	_ = rootCmd.MarkFlagRequired("index")
	_ = rootCmd.MarkFlagRequired("xs")
	_ = rootCmd.MarkFlagRequired("os")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

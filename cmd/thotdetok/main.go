// Command thotdetok is the CLI surface of spec.md §6: a detokenize
// entry point (categorizer → decoder → decategorizer) and a recase entry
// point (decoder only), each driven by translation/language model count
// tables loaded from SQLite.
//
// Grounded on _examples/mattdennewitz-mcpmydocs's main.go: a cobra root
// command with a persistent --verbose flag and PersistentPreRun wiring,
// subcommands registered from sibling files in the same package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thot-toolkit/thotgo/pkg/diagnostics"
)

var (
	verbose    bool
	configPath string
	tmDSN      string
	lmDSN      string
	annotated  bool
	weightsCSV string
	echoRaw    bool

	sink diagnostics.Sink = diagnostics.DiscardSink{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "thotdetok",
		Short: "thotdetok: monotone phrase decoder for detokenization and recasing",
		Long: `thotdetok reconstructs spacing/punctuation (detokenize) or restores
casing (recase) for machine-translation-style pipelines, using a
monotone phrase-based decoder scored against translation/language
model count tables.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				sink = diagnostics.NewStderrSink(os.Stderr)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable per-hypothesis diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a decoder YAML configuration (weights, n_max, lambda, ...)")
	rootCmd.PersistentFlags().StringVar(&tmDSN, "tm", ":memory:", "translation model SQLite DSN (':memory:' for an empty table)")
	rootCmd.PersistentFlags().StringVar(&lmDSN, "lm", ":memory:", "language model SQLite DSN (':memory:' for an empty table)")
	rootCmd.PersistentFlags().BoolVar(&annotated, "annotated", false, "treat input lines as carrying phr_pair_annot/length_limit tags")
	rootCmd.PersistentFlags().StringVar(&weightsCSV, "weights", "", "comma-separated w_tm,w_pp,w_wp,w_lm override (any arity other than 4 falls back to uniform weights, per spec)")
	rootCmd.PersistentFlags().BoolVar(&echoRaw, "echo-raw", false, "print each line's de-annotated plain text instead of running the decoder (diagnostic)")

	rootCmd.AddCommand(newDetokenizeCmd(), newRecaseCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

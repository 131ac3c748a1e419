package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thot-toolkit/thotgo/pkg/annotate"
	"github.com/thot-toolkit/thotgo/pkg/pipeline"
)

// newDetokenizeCmd builds the `detokenize` subcommand (spec.md §6): reads
// lines, runs the categorizer → decoder → decategorizer, writes
// reconstructed lines.
func newDetokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detokenize [file]",
		Short: "reconstruct spacing/punctuation for tokenized text",
		Args:  inputArgs(),
		RunE:  runDetokenize,
	}
}

func runDetokenize(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	if echoRaw {
		// Diagnostic path (SPEC_FULL.md §4, the original's
		// remove_xml_annotations): print the de-annotated plain text of
		// each line without ever touching the decoder.
		return forEachLine(in, func(lineno int, line string) error {
			fmt.Println(annotate.Strip(line))
			return nil
		})
	}

	application, err := newApp()
	if err != nil {
		return err
	}
	defer application.Close()

	return forEachLine(in, func(lineno int, line string) error {
		tokens, categorizable := splitLine(line)
		if len(tokens) == 0 {
			fmt.Println()
			return nil
		}

		result := pipeline.DetokenizeMarked(application.decoder, tokens, categorizable)
		if !result.Found {
			fmt.Println(line)
			fmt.Fprintf(os.Stderr, "warning: no detokenizations were found for sentence in line %d\n", lineno)
			return nil
		}
		fmt.Println(result.Text)
		return nil
	})
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thot-toolkit/thotgo/pkg/annotate"
	"github.com/thot-toolkit/thotgo/pkg/pipeline"
)

// newRecaseCmd builds the `recase` subcommand (spec.md §6): reads
// lowercased lines, runs the decoder directly, writes the best
// hypothesis's words.
func newRecaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recase [file]",
		Short: "restore casing for lowercased tokenized text",
		Args:  inputArgs(),
		RunE:  runRecase,
	}
}

func runRecase(cmd *cobra.Command, args []string) error {
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
		tokens, _ := splitLine(lowercaseLine(line))
		if len(tokens) == 0 {
			fmt.Println()
			return nil
		}

		recased, found := pipeline.Recase(application.decoder, tokens)
		if !found {
			fmt.Println(line)
			fmt.Fprintf(os.Stderr, "warning: no recased sentences were found for sentence in line %d\n", lineno)
			return nil
		}
		fmt.Println(recased)
		return nil
	})
}

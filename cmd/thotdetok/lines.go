package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thot-toolkit/thotgo/pkg/annotate"
)

// openInput returns the file named by args[0], or stdin if args is empty
// (spec.md §6: "a stream of UTF-8 lines").
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// splitLine tokenizes one line per the --annotated flag: a plain
// whitespace split by default (spec.md §6's base contract), or the
// annotation-aware tokenizer when the input carries phr_pair_annot /
// length_limit tags. The returned mask reports which tokens are
// categorizable text versus tag/length-limit literals (spec.md §6); it is
// nil (meaning "every token is categorizable") outside --annotated mode,
// where there are no tags to exclude.
func splitLine(line string) ([]string, []bool) {
	if annotated {
		return annotate.TokenizeMarked(line)
	}
	return strings.Fields(line), nil
}

// lowercaseLine lowercases one line, respecting annotation boundaries
// when --annotated is set (spec.md §6: "recase reads lowercased lines").
func lowercaseLine(line string) string {
	if annotated {
		return annotate.Lowercase(line)
	}
	return strings.ToLower(line)
}

// forEachLine reads r line-by-line, invoking fn for each (1-indexed
// lineno, line) pair. Empty lines still invoke fn so callers can emit
// the empty-output-line contract of spec.md §6.
func forEachLine(r io.Reader, fn func(lineno int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := fn(lineno, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// inputArgs is cobra.MaximumNArgs(1): an optional input file path, else stdin.
func inputArgs() cobra.PositionalArgs {
	return cobra.MaximumNArgs(1)
}

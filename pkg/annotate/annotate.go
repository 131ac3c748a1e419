// Package annotate implements the annotation-aware tokenizer/lowercaser of
// spec.md §6: inline `<phr_pair_annot>`/`<src_segm>`/`<trg_segm>` and
// `<length_limit>` tags are parsed into a stream of atoms so that
// tokenization, lowercasing, and categorization apply only to the
// translatable text they wrap.
//
// Grounded on the original's `annotated_string_to_xml_skeleton` (capturing
// regexp over the two tag shapes) and on pkg/dafsa/dictionary.go's
// "single AC automaton serves as both dictionary lookup AND text scanner"
// pattern: a fast Aho-Corasick pre-scan answers "does this line carry any
// annotation at all" before the slower capturing regex ever runs.
package annotate

import (
	"regexp"
	"strings"
	"sync"

	ahocorasick "github.com/coregx/ahocorasick"
)

const (
	grpAnn = "phr_pair_annot"
	srcAnn = "src_segm"
	trgAnn = "trg_segm"
	lenAnn = "length_limit"
)

// Kind classifies one parsed atom.
type Kind int

const (
	// KindText is translatable content: tokenized, lowercased, and
	// categorized normally.
	KindText Kind = iota
	// KindTag is a literal tag atom (e.g. "<src_segm>"): passes through
	// tokenization/lowercasing/categorization unchanged.
	KindTag
	// KindLiteral is a length-limit directive's integer body: preserved
	// verbatim like a KindText atom's surface form, but excluded from
	// categorization (spec.md §6: "a directive, not translatable text").
	KindLiteral
)

// Atom is one unit of a parsed annotated line.
type Atom struct {
	Kind Kind
	Text string
}

// dicPattern mirrors the original's dic_patt: the eight-group phrase-pair
// annotation shape.
var dicPattern = `(<` + grpAnn + `>)[ ]*(<` + srcAnn + `>)(.+?)(</` + srcAnn + `>)[ ]*(<` + trgAnn + `>)(.+?)(</` + trgAnn + `>)[ ]*(</` + grpAnn + `>)`

// lenPattern mirrors the original's len_patt: the three-group length-limit
// shape.
var lenPattern = `(<` + lenAnn + `>)[ ]*(\d+)[ ]*(</` + lenAnn + `>)`

var annotationPattern = regexp.MustCompile(dicPattern + `|` + lenPattern)

var tagLiterals = []string{
	"<" + grpAnn + ">", "</" + grpAnn + ">",
	"<" + srcAnn + ">", "</" + srcAnn + ">",
	"<" + trgAnn + ">", "</" + trgAnn + ">",
	"<" + lenAnn + ">", "</" + lenAnn + ">",
}

var (
	scannerOnce sync.Once
	tagScanner  ahocorasick.AhoCorasick
)

func scanner() ahocorasick.AhoCorasick {
	scannerOnce.Do(func() {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			AsciiCaseInsensitive: false,
			MatchOnlyWholeWords:  false,
			MatchKind:            ahocorasick.LeftMostFirstMatch,
		})
		tagScanner = builder.Build(tagLiterals)
	})
	return tagScanner
}

// hasAnnotation reports whether s contains any annotation tag literal at
// all. A line with none never needs the capturing regex.
func hasAnnotation(s string) bool {
	return len(scanner().FindAll(s)) > 0
}

// Parse splits an annotated line into (Kind, Text) atoms, mirroring the
// original's annotated_string_to_xml_skeleton. Text outside any
// recognized tag is a single KindText atom (so a caller does not need to
// intuit word boundaries at this stage); tag delimiters are KindTag
// atoms; a length-limit's digit body is KindLiteral.
func Parse(s string) []Atom {
	if !hasAnnotation(s) {
		return []Atom{{Kind: KindText, Text: s}}
	}

	var atoms []Atom
	offset := 0
	for _, m := range annotationPattern.FindAllStringSubmatchIndex(s, -1) {
		start, end := m[0], m[1]
		if offset < start {
			atoms = append(atoms, Atom{Kind: KindText, Text: s[offset:start]})
		}
		offset = end

		group := func(i int) (string, bool) {
			lo, hi := m[2*i], m[2*i+1]
			if lo < 0 {
				return "", false
			}
			return s[lo:hi], true
		}

		if g1, ok := group(1); ok {
			g2, _ := group(2)
			g3, _ := group(3)
			g4, _ := group(4)
			g5, _ := group(5)
			g6, _ := group(6)
			g7, _ := group(7)
			g8, _ := group(8)
			atoms = append(atoms,
				Atom{KindTag, g1},
				Atom{KindTag, g2},
				Atom{KindText, g3},
				Atom{KindTag, g4},
				Atom{KindTag, g5},
				Atom{KindText, g6},
				Atom{KindTag, g7},
				Atom{KindTag, g8},
			)
		} else if g9, ok := group(9); ok {
			g10, _ := group(10)
			g11, _ := group(11)
			atoms = append(atoms,
				Atom{KindTag, g9},
				Atom{KindLiteral, g10},
				Atom{KindTag, g11},
			)
		}
	}
	if offset < len(s) {
		atoms = append(atoms, Atom{Kind: KindText, Text: s[offset:]})
	}
	return atoms
}

// Strip implements the original's remove_xml_annotations: returns the
// plain translatable/literal text of an annotated line with every tag
// atom removed, for the CLI's --echo-raw diagnostic path (SPEC_FULL.md
// §4). Never used on the decoder scoring path.
func Strip(annotated string) string {
	atoms := Parse(annotated)
	var out []string
	for _, a := range atoms {
		if a.Kind == KindTag {
			continue
		}
		if text := strings.TrimSpace(a.Text); text != "" {
			out = append(out, text)
		}
	}
	return strings.Join(out, " ")
}

package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_RulesInOrder(t *testing.T) {
	cases := []struct {
		name string
		in   string
		mode Mode
		want string
	}{
		{"multi-digit", "123", Detokenize, Number},
		{"single-digit", "7", Detokenize, Digit},
		{"real number", "3.14", Detokenize, Number},
		{"negative real number", "-2.5", Detokenize, Number},
		{"alphanumeric", "abc123", Detokenize, Alfanum},
		{"long common word detokenize", "elephant", Detokenize, CommonWord},
		{"long word recase omits rule 5", "elephant", Recase, "elephant"},
		{"short plain word unchanged", "cat", Detokenize, "cat"},
		{"punctuation unchanged", ".", Detokenize, "."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Word(c.in, c.mode))
		})
	}
}

func TestWord_Idempotent(t *testing.T) {
	inputs := []string{"cat", "123", "7", "3.14", "abc123", "elephant", ".", Number, Digit, Alfanum, CommonWord}
	for _, in := range inputs {
		first := Word(in, Detokenize)
		second := Word(first, Detokenize)
		assert.Equal(t, first, second, "Word(%q) = %q, Word(%q) = %q", in, first, first, second)
	}
}

func TestTokens_PreservesLengthAndOrder(t *testing.T) {
	in := []string{"hello", "123", "7", "cat"}
	out := Tokens(in, Detokenize)
	assert := assert.New(t)
	assert.Len(out, len(in))
	assert.Equal(Number, out[1])
	assert.Equal(Digit, out[2])
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory(Number))
	assert.True(t, IsCategory(Digit))
	assert.True(t, IsCategory(Alfanum))
	assert.True(t, IsCategory(CommonWord))
	assert.False(t, IsCategory("cat"))
}

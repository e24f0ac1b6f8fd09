package accountid

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCorpusValid(t *testing.T) {
	assert := assert.New(t)
	file, err := os.Open("testdata/account_id_syntax_valid.txt")
	assert.NoError(err)
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		err := Validate(line)
		if err != nil {
			fmt.Println("GOOD: " + line)
		}
		assert.NoError(err)
	}
	assert.NoError(scanner.Err())
}

func TestValidateCorpusInvalid(t *testing.T) {
	assert := assert.New(t)
	file, err := os.Open("testdata/account_id_syntax_invalid.txt")
	assert.NoError(err)
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		err := Validate(line)
		if err == nil {
			fmt.Println("BAD: " + line)
		}
		assert.Error(err)
	}
	assert.NoError(scanner.Err())
}

func TestValidateErrorClassification(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		input string
		kind  ErrorKind
		index int
		char  rune
	}{
		{"ErinMoriarty.near", InvalidChar, 0, 'E'},
		{"-KarlUrban.near", RedundantSeparator, 0, '-'},
		{"anthonystarr.", RedundantSeparator, 12, '.'},
		{"jack__Quaid.near", RedundantSeparator, 5, '_'},
		{"ƒelicia.near", InvalidChar, 0, 'ƒ'},
		{"неар", InvalidChar, 0, 'н'},
		{"hello world", InvalidChar, 5, ' '},
		{"near@", InvalidChar, 4, '@'},
		{".near", RedundantSeparator, 0, '.'},
		{"near.", RedundantSeparator, 4, '.'},
		{"..", RedundantSeparator, 0, '.'},
		{"a..near", RedundantSeparator, 2, '.'},
		{"0_-_0", RedundantSeparator, 2, '-'},
		{"", TooShort, -1, 0},
		{"a", TooShort, -1, 0},
		{strings.Repeat("a", 65), TooLong, -1, 0},
	}
	for _, tc := range tests {
		err := Validate(tc.input)
		if !assert.Error(err, tc.input) {
			continue
		}
		var perr *ParseError
		if !assert.True(errors.As(err, &perr), tc.input) {
			continue
		}
		assert.Equal(tc.kind, perr.Kind, tc.input)
		assert.Equal(tc.index, perr.Index, tc.input)
		assert.Equal(tc.char, perr.Char, tc.input)
	}
}

// Length bounds are checked before the character scan, so a string that is
// both too short and structurally broken reports the length kind.
func TestValidateLengthPrecedence(t *testing.T) {
	assert := assert.New(t)

	for _, id := range []string{".", "-", "_", "@"} {
		err := Validate(id)
		var perr *ParseError
		if assert.True(errors.As(err, &perr), id) {
			assert.Equal(TooShort, perr.Kind, id)
			assert.Equal(-1, perr.Index, id)
		}
	}

	err := Validate(strings.Repeat(".", 65))
	var perr *ParseError
	if assert.True(errors.As(err, &perr)) {
		assert.Equal(TooLong, perr.Kind)
	}

	// At valid length, an all-separator string fails on the leading one.
	err = Validate("..")
	if assert.True(errors.As(err, &perr)) {
		assert.Equal(RedundantSeparator, perr.Kind)
		assert.Equal(0, perr.Index)
	}
}

// Every identifier the validator accepts satisfies the structural
// invariants, re-derived here independently of the scan.
func TestValidateInvariants(t *testing.T) {
	assert := assert.New(t)
	file, err := os.Open("testdata/account_id_syntax_valid.txt")
	assert.NoError(err)
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		id := scanner.Text()
		if len(id) == 0 || id[0] == '#' {
			continue
		}
		if !assert.NoError(Validate(id), id) {
			continue
		}
		assert.GreaterOrEqual(len(id), MinLen, id)
		assert.LessOrEqual(len(id), MaxLen, id)
		for i := 0; i < len(id); i++ {
			c := id[i]
			switch {
			case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			case c == '-' || c == '_' || c == '.':
				assert.NotEqual(0, i, id)
				assert.NotEqual(len(id)-1, i, id)
				if i > 0 {
					prev := id[i-1]
					assert.False(prev == '-' || prev == '_' || prev == '.', id)
				}
			default:
				assert.Fail("character outside allowed set", "%q in %q", c, id)
			}
		}
	}
	assert.NoError(scanner.Err())
}

func TestParseErrorMessages(t *testing.T) {
	assert := assert.New(t)

	assert.EqualError(Validate("a"), "account ID is too short (2 chars min)")
	assert.EqualError(Validate(strings.Repeat("a", 65)), "account ID is too long (64 chars max)")
	assert.EqualError(Validate("nEar"), `account ID contains invalid character 'E' at index 1`)
	assert.EqualError(Validate("0__0"), `account ID contains redundant separator '_' at index 2`)
}

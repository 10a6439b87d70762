package lcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/buildgen/internal/lcs"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "camelCase",
			input:    "userId",
			expected: []string{"user", "Id"},
		},
		{
			name:     "PascalCase",
			input:    "UserId",
			expected: []string{"User", "Id"},
		},
		{
			name:     "snake_case",
			input:    "max_retries",
			expected: []string{"max", "_", "retries"},
		},
		{
			name:     "UppercaseAcronym",
			input:    "userID",
			expected: []string{"user", "ID"},
		},
		{
			name:     "AcronymBeforeWord",
			input:    "HTTPServer",
			expected: []string{"HTTP", "Server"},
		},
		{
			name:     "DigitAfterLetter",
			input:    "iso8601",
			expected: []string{"iso", "8601"},
		},
		{
			name:     "LetterAfterDigit",
			input:    "file2name",
			expected: []string{"file", "2", "name"},
		},
		{
			name:     "MultipleUnderscores",
			input:    "send__nowait",
			expected: []string{"send", "__", "nowait"},
		},
		{
			name:     "SingleWord",
			input:    "timeout",
			expected: []string{"timeout"},
		},
		{
			name:     "EmptyString",
			input:    "",
			expected: ([]string)(nil),
		},
		{
			name:     "AllUppercase",
			input:    "TTL",
			expected: []string{"TTL"},
		},
		{
			name:     "UnderscoresOnly",
			input:    "___",
			expected: []string{"___"},
		},
		{
			name:     "DigitsOnly",
			input:    "8601",
			expected: []string{"8601"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lcs.SplitWords(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCommonWordPrefix(t *testing.T) {
	names := []string{"UserName", "UserAge", "UserEmail"}
	got := lcs.CommonWordPrefix(names)
	assert.Equal(t, "User", got)
}

func TestCommonWordPrefixKeepsWordsWhole(t *testing.T) {
	names := []string{"MemberName", "MemberNationality"}
	got := lcs.CommonWordPrefix(names)
	assert.Equal(t, "Member", got)
}

func TestCommonWordPrefixSnakeCase(t *testing.T) {
	names := []string{"cfg_host", "cfg_port", "cfg_user"}
	got := lcs.CommonWordPrefix(names)
	assert.Equal(t, "cfg_", got)
}

func TestCommonWordPrefixEmpty(t *testing.T) {
	got := lcs.CommonWordPrefix(nil)
	assert.Equal(t, "", got)
}

func TestNoCommonWordPrefix(t *testing.T) {
	names := []string{"Host", "Port", "User"}
	got := lcs.CommonWordPrefix(names)
	assert.Equal(t, "", got)
}

func TestCommonWordPrefixIsWholeName(t *testing.T) {
	// One name being the common prefix itself must not panic and must
	// return the full shorter name.
	names := []string{"Timeout", "TimeoutRead"}
	got := lcs.CommonWordPrefix(names)
	assert.Equal(t, "Timeout", got)
}

func TestCommonWordSuffix(t *testing.T) {
	names := []string{"ReadTimeout", "WriteTimeout", "IdleTimeout"}
	got := lcs.CommonWordSuffix(names)
	assert.Equal(t, "Timeout", got)
}

func TestCommonWordSuffixEmpty(t *testing.T) {
	got := lcs.CommonWordSuffix(nil)
	assert.Equal(t, "", got)
}

func TestNoCommonWordSuffix(t *testing.T) {
	names := []string{"Host", "Port", "User"}
	got := lcs.CommonWordSuffix(names)
	assert.Equal(t, "", got)
}

func TestCommonWordSuffixSingleName(t *testing.T) {
	// With a single name the whole name is its own common suffix. Callers
	// must guard against trimming a member name down to nothing.
	names := []string{"Timeout"}
	got := lcs.CommonWordSuffix(names)
	assert.Equal(t, "Timeout", got)
}

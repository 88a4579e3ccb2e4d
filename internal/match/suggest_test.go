package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"enum", "enum", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"enmu", "enum", 2},
		{"foreign_mode", "foreign_mod", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSuggest(t *testing.T) {
	kinds := []string{"enum", "fn", "foreign_mod", "other", "struct"}

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"enm", "enum", true},
		{"structt", "struct", true},
		{"foriegn_mod", "foreign_mod", true},
		{"fun", "fn", true},
		{"trait", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.name, kinds)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

package keynorm_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeydtaylor/scopecore/pkg/internal/keynorm"
)

// TestNormalize_Table walks representative raw labels through normalization.
func TestNormalize_Table(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "sensor1", "SENSOR1"},
		{"extension stripped", "sensor1.csv", "SENSOR1"},
		{"whitespace trimmed", "  sensor1.csv  ", "SENSOR1"},
		{"separators unified", "ch-1 pressure (raw)", "CH_1_PRESSURE_RAW"},
		{"runs collapsed", "a--__--b", "A_B"},
		{"leading and trailing stripped", "_sensor_", "SENSOR"},
		{"dotted version keeps only trailing ext stripped", "rec.v2.csv", "REC_V2"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"punctuation only", "!!!", ""},
		{"non ascii replaced", "tempé", "TEMP"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keynorm.Normalize(tc.in))
		})
	}
}

// TestNormalize_Idempotent asserts normalize(normalize(x)) == normalize(x).
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"sensor1.csv",
		"  CH 1 / pressure!.txt",
		"___",
		"MiXeD-case_Name.dat",
		"a.b.c.d",
		"",
	}
	for _, in := range inputs {
		once := keynorm.Normalize(in)
		assert.Equal(t, once, keynorm.Normalize(once), "input %q", in)
	}
}

// TestNormalize_Shape asserts every non-empty result matches
// ^[A-Z0-9]+(_[A-Z0-9]+)*$ with no leading, trailing, or doubled underscores.
func TestNormalize_Shape(t *testing.T) {
	shape := regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`)
	inputs := []string{
		"sensor1.csv",
		"__a__b__",
		"weird!!name??.log",
		"x",
		"-x-",
		"Ch1 (final) v2.csv",
	}
	for _, in := range inputs {
		out := keynorm.Normalize(in)
		if out == "" {
			continue
		}
		assert.Regexp(t, shape, out, "input %q", in)
	}
}

// TestTokens checks token extraction drops empties and single characters.
func TestTokens(t *testing.T) {
	tokens := keynorm.Tokens("A_BC_DEF__X")
	assert.Len(t, tokens, 2)
	assert.Contains(t, tokens, "BC")
	assert.Contains(t, tokens, "DEF")

	assert.Empty(t, keynorm.Tokens("A_B_C"))
	assert.Empty(t, keynorm.Tokens(""))
}

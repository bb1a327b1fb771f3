package strerror

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAtoi verifies the best-effort conversion used for -n and CODE,
// which must never fail and must mirror C's atoi.
func TestAtoi(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"0", 0},
		{"2", 2},
		{"130", 130},
		{"-5", -5},
		{"+7", 7},
		{"  42", 42},
		{"\t\n12", 12},
		{"12abc", 12},
		{"3.9", 3},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"+-3", 0},
		{"- 3", 0},
		{"007", 7},
		{"2147483647", math.MaxInt32},
		{"2147483648", math.MaxInt32},
		{"4294967296", math.MaxInt32},
		{"-4294967297", math.MinInt32},
		{"99999999999999999999999", math.MaxInt32},
		{"-2147483648", math.MinInt32},
		{"-99999999999999999999999", math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Atoi(tt.input))
		})
	}
}

// TestTable_Message checks lookup and the unknown-code fallback.
func TestTable_Message(t *testing.T) {
	table := Table{1: "first", 2: "second"}

	assert.Equal(t, "first", table.Message(1))
	assert.Equal(t, "second", table.Message(2))
	assert.Equal(t, "Unknown error 3", table.Message(3))
	assert.Equal(t, "Unknown error -1", table.Message(-1))
}

// TestPOSIXTable verifies the fallback table covers the classic codes
// without gaps.
func TestPOSIXTable(t *testing.T) {
	for code := 1; code <= 34; code++ {
		assert.NotContains(t, POSIXTable.Message(code), "Unknown error", "code %d", code)
	}
	assert.Equal(t, "No such file or directory", POSIXTable.Message(2))
	assert.Equal(t, "Unknown error 35", POSIXTable.Message(35))
}

// TestCapitalize checks first-rune upper casing.
func TestCapitalize(t *testing.T) {
	assert.Equal(t, "No such file or directory", capitalize("no such file or directory"))
	assert.Equal(t, "Already upper", capitalize("Already upper"))
	assert.Equal(t, "", capitalize(""))
}

// TestResolverFunc verifies the function adapter.
func TestResolverFunc(t *testing.T) {
	var r Resolver = ResolverFunc(func(code int) string {
		return "stub"
	})
	assert.Equal(t, "stub", r.Message(2))
}

// TestHost_Message verifies behavior that holds on every platform.
// Exact wording of known codes is platform specific and is covered by
// the per-OS tests.
func TestHost_Message(t *testing.T) {
	h := Host{}

	assert.Equal(t, "Success", h.Message(0))
	assert.Equal(t, "Unknown error -1", h.Message(-1))
	assert.NotEmpty(t, h.Message(2))

	// Repeated lookups are stable.
	for code := 1; code <= 300; code++ {
		assert.Equal(t, h.Message(code), h.Message(code))
	}
}

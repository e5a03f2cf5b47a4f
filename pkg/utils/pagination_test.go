package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    int
	}{
		{"first page", 1, 10, 0},
		{"second page of five", 2, 5, 5},
		{"third page", 3, 10, 20},
		{"zero page", 0, 10, 0},
		{"negative page", -4, 10, 0},
		{"zero limit", 3, 0, 0},
		{"huge page saturates", math.MaxInt/100 + 2, 100, math.MaxInt},
		{"max int page", math.MaxInt, 10, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateOffset(tt.page, tt.perPage))
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(11, 0))
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)

	page, limit = NormalizePage(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxLimit, limit)
}

func TestHugePageNeverYieldsNegativeOffset(t *testing.T) {
	for _, raw := range []string{"92233720368547759", "92233720368547760", "9223372036854775807"} {
		page, limit := NormalizePage(ParseInt(raw, 1), 100)
		offset := CalculateOffset(page, limit)

		assert.LessOrEqual(t, page, MaxPage, raw)
		assert.GreaterOrEqual(t, offset, 0, raw)
	}

	page, limit := NormalizePage(math.MaxInt/100+1, 100)
	assert.Equal(t, MaxPage, page)
	assert.Equal(t, (MaxPage-1)*100, CalculateOffset(page, limit))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, ParseInt("7", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("-3", 10))
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"Action", "Drama"}, UniqueStrings([]string{"Action", " ", "Drama", "Action"}))
}

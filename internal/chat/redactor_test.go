package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testPhone = "(406) 239-0850"

func TestRedactPricesDollarAmounts(t *testing.T) {
	result := RedactPrices("Drywall repair typically runs $450 to $1,200 per room.", testPhone)
	assert.Equal(t, 2, result.Hits)
	assert.NotContains(t, result.Text, "$450")
	assert.NotContains(t, result.Text, "$1,200")
	assert.Contains(t, result.Text, "[Contact (406) 239-0850 for pricing]")
}

func TestRedactPricesSpelledOut(t *testing.T) {
	result := RedactPrices("That job is usually around 500 dollars if the framing is sound.", testPhone)
	assert.Equal(t, 1, result.Hits)
	assert.NotContains(t, result.Text, "500 dollars")
	assert.Contains(t, result.Text, "[Contact (406) 239-0850 for pricing]")
}

func TestRedactPricesCostPhrasing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		gone  string
	}{
		{"cost is", "The cost is 300 for a small patch.", "cost is 300"},
		{"costs about", "It costs about $750 for that size.", "costs about $750"},
		{"price around", "Our price around 900 covers materials.", "price around 900"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RedactPrices(tt.input, testPhone)
			assert.GreaterOrEqual(t, result.Hits, 1)
			assert.NotContains(t, result.Text, tt.gone)
			assert.Contains(t, result.Text, "[Contact (406) 239-0850 for pricing]")
		})
	}
}

func TestRedactPricesLeavesCleanTextAlone(t *testing.T) {
	input := "We offer free quotes for every project. Call us to schedule a walkthrough."
	result := RedactPrices(input, testPhone)
	assert.Zero(t, result.Hits)
	assert.Equal(t, input, result.Text)
}

func TestRedactPricesReplacementIsStable(t *testing.T) {
	// The token itself must not look like a price to any pattern, or repeated
	// filtering would mangle it.
	first := RedactPrices("A room costs $400.", testPhone)
	second := RedactPrices(first.Text, testPhone)
	assert.Zero(t, second.Hits)
	assert.Equal(t, first.Text, second.Text)
}

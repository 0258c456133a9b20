package chat

import (
	"fmt"
	"regexp"
)

// pricePatterns match price-like substrings in generated text: currency
// amounts, "N dollars", and "cost/price is/about N" phrasings.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d+(?:[.,]\d+)*`),
	regexp.MustCompile(`(?i)\d+\s*dollars?`),
	regexp.MustCompile(`(?i)cost[s]?\s*(is|are|about|around)?\s*\$?\d+`),
	regexp.MustCompile(`(?i)price[s]?\s*(is|are|about|around)?\s*\$?\d+`),
}

// RedactionResult reports the cleaned text and how many price spans were
// replaced.
type RedactionResult struct {
	Text string
	Hits int
}

// RedactPrices replaces every price-like span with a contact-for-pricing
// token carrying the business phone number. This is the second, independent
// enforcement of the no-speculative-pricing rule: the deterministic responder
// catches pricing questions, this catches prices mentioned incidentally in an
// otherwise answerable reply.
func RedactPrices(text, phone string) RedactionResult {
	replacement := fmt.Sprintf("[Contact %s for pricing]", phone)
	hits := 0
	for _, re := range pricePatterns {
		text = re.ReplaceAllStringFunc(text, func(string) string {
			hits++
			return replacement
		})
	}
	return RedactionResult{Text: text, Hits: hits}
}

package intent

import "strings"

// Category is the coarse bucket chosen by the sorter.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryACS
	CategoryBAP
)

// String returns the upper-case category label.
func (c Category) String() string {
	switch c {
	case CategoryACS:
		return "ACS"
	case CategoryBAP:
		return "BAP"
	default:
		return "UNKNOWN"
	}
}

// categoryKeywords is evaluated in order; the first category with any
// keyword present in the query wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryACS, []string{"balance", "recharge", "transaction", "loan"}},
	{CategoryBAP, []string{"agent", "update", "cancel", "help"}},
}

// Sort classifies query into a coarse category. Anything that is not a
// non-empty string is CategoryUnknown.
func Sort(query any) Category {
	text, ok := normalize(query)
	if !ok {
		return CategoryUnknown
	}
	return sortText(text)
}

// sortText expects already-lowercased text.
func sortText(text string) Category {
	for _, ck := range categoryKeywords {
		if containsAny(text, ck.keywords) {
			return ck.category
		}
	}
	return CategoryUnknown
}

// normalize lowercases query when it is a non-empty string. No other
// folding is applied; combining marks stay separate runes so a keyword
// followed by one still matches.
func normalize(query any) (string, bool) {
	var s string
	switch q := query.(type) {
	case string:
		s = q
	case *string:
		if q == nil {
			return "", false
		}
		s = *q
	default:
		return "", false
	}
	if s == "" {
		return "", false
	}
	return strings.ToLower(s), true
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

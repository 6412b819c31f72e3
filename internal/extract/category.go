package extract

import "strings"

type categoryRule struct {
	keywords []string
	name     string
}

// Ordered: the first category with any keyword hit wins.
var categoryRules = []categoryRule{
	{[]string{"food", "restaurant", "cafe", "coffee", "đồ ăn", "nhà hàng", "quán"}, "food"},
	{[]string{"transport", "taxi", "grab", "uber", "xe"}, "transport"},
	{[]string{"shopping", "store", "market", "mua sắm", "siêu thị"}, "shopping"},
	{[]string{"health", "hospital", "pharmacy", "y tế", "bệnh viện"}, "health"},
	{[]string{"entertainment", "movie", "cinema", "giải trí"}, "entertainment"},
}

// ClassifyCategory labels receipt text with an expense category, or nil when
// none of the configured keywords occur.
func ClassifyCategory(text string) *string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				name := rule.name
				return &name
			}
		}
	}
	return nil
}

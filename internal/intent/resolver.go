package intent

// rule maps keyword presence to an action. Rules in a resolver are
// checked in order and the first match wins.
type rule struct {
	keywords   []string
	name       string
	confidence float64
}

// resolver picks a specific action for text already routed to its
// category. It always produces a result; fallback applies when no rule
// matches.
type resolver struct {
	rules              []rule
	fallback           string
	fallbackConfidence float64
}

var acsResolver = resolver{
	rules: []rule{
		{keywords: []string{"transaction"}, name: NameLastTransaction, confidence: 0.9},
		{keywords: []string{"loan"}, name: NameLoanInfo, confidence: 0.9},
		{keywords: []string{"recharge", "top up"}, name: NameRechargeAccount, confidence: 0.85},
	},
	// Any ACS-routed text without a more specific keyword is a balance
	// inquiry, even when "balance" itself was not what routed it here.
	fallback:           NameBalanceInquiry,
	fallbackConfidence: 0.8,
}

var bapResolver = resolver{
	rules: []rule{
		{keywords: []string{"update"}, name: NameUpdateDetails, confidence: 0.9},
		{keywords: []string{"cancel"}, name: NameCancelAction, confidence: 0.9},
	},
	fallback:           NameAgentSupport,
	fallbackConfidence: 0.8,
}

// resolve scans the full text, independent of which keyword the sorter
// matched.
func (r resolver) resolve(text string) Result {
	for _, rl := range r.rules {
		if containsAny(text, rl.keywords) {
			return resultFor(rl.name, rl.confidence)
		}
	}
	return resultFor(r.fallback, r.fallbackConfidence)
}

// resolverFor returns the resolver for c. ok is false for CategoryUnknown.
func resolverFor(c Category) (resolver, bool) {
	switch c {
	case CategoryACS:
		return acsResolver, true
	case CategoryBAP:
		return bapResolver, true
	default:
		return resolver{}, false
	}
}

func resultFor(name string, confidence float64) Result {
	e := registry[name]
	return Result{
		Intent:     e.Name,
		Service:    e.Service,
		Digit:      e.Digit,
		Confidence: confidence,
	}
}

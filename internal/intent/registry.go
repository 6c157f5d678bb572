// Package intent turns a spoken transcript into one of the fixed IVR
// actions. Classification is a two-stage keyword lookup: a coarse sorter
// picks the service category, then a per-category resolver picks the
// specific action and its digit. The keypad and voice paths meet on that
// digit.
package intent

import "sort"

// Service identifies the backend that owns an action.
type Service string

const (
	ServiceACS     Service = "acs"
	ServiceBAP     Service = "bap"
	ServiceUnknown Service = "unknown"
)

// Intent names. NameUnknown is never stored in the registry.
const (
	NameBalanceInquiry  = "balance_inquiry"
	NameRechargeAccount = "recharge_account"
	NameLastTransaction = "last_transaction"
	NameLoanInfo        = "loan_info"
	NameAgentSupport    = "agent_support"
	NameUpdateDetails   = "update_details"
	NameCancelAction    = "cancel_action"
	NameUnknown         = "unknown"
)

// DigitUnknown is reported when no action matched.
const DigitUnknown = "0"

// Entry is a single registered action.
type Entry struct {
	Name    string  `json:"name"`
	Service Service `json:"service"`
	Digit   string  `json:"digit"`
}

// registry is populated at init and never written again.
var registry = map[string]Entry{
	NameBalanceInquiry:  {Name: NameBalanceInquiry, Service: ServiceACS, Digit: "1"},
	NameRechargeAccount: {Name: NameRechargeAccount, Service: ServiceACS, Digit: "2"},
	NameLastTransaction: {Name: NameLastTransaction, Service: ServiceACS, Digit: "3"},
	NameLoanInfo:        {Name: NameLoanInfo, Service: ServiceACS, Digit: "4"},
	NameAgentSupport:    {Name: NameAgentSupport, Service: ServiceBAP, Digit: "5"},
	NameUpdateDetails:   {Name: NameUpdateDetails, Service: ServiceBAP, Digit: "6"},
	NameCancelAction:    {Name: NameCancelAction, Service: ServiceBAP, Digit: "7"},
}

// byDigit is the inverse of registry.
var byDigit = func() map[string]Entry {
	m := make(map[string]Entry, len(registry))
	for _, e := range registry {
		m[e.Digit] = e
	}
	return m
}()

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// LookupDigit returns the entry bound to digit.
func LookupDigit(digit string) (Entry, bool) {
	e, ok := byDigit[digit]
	return e, ok
}

// Entries returns all registered actions ordered by digit.
func Entries() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Digit < out[j].Digit })
	return out
}

// Mapping returns a copy of the name -> entry table. Callers may modify
// the returned map freely.
func Mapping() map[string]Entry {
	m := make(map[string]Entry, len(registry))
	for k, v := range registry {
		m[k] = v
	}
	return m
}

package intent

// Result is the outcome of a single classification.
type Result struct {
	Intent     string  `json:"intent"`
	Service    Service `json:"service"`
	Digit      string  `json:"digit"`
	Confidence float64 `json:"confidence"`
}

// Unknown is returned for input that matched no category.
var Unknown = Result{
	Intent:     NameUnknown,
	Service:    ServiceUnknown,
	Digit:      DigitUnknown,
	Confidence: 0.0,
}

// IsUnknown reports whether r is the unresolved result.
func (r Result) IsUnknown() bool {
	return r.Digit == DigitUnknown
}

// Detector is the classification entry point. It holds no state; the
// zero value is ready to use and safe for concurrent callers.
type Detector struct{}

// Detect classifies query. Nil, empty and non-string input yield Unknown.
func (Detector) Detect(query any) Result {
	text, ok := normalize(query)
	if !ok {
		return Unknown
	}
	r, ok := resolverFor(sortText(text))
	if !ok {
		return Unknown
	}
	return r.resolve(text)
}

// Mapping returns the registry for introspection.
func (Detector) Mapping() map[string]Entry {
	return Mapping()
}

// Detect classifies query with a zero Detector.
func Detect(query any) Result {
	return Detector{}.Detect(query)
}

// Package responder maps keypad digits to the canned text spoken back to
// the caller. Both the keypad path and the voice path end here once a
// digit is known.
package responder

import (
	"fmt"
	"os"

	"github.com/flowpbx/ivrdemo/internal/intent"
	"gopkg.in/yaml.v3"
)

// DigitRepeatMenu replays the main menu instead of an action response.
const DigitRepeatMenu = "9"

// file is the on-disk YAML layout.
type file struct {
	Menu      string            `yaml:"menu"`
	Fallback  string            `yaml:"fallback"`
	Unknown   map[string]string `yaml:"unknown"`
	Responses []fileEntry       `yaml:"responses"`
}

type fileEntry struct {
	Digit   string `yaml:"digit"`
	Service string `yaml:"service"`
	Text    string `yaml:"text"`
}

type response struct {
	service intent.Service
	text    string
}

// Table is an immutable digit -> response lookup. It is safe for
// concurrent use.
type Table struct {
	menu     string
	fallback string
	unknown  map[intent.Service]string
	byDigit  map[string]response
}

// Load returns the built-in table when path is empty, otherwise it parses
// the YAML file at path.
func Load(path string) (*Table, error) {
	if path == "" {
		return Parse(defaultTable)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading responses file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return t, nil
}

// Default returns the built-in table. It panics if the embedded file is
// invalid, which is a build defect.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("responder: embedded table: %v", err))
	}
	return t
}

// Parse decodes and validates a YAML response table.
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing responses: %w", err)
	}
	if f.Fallback == "" {
		return nil, fmt.Errorf("fallback text is required")
	}
	if f.Menu == "" {
		return nil, fmt.Errorf("menu text is required")
	}

	t := &Table{
		menu:     f.Menu,
		fallback: f.Fallback,
		unknown:  make(map[intent.Service]string, len(f.Unknown)),
		byDigit:  make(map[string]response, len(f.Responses)),
	}

	for svc, text := range f.Unknown {
		s := intent.Service(svc)
		if s != intent.ServiceACS && s != intent.ServiceBAP {
			return nil, fmt.Errorf("unknown: unsupported service %q", svc)
		}
		t.unknown[s] = text
	}

	for i, e := range f.Responses {
		if len(e.Digit) != 1 || e.Digit[0] < '1' || e.Digit[0] > '9' {
			return nil, fmt.Errorf("responses[%d]: digit %q must be a single digit 1-9", i, e.Digit)
		}
		if e.Digit == DigitRepeatMenu {
			return nil, fmt.Errorf("responses[%d]: digit %s is reserved for the menu", i, DigitRepeatMenu)
		}
		if e.Text == "" {
			return nil, fmt.Errorf("responses[%d]: text is required", i)
		}
		if _, dup := t.byDigit[e.Digit]; dup {
			return nil, fmt.Errorf("responses[%d]: duplicate digit %s", i, e.Digit)
		}
		svc := intent.Service(e.Service)
		if svc != intent.ServiceACS && svc != intent.ServiceBAP {
			return nil, fmt.Errorf("responses[%d]: unsupported service %q", i, e.Service)
		}
		if reg, ok := intent.LookupDigit(e.Digit); ok && reg.Service != svc {
			return nil, fmt.Errorf("responses[%d]: digit %s belongs to %s, not %q", i, e.Digit, reg.Service, e.Service)
		}
		t.byDigit[e.Digit] = response{service: svc, text: e.Text}
	}

	return t, nil
}

// Respond returns the text for digit. The menu digit replays the menu and
// unmapped digits, including "0", get the fallback text.
func (t *Table) Respond(digit string) string {
	if digit == DigitRepeatMenu {
		return t.menu
	}
	if r, ok := t.byDigit[digit]; ok {
		return r.text
	}
	return t.fallback
}

// Process answers digit on behalf of a single service. Digits owned by a
// different service get that service's unknown-request text.
func (t *Table) Process(service intent.Service, digit string) string {
	if r, ok := t.byDigit[digit]; ok && r.service == service {
		return r.text
	}
	if text, ok := t.unknown[service]; ok {
		return text
	}
	return t.fallback
}

// ProcessACS is Process for the account service.
func (t *Table) ProcessACS(digit string) string {
	return t.Process(intent.ServiceACS, digit)
}

// ProcessBAP is Process for the business action provider.
func (t *Table) ProcessBAP(digit string) string {
	return t.Process(intent.ServiceBAP, digit)
}

// Menu returns the main menu text.
func (t *Table) Menu() string {
	return t.menu
}

// Fallback returns the text used for unrecognised input.
func (t *Table) Fallback() string {
	return t.fallback
}

// Digits reports how many digits have a response.
func (t *Table) Digits() int {
	return len(t.byDigit)
}

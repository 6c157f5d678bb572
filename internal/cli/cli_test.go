package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flowpbx/ivrdemo/internal/intent"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("IVRDEMO_RESPONSES_FILE", "")

	// Flags live on package-level commands; reset the ones tests touch.
	responsesPath = ""
	formatFlag = "json"
	if cmd, _, err := RootCmd.Find([]string{"detect"}); err == nil {
		cmd.Flags().Set("respond", "false")
	}
	if cmd, _, err := RootCmd.Find([]string{"respond"}); err == nil {
		cmd.Flags().Set("service", "")
	}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestDetectJSON(t *testing.T) {
	out, err := run(t, "detect", "show", "me", "my", "last", "transaction")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got detectOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("failed to decode %q: %v", out, err)
	}
	want := intent.Result{Intent: intent.NameLastTransaction, Service: intent.ServiceACS, Digit: "3", Confidence: 0.9}
	if got.Result != want {
		t.Errorf("expected %+v, got %+v", want, got.Result)
	}
	if got.Response != "" {
		t.Errorf("expected no response without --respond, got %q", got.Response)
	}
}

func TestDetectNoArgsIsUnknown(t *testing.T) {
	out, err := run(t, "detect", "--format", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "unknown\tunknown\t0\t0.00\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDetectRespondText(t *testing.T) {
	out, err := run(t, "detect", "--respond", "-f", "text", "cancel my request")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if lines[0] != "cancel_action\tbap\t7\t0.90" {
		t.Errorf("unexpected classification line %q", lines[0])
	}
	if lines[1] != "Your request has been canceled." {
		t.Errorf("unexpected response line %q", lines[1])
	}
}

func TestRespond(t *testing.T) {
	out, err := run(t, "respond", "-f", "text", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "Your account balance is ₹500." {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "respond", "--service", "bap", "-f", "text", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "BAP: Unknown request." {
		t.Errorf("unexpected scoped output %q", out)
	}
}

func TestRespondErrors(t *testing.T) {
	if _, err := run(t, "respond"); err == nil {
		t.Error("expected error without digit")
	}
	if _, err := run(t, "respond", "--service", "crm", "1"); err == nil {
		t.Error("expected error for unknown service")
	}
	if _, err := run(t, "respond", "-f", "yaml", "1"); err == nil {
		t.Error("expected error for unknown format")
	}
	for _, digit := range []string{"12", "x", ""} {
		out, err := run(t, "respond", "-f", "text", digit)
		if err == nil {
			t.Errorf("respond %q: expected error, got output %q", digit, out)
		}
	}
}

func TestRespondKeypadSymbols(t *testing.T) {
	for _, digit := range []string{"0", "*", "#"} {
		out, err := run(t, "respond", "-f", "text", digit)
		if err != nil {
			t.Fatalf("respond %q: unexpected error: %v", digit, err)
		}
		if strings.TrimSpace(out) != "I'm sorry, I didn't understand that. Please try again." {
			t.Errorf("respond %q: expected fallback, got %q", digit, out)
		}
	}
}

func TestRespondCustomTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.yaml")
	content := "menu: Press one.\nfallback: Say again?\nresponses:\n  - digit: \"1\"\n    service: acs\n    text: Zero balance.\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	out, err := run(t, "respond", "-r", path, "-f", "text", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "Zero balance." {
		t.Errorf("unexpected output %q", out)
	}
}

func TestIntents(t *testing.T) {
	out, err := run(t, "intents", "--format", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "1\tacs\tbalance_inquiry" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[6] != "7\tbap\tcancel_action" {
		t.Errorf("unexpected last line %q", lines[6])
	}
}

func TestMenu(t *testing.T) {
	out, err := run(t, "menu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("failed to decode %q: %v", out, err)
	}
	if !strings.HasPrefix(got["menu"], "Welcome.") {
		t.Errorf("unexpected menu %q", got["menu"])
	}
}

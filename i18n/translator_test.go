package i18n

import "testing"

func TestTranslator_DefaultAndDanish(t *testing.T) {
	// default is en
	if msg := T("not_a_number", nil); msg == "not_a_number" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("da")
	if msg := T("not_a_number", nil); msg == "value is not a finite number" {
		t.Fatalf("expected danish message, got %q", msg)
	}

	// unknown languages fall back to en
	SetLanguage("xx")
	if msg := T("not_a_number", nil); msg != "value is not a finite number" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
}

func TestTranslator_FillsData(t *testing.T) {
	SetLanguage("en")
	got := T("invalid_format", map[string]string{"axis": "latitude", "example": "89 59.999N"})
	if got != "not a valid latitude, expected e.g. 89 59.999N" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes should echo the code, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if got := T("required", nil); got != "X:required" {
		t.Fatalf("custom translator not used, got %q", got)
	}
	SetTranslator(nil)
	if got := T("required", nil); got != "value is required" {
		t.Fatalf("nil should restore the english dictionary, got %q", got)
	}
}

package jsonschema

import (
	"strings"
	"testing"
)

func TestMarshal_OmitsEmpty(t *testing.T) {
	raw, err := Marshal(&Schema{Type: "number", Minimum: Float(-90), Maximum: Float(90)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	if !strings.HasSuffix(s, "}\n") {
		t.Fatalf("expected trailing newline: %q", s)
	}
	for _, absent := range []string{"pattern", "examples", "properties", "$schema"} {
		if strings.Contains(s, absent) {
			t.Fatalf("%s should be omitted: %s", absent, s)
		}
	}
	back, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Minimum == nil || *back.Minimum != -90 || *back.Maximum != 90 {
		t.Fatalf("bounds lost: %+v", back)
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{")); err == nil {
		t.Fatalf("expected error")
	}
}

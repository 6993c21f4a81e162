package pattern

import "testing"

func TestRender_Combinators(t *testing.T) {
	cases := []struct {
		name string
		f    Fragment
		want string
	}{
		{"literal", Literal("1.5"), `1\.5`},
		{"class", Class("NS-"), `[NS\-]`},
		{"seq skips nil", Seq(Raw("a"), nil, Raw("b")), "ab"},
		{"alt", Alt(Raw("90"), Raw("[0-8][0-9]")), "(?:90|[0-8][0-9])"},
		{"optional", Optional(Raw("x")), "(?:x)?"},
		{"optional nil", Seq(Raw("a"), Optional(nil)), "a"},
		{"star", Repeat(Raw(`\s`), 0, -1), `(?:\s)*`},
		{"plus", Repeat(Raw(`\s`), 1, -1), `(?:\s)+`},
		{"at least", Repeat(Raw("a"), 2, -1), "(?:a){2,}"},
		{"exact", Digits(1, 1), "(?:[0-9]){1}"},
		{"range", Digits(1, 4), "(?:[0-9]){1,4}"},
		{"full", Full(Raw("a|b")), "^(?:a|b)$"},
	}
	for _, tc := range cases {
		if got := tc.f.Render(); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestCompile_FullMatchOnly(t *testing.T) {
	re := Compile(Full(Seq(Digits(1, 2), Optional(Class("NS")))))
	for _, s := range []string{"4", "45", "45N", "9S"} {
		if !re.MatchString(s) {
			t.Fatalf("expected %q to match", s)
		}
	}
	for _, s := range []string{"", "456", "45NN", " 45", "x45"} {
		if re.MatchString(s) {
			t.Fatalf("expected %q not to match", s)
		}
	}
}

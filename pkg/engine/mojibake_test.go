package engine

import "testing"

func TestFixMojibake_SpecificPatternsWinOverGenericFallback(t *testing.T) {
	cases := map[string]string{
		"It's done":             "It's done", // no mojibake present
		"Itâ€™s done": "It's done",
		"â€œQuotedâ€": "“Quoted”",
		"Step one â€¢ step two":        "Step one • step two",
		"A â†’ B":                      "A → B",
	}
	for input, want := range cases {
		if got := fixMojibake(input); got != want {
			t.Errorf("fixMojibake(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFixMojibake_GenericFallbackStillApplies(t *testing.T) {
	// A bare "â€" sequence with no more specific suffix should still fall
	// through to the generic closing-quote replacement.
	input := "plain â€ end"
	got := fixMojibake(input)
	if got == input {
		t.Error("expected the generic fallback to rewrite a lone â€ sequence")
	}
}

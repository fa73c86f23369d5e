package emoji

import "testing"

func TestGetEmoji(t *testing.T) {
	defer SetEmojiDisabled(false)

	SetEmojiDisabled(false)
	if got := GetEmoji("organization"); got != "🏢" {
		t.Errorf("Expected emoji, got %q", got)
	}

	SetEmojiDisabled(true)
	if !IsEmojiDisabled() {
		t.Fatal("Expected emoji to be disabled")
	}
	if got := GetEmoji("organization"); got != "[ORG]" {
		t.Errorf("Expected fallback, got %q", got)
	}
}

func TestLookupUnknownKey(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		if got := Lookup("no-such-key", enabled); got != "[?]" {
			t.Errorf("Lookup(enabled=%v) = %q, want [?]", enabled, got)
		}
	}
}

func TestKindsHaveFallbacks(t *testing.T) {
	for _, key := range []string{"category", "theme", "organization", "problem"} {
		if got := Lookup(key, false); got == "[?]" || got == "" {
			t.Errorf("Expected a fallback for %s, got %q", key, got)
		}
	}
}

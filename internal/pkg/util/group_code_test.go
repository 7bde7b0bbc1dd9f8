package util

import (
	"strings"
	"testing"
)

func TestGenerateGroupCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := GenerateGroupCode(6)
		if len(code) != 6 {
			t.Fatalf("code %q length = %d, want 6", code, len(code))
		}
		// 易混淆字符不应出现
		for _, banned := range []string{"0", "O", "1", "I"} {
			if strings.Contains(code, banned) {
				t.Fatalf("code %q contains ambiguous char %q", code, banned)
			}
		}
		seen[code] = struct{}{}
	}
	if len(seen) < 90 {
		t.Fatalf("only %d distinct codes out of 100, generator looks broken", len(seen))
	}
}

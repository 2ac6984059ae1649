package game

import (
	"strings"
	"testing"
)

func TestNewGameCodeAlphabetAndLength(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := newGameCode(8)
		if len(code) != 8 {
			t.Fatalf("code %q has length %d, want 8", code, len(code))
		}
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Fatalf("code %q contains %q outside the alphabet", code, c)
			}
		}
	}
}

func TestNewGameCodeDefaultsLength(t *testing.T) {
	if got := len(newGameCode(0)); got != DefaultCodeLength {
		t.Errorf("zero length falls back to %d, got %d", DefaultCodeLength, got)
	}
}

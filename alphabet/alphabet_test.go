package alphabet_test

import (
	"testing"

	"github.com/corvidae/parselov/alphabet"
)

func TestCodePointToSymbol(t *testing.T) {
	table := make([]int32, 'b'+1)
	table['a'] = 1
	a := alphabet.New(table)

	if got := a.CodePointToSymbol('a'); got != 1 {
		t.Errorf("CodePointToSymbol('a') = %d, want 1", got)
	}
	if got := a.CodePointToSymbol('b'); got != alphabet.Sink {
		t.Errorf("CodePointToSymbol('b') = %d, want Sink", got)
	}
	if got := a.CodePointToSymbol('z'); got != alphabet.Sink {
		t.Errorf("CodePointToSymbol('z') (out of range) = %d, want Sink", got)
	}
}

func TestSymbolsDecodesCodePointsNotBytes(t *testing.T) {
	table := make([]int32, 0x3042+1) // includes U+3042 'あ'
	table['a'] = 1
	table[0x3042] = 2

	a := alphabet.New(table)
	symbols := a.Symbols("aあ")
	want := []int{1, 2}
	if len(symbols) != len(want) {
		t.Fatalf("Symbols(%q) = %v, want %v", "aあ", symbols, want)
	}
	for i := range want {
		if symbols[i] != want[i] {
			t.Errorf("Symbols(%q)[%d] = %d, want %d", "aあ", i, symbols[i], want[i])
		}
	}
}

/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code this file was
 * adapted from. I have placed the source code in this file in the public
 * domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package gqlast

import (
	"errors"
	"testing"
)

// Read does not skip trivia - that filtering is the Parser's job - so it
// must see exactly the same token sequence Next does, just with the
// finished-state translated into ErrReadAfterFinished.
func TestLexerReadIncludesTrivia(t *testing.T) {
	src := "  # comment\n  query , { hero }"
	l := NewLexer([]byte(src))

	var kinds []TokenKind
	for {
		tok, err := l.Read()
		if err != nil {
			t.Fatal(err)
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == Eof {
			break
		}
	}

	want := []TokenKind{Whitespace, Comment, Whitespace, Name, Whitespace, Comma,
		Whitespace, LCurly, Whitespace, Name, Whitespace, RCurly, Eof}
	if len(kinds) != len(want) {
		t.Fatalf("got %v tokens, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerReadAfterFinished(t *testing.T) {
	l := NewLexer([]byte(""))

	tok, err := l.Read()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != Eof {
		t.Fatalf("got %v, want Eof", tok.Kind)
	}

	if _, err := l.Read(); !errors.Is(err, ErrReadAfterFinished) {
		t.Errorf("got %v, want ErrReadAfterFinished", err)
	}
}

func TestLexerNextIncludesTrivia(t *testing.T) {
	l := NewLexer([]byte("a, b"))

	var kinds []TokenKind
	for {
		tok, ok, err := l.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == Eof {
			break
		}
	}

	want := []TokenKind{Name, Comma, Whitespace, Name, Eof}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerWithLimit(t *testing.T) {
	l := NewLexer([]byte("a b c d e")).WithLimit(2)

	if _, ok, err := l.Next(); err != nil || !ok {
		t.Fatalf("first token: ok=%v err=%v", ok, err)
	}
	if _, ok, err := l.Next(); err != nil || !ok {
		t.Fatalf("second token: ok=%v err=%v", ok, err)
	}
	if _, ok, err := l.Next(); !errors.Is(err, ErrLimitReached) || ok {
		t.Errorf("third token: got ok=%v err=%v, want ErrLimitReached", ok, err)
	}
}

func TestLexerLexBatchCollectsErrors(t *testing.T) {
	alloc := NewAllocator()
	l := NewLexer([]byte("a .. b"))

	tokens, errs := l.Lex(alloc)

	if len(errs) != 1 || !errors.Is(errs[0], ErrUnterminatedSpreadOperator) {
		t.Errorf("got errs %v, want exactly one ErrUnterminatedSpreadOperator", errs)
	}

	var names int
	for _, tok := range tokens {
		if tok.Kind == Name {
			names++
		}
	}
	if names != 2 {
		t.Errorf("got %d Name tokens, want 2 (batch mode should keep scanning past the bad spread)", names)
	}
}

func TestLexerLexStopsAtLimitImmediately(t *testing.T) {
	alloc := NewAllocator()
	l := NewLexer([]byte("a b c")).WithLimit(1)

	tokens, errs := l.Lex(alloc)

	if len(errs) != 1 || !errors.Is(errs[0], ErrLimitReached) {
		t.Fatalf("got errs %v, want exactly one ErrLimitReached", errs)
	}
	if len(tokens) != 1 {
		t.Errorf("got %d tokens, want exactly 1 before the limit stopped the run", len(tokens))
	}
}

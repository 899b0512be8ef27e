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

/*
Lexer drives a Cursor over a full source buffer and applies the concerns
a single Cursor call can't: an optional cap on how many tokens may be
produced, and the finished bookkeeping that makes reading past Eof an
error instead of silently repeating it.

The zero-value limit means unlimited. WithLimit sets it; once the cap is
reached, Read/Next/Lex report ErrLimitReached instead of continuing.
*/
type Lexer struct {
	cursor   *Cursor
	limit    int
	emitted  int
	finished bool
}

// NewLexer creates a Lexer over source. source is not copied.
func NewLexer(source []byte) *Lexer {
	return &Lexer{cursor: NewCursor(source)}
}

// WithLimit caps the number of tokens this Lexer will produce, Eof
// included. n <= 0 means unlimited (the default). Returns the receiver
// for chaining.
func (l *Lexer) WithLimit(n int) *Lexer {
	if n > 0 {
		l.limit = n
	} else {
		l.limit = 0
	}
	return l
}

/*
Read is the same as Next except "already finished" (Eof already
returned or the limit already reached) is reported as the error
ErrReadAfterFinished instead of a bare false. Read never skips
anything - trivia (Whitespace, Comment, Comma) is returned like any
other token; filtering it out is the Parser's job, not the Lexer's.
*/
func (l *Lexer) Read() (Token, error) {
	tok, ok, err := l.Next()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, newLexError(KindLexerLifecycle, ErrReadAfterFinished, tok.Index, "")
	}
	return tok, nil
}

// clone returns an independent copy of l: same position, same limit and
// emitted count, but advancing the copy never touches l. Cursor holds
// only plain values (a byte-slice header, two ints, a bool, a byte), so this
// is a cheap value copy, not a re-scan from the start of source.
func (l *Lexer) clone() *Lexer {
	cursorCopy := *l.cursor
	lexerCopy := *l
	lexerCopy.cursor = &cursorCopy
	return &lexerCopy
}

/*
Next returns the single next token, trivia included, without skipping
anything. ok is false once the lexer is finished (Eof already returned
or the limit already reached), in which case the caller should stop
calling Next rather than treat it as an error - this is the streaming
mode meant for callers that want every byte of trivia accounted for.
*/
func (l *Lexer) Next() (Token, bool, error) {
	if l.finished {
		return Token{}, false, nil
	}

	if l.limit > 0 && l.emitted >= l.limit {
		l.finished = true
		return Token{}, false, newLexError(KindLexerLifecycle, ErrLimitReached, l.cursor.offset(), "")
	}

	tok, err := l.cursor.advance()
	if err != nil {
		// The cursor always consumes at least one byte before failing, so
		// the next call resumes past the bad input rather than looping.
		return Token{}, false, err
	}

	l.emitted++
	if tok.Kind == Eof {
		l.finished = true
	}

	return tok, true, nil
}

/*
Lex runs the lexer to completion in batch mode and returns every token it
produced (trivia included) together with every error encountered. Unlike
Read/Next, a lexical error does not stop the run: Lex keeps calling Next
and collecting further errors so a caller can report more than one
problem per pass. The sole exception is ErrLimitReached, which always
terminates the run immediately, since continuing would defeat the point
of the limit. The alloc parameter is accepted for symmetry with Parse
and ParseWithLimit; Lex itself does not allocate through it.
*/
func (l *Lexer) Lex(alloc *Allocator) ([]Token, []error) {
	var tokens []Token
	var errs []error

	for {
		tok, ok, err := l.Next()
		if err != nil {
			errs = append(errs, err)
			if lexErr, isLexErr := err.(*Error); isLexErr && lexErr.Type == ErrLimitReached {
				return tokens, errs
			}
			continue
		}
		if !ok {
			return tokens, errs
		}
		tokens = append(tokens, tok)
		if tok.Kind == Eof {
			return tokens, errs
		}
	}
}

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
Parser turns a token stream into a Document with one token of lookahead.
Every grammar procedure below reads that lookahead to decide which
production applies and never backtracks: GraphQL's grammar is built so a
single token always determines the next rule, the same property the
teacher's Pratt parser leaned on to avoid backtracking of its own.
*/
type Parser struct {
	alloc  *Allocator
	lexer  *Lexer
	tracer *Tracer
	depth  int
}

// NewParser creates a Parser over source, allocating every AST node
// through alloc.
func NewParser(alloc *Allocator, source []byte) *Parser {
	return &Parser{alloc: alloc, lexer: NewLexer(source)}
}

// WithLimit caps the number of tokens the underlying Lexer will produce.
// See Lexer.WithLimit.
func (p *Parser) WithLimit(n int) *Parser {
	p.lexer.WithLimit(n)
	return p
}

// WithTracer attaches a Tracer that receives one line per grammar
// procedure entered. A nil Tracer (the default) costs nothing.
func (p *Parser) WithTracer(t *Tracer) *Parser {
	p.tracer = t
	return p
}

// Parse parses the whole document.
func (p *Parser) Parse() (*Document, error) {
	if p.tracer != nil {
		p.tracer.reset()
	}
	return p.parseDocument()
}

/*
Parse is the top-level convenience entry point: it allocates every node
of the returned Document through alloc and parses source to completion,
consuming through Eof.
*/
func Parse(alloc *Allocator, source []byte) (*Document, error) {
	return NewParser(alloc, source).Parse()
}

// ParseWithLimit is Parse with a cap on the number of tokens the lexer
// may produce while doing so.
func ParseWithLimit(alloc *Allocator, source []byte, limit int) (*Document, error) {
	return NewParser(alloc, source).WithLimit(limit).Parse()
}

// -- Navigation primitives --

// nextToken pulls from the lexer until a non-trivia token appears
// (Whitespace, Comment and Comma are invisible to the grammar) and
// returns it, advancing the real Lexer. This is the parser-side
// counterpart of Lexer.Read's old behavior: trivia-skipping belongs
// here, not inside the Lexer.
func (p *Parser) nextToken() (Token, error) {
	for {
		tok, err := p.lexer.Read()
		if err != nil {
			return Token{}, err
		}
		if !tok.Kind.isTrivia() {
			return tok, nil
		}
	}
}

// lookahead peeks at the next non-trivia token without mutating lexer
// state, by running the same skip nextToken does over a throwaway copy
// of the lexer.
func lookahead(l *Lexer) (Token, error) {
	cp := l.clone()
	for {
		tok, err := cp.Read()
		if err != nil {
			return Token{}, err
		}
		if !tok.Kind.isTrivia() {
			return tok, nil
		}
	}
}

// peek returns the next significant token without consuming it.
func (p *Parser) peek() (Token, error) {
	return lookahead(p.lexer)
}

// pop consumes and returns the next significant token.
func (p *Parser) pop() (Token, error) {
	return p.nextToken()
}

func (p *Parser) peekKind() (TokenKind, error) {
	tok, err := p.peek()
	if err != nil {
		return 0, err
	}
	return tok.Kind, nil
}

func (p *Parser) unexpected(tok Token, expected string) error {
	return &Error{Kind: KindSyntactic, Type: ErrUnexpectedToken, Offset: tok.Index,
		Detail: "expected " + expected + ", got " + tok.String()}
}

// expect pops the next token and requires it to have kind.
func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.pop()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, p.unexpected(tok, kind.String())
	}
	return tok, nil
}

// expectOptional pops the next token iff it has kind, reporting whether
// it did. It never errors by itself.
func (p *Parser) expectOptional(kind TokenKind) (Token, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, false, err
	}
	if tok.Kind != kind {
		return Token{}, false, nil
	}
	if _, err := p.pop(); err != nil {
		return Token{}, false, err
	}
	return tok, true, nil
}

// atKeyword reports whether the next token is a Name spelling the given
// keyword, without consuming it.
func (p *Parser) atKeyword(kw string) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == Name && string(tok.Data) == kw, nil
}

// expectKeyword requires the next token to be a Name spelling kw.
func (p *Parser) expectKeyword(kw string) (Token, error) {
	tok, err := p.pop()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != Name || string(tok.Data) != kw {
		return Token{}, p.unexpected(tok, "keyword "+kw)
	}
	return tok, nil
}

// expectOptionalKeyword consumes the next token iff it is a Name
// spelling kw.
func (p *Parser) expectOptionalKeyword(kw string) (bool, error) {
	ok, err := p.atKeyword(kw)
	if err != nil || !ok {
		return false, err
	}
	if _, err := p.pop(); err != nil {
		return false, err
	}
	return true, nil
}

// name requires and returns the next token as a NameValue.
func (p *Parser) name() (NameValue, error) {
	tok, err := p.expect(Name)
	if err != nil {
		return NameValue{}, err
	}
	return NameValue{Value: string(tok.Data), Index: tok.Index}, nil
}

// keywordOf looks up the next token's dispatch keyword, reporting
// (kw, true) when the token is a Name found in keywordDict, (kwLCurly,
// true) for a bare "{" (the anonymous-query shorthand), or (0, false)
// otherwise - the signal for "not a recognized definition-leading
// keyword".
func (p *Parser) keywordOf() (keyword, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return 0, false, err
	}
	if tok.Kind == LCurly {
		return kwLCurly, true, nil
	}
	if tok.Kind != Name {
		return 0, false, nil
	}
	kw, ok := keywordDict[string(tok.Data)]
	return kw, ok, nil
}

func (p *Parser) trace(procedure string) func() {
	if p.tracer == nil {
		return func() {}
	}
	tok, _ := p.peek()
	p.tracer.enter(p.depth, procedure, tok)
	p.depth++
	return func() { p.depth-- }
}

// -- Document / definition dispatch --

func (p *Parser) parseDocument() (*Document, error) {
	defer p.trace("Document")()

	doc := newNode[Document](p.alloc)

	for {
		kind, err := p.peekKind()
		if err != nil {
			return nil, err
		}
		if kind == Eof {
			break
		}
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}

	return doc, nil
}

func (p *Parser) parseDefinition() (Definition, error) {
	defer p.trace("Definition")()

	kind, err := p.peekKind()
	if err != nil {
		return nil, err
	}

	var desc string
	if kind == StringValue {
		desc, err = p.description()
		if err != nil {
			return nil, err
		}
	}

	kw, ok, err := p.keywordOf()
	if err != nil {
		return nil, err
	}
	if !ok {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		return nil, &Error{Kind: KindSyntactic, Type: ErrUnknownDefinition, Offset: tok.Index,
			Detail: "unexpected " + tok.String()}
	}

	if desc != "" {
		switch kw {
		case kwSchema, kwScalar, kwType, kwInterface, kwUnion, kwEnum, kwInput, kwDirective:
			// Descriptions are only valid here.
		default:
			tok, _ := p.peek()
			return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedToken, Offset: tok.Index,
				Detail: "description not allowed before this definition"}
		}
	}

	switch kw {
	case kwLCurly, kwQuery, kwMutation, kwSubscription:
		return p.parseOperationDefinition()
	case kwFragment:
		return p.parseFragmentDefinition()
	case kwSchema:
		return p.parseSchemaDefinition(desc)
	case kwScalar:
		return p.parseScalarTypeDefinition(desc)
	case kwType:
		return p.parseObjectTypeDefinition(desc)
	case kwInterface:
		return p.parseInterfaceTypeDefinition(desc)
	case kwUnion:
		return p.parseUnionTypeDefinition(desc)
	case kwEnum:
		return p.parseEnumTypeDefinition(desc)
	case kwInput:
		return p.parseInputObjectTypeDefinition(desc)
	case kwDirective:
		return p.parseDirectiveDefinition(desc)
	case kwExtend:
		return p.parseTypeSystemExtension()
	default:
		tok, _ := p.peek()
		return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedKeyword, Offset: tok.Index,
			Detail: "keyword not valid at definition position: " + tok.String()}
	}
}

// description reads an optional leading StringValue description, used by
// every type-system definition. It returns the lexeme unchanged - quotes
// included, one pair or three, and no escape interpretation performed -
// the same "slice it, don't touch it" rule scalarValue applies to every
// other StringValue.
func (p *Parser) description() (string, error) {
	tok, ok, err := p.expectOptional(StringValue)
	if err != nil || !ok {
		return "", err
	}
	return string(tok.Data), nil
}

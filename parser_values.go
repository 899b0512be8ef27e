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

// -- List-parsing disciplines --
//
// The bracketed and directive lists in parser_executable.go and
// parser_typesystem.go are built from these four helpers. The separator
// lists ("A & B", "A | B", "LOC | LOC") are hand-rolled loops in
// implementsInterfaces, unionMemberTypes and directiveLocationList.

// parseMany parses open, one or more items via parseOne until close is
// seen, then close. A bare "open close" with nothing between is an
// error: the caller wanted at least one item.
func parseMany[T any](p *Parser, open, close TokenKind, parseOne func() (T, error)) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}

	var items []T
	for {
		item, err := parseOne()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		kind, err := p.peekKind()
		if err != nil {
			return nil, err
		}
		if kind == close {
			break
		}
	}

	if _, err := p.expect(close); err != nil {
		return nil, err
	}
	return items, nil
}

// parseOptionalMany is parseMany, but the whole list (open through close)
// is optional: if the next token isn't open, it returns a nil slice and
// no error instead of failing.
func parseOptionalMany[T any](p *Parser, open, close TokenKind, parseOne func() (T, error)) ([]T, error) {
	kind, err := p.peekKind()
	if err != nil {
		return nil, err
	}
	if kind != open {
		return nil, nil
	}
	return parseMany(p, open, close, parseOne)
}

// parseDelimitedMany parses open, zero or more items via parseOne until
// close is seen, then close - unlike parseMany, an empty "open close"
// pair is accepted.
func parseDelimitedMany[T any](p *Parser, open, close TokenKind, parseOne func() (T, error)) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}

	var items []T
	for {
		kind, err := p.peekKind()
		if err != nil {
			return nil, err
		}
		if kind == close {
			break
		}
		item, err := parseOne()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if _, err := p.expect(close); err != nil {
		return nil, err
	}
	return items, nil
}

// parseAny repeatedly parses items with no surrounding delimiters at
// all, stopping as soon as predicate reports the next token doesn't
// start another one. Used for directive lists ("@a @b @c"), where
// repetition is signalled purely by what comes next rather than by
// brackets.
func parseAny[T any](p *Parser, predicate func() (bool, error), parseOne func() (T, error)) ([]T, error) {
	var items []T
	for {
		again, err := predicate()
		if err != nil {
			return nil, err
		}
		if !again {
			return items, nil
		}
		item, err := parseOne()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// -- Directives --

func (p *Parser) directives(isConst bool) ([]*Directive, error) {
	return parseAny(p, func() (bool, error) {
		kind, err := p.peekKind()
		return kind == At, err
	}, func() (*Directive, error) { return p.directive(isConst) })
}

func (p *Parser) directive(isConst bool) (*Directive, error) {
	defer p.trace("Directive")()

	if _, err := p.expect(At); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	args, err := p.arguments(isConst)
	if err != nil {
		return nil, err
	}

	d := newNode[Directive](p.alloc)
	d.Name = name
	d.Args = args
	d.Index = name.Index
	return d, nil
}

func (p *Parser) arguments(isConst bool) ([]*Argument, error) {
	return parseOptionalMany(p, LParen, RParen, func() (*Argument, error) { return p.argument(isConst) })
}

func (p *Parser) argument(isConst bool) (*Argument, error) {
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	val, err := p.value(isConst)
	if err != nil {
		return nil, err
	}

	a := newNode[Argument](p.alloc)
	a.Name = name
	a.Value = val
	a.Index = name.Index
	return a, nil
}

// -- Types --

func (p *Parser) typeRef() (*Type, error) {
	defer p.trace("Type")()

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	var base *Type
	switch tok.Kind {
	case LBracket:
		if _, err := p.pop(); err != nil {
			return nil, err
		}
		inner, err := p.typeRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RBracket); err != nil {
			return nil, err
		}
		base = newNode[Type](p.alloc)
		base.Kind = ListType
		base.OfType = inner
		base.Index = tok.Index
	case Name:
		if _, err := p.pop(); err != nil {
			return nil, err
		}
		base = newNode[Type](p.alloc)
		base.Kind = NamedType
		base.Name = string(tok.Data)
		base.Index = tok.Index
	default:
		return nil, p.unexpected(tok, "a type")
	}

	bangTok, hasBang, err := p.expectOptional(Bang)
	if err != nil {
		return nil, err
	}
	if !hasBang {
		return base, nil
	}
	if base.Kind == NonNullType {
		return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedToken, Offset: bangTok.Index,
			Detail: "a non-null type cannot itself be wrapped in another !"}
	}

	wrapped := newNode[Type](p.alloc)
	wrapped.Kind = NonNullType
	wrapped.OfType = base
	wrapped.Index = base.Index
	return wrapped, nil
}

// -- Values --

// value parses one Value. isConst forbids VariableValue, the discipline
// required inside default values and directive arguments on definitions,
// where every value must be resolvable without execution-time bindings.
func (p *Parser) value(isConst bool) (*Value, error) {
	defer p.trace("Value")()

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case Dollar:
		if isConst {
			return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedVariable, Offset: tok.Index,
				Detail: "variables are not allowed in a const value"}
		}
		return p.variableValue()
	case Int:
		if _, err := p.pop(); err != nil {
			return nil, err
		}
		return p.scalarValue(IntValue, tok), nil
	case Float:
		if _, err := p.pop(); err != nil {
			return nil, err
		}
		return p.scalarValue(FloatValue, tok), nil
	case StringValue:
		if _, err := p.pop(); err != nil {
			return nil, err
		}
		return p.scalarValue(StringValueKind, tok), nil
	case LBracket:
		return p.listValue(isConst)
	case LCurly:
		return p.objectValue(isConst)
	case Name:
		return p.nameLedValue(tok)
	default:
		return nil, p.unexpected(tok, "a value")
	}
}

func (p *Parser) scalarValue(kind ValueKind, tok Token) *Value {
	v := newNode[Value](p.alloc)
	v.Kind = kind
	v.Raw = string(tok.Data)
	v.Index = tok.Index
	return v
}

func (p *Parser) variableValue() (*Value, error) {
	if _, err := p.expect(Dollar); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	v := newNode[Value](p.alloc)
	v.Kind = VariableValue
	v.Name = name.Value
	v.Index = name.Index
	return v, nil
}

// nameLedValue resolves the three Value productions spelled as a bare
// Name: "true"/"false" (BooleanValue), "null" (NullValue), anything else
// (EnumValue).
func (p *Parser) nameLedValue(tok Token) (*Value, error) {
	if _, err := p.pop(); err != nil {
		return nil, err
	}
	v := newNode[Value](p.alloc)
	v.Index = tok.Index
	switch string(tok.Data) {
	case "true", "false":
		v.Kind = BooleanValue
		v.Raw = string(tok.Data)
	case "null":
		v.Kind = NullValue
	default:
		v.Kind = EnumValue
		v.Raw = string(tok.Data)
	}
	return v, nil
}

func (p *Parser) listValue(isConst bool) (*Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	items, err := parseDelimitedMany(p, LBracket, RBracket, func() (*Value, error) { return p.value(isConst) })
	if err != nil {
		return nil, err
	}
	v := newNode[Value](p.alloc)
	v.Kind = ListValue
	v.List = items
	v.Index = tok.Index
	return v, nil
}

func (p *Parser) objectValue(isConst bool) (*Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	fields, err := parseDelimitedMany(p, LCurly, RCurly, func() (*ObjectField, error) { return p.objectField(isConst) })
	if err != nil {
		return nil, err
	}
	v := newNode[Value](p.alloc)
	v.Kind = ObjectValue
	v.Fields = fields
	v.Index = tok.Index
	return v, nil
}

func (p *Parser) objectField(isConst bool) (*ObjectField, error) {
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	val, err := p.value(isConst)
	if err != nil {
		return nil, err
	}
	f := newNode[ObjectField](p.alloc)
	f.Name = name
	f.Value = val
	f.Index = name.Index
	return f, nil
}

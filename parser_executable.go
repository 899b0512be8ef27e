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

// parseOperationDefinition handles both the full form ("query Name(...)
// @dir { ... }") and the anonymous shorthand ("{ ... }"), distinguished
// by whether the next token is "{" directly.
func (p *Parser) parseOperationDefinition() (*OperationDefinition, error) {
	defer p.trace("OperationDefinition")()

	op := newNode[OperationDefinition](p.alloc)

	kind, err := p.peekKind()
	if err != nil {
		return nil, err
	}

	if kind == LCurly {
		op.Operation = OpQuery
		set, err := p.selectionSet()
		if err != nil {
			return nil, err
		}
		op.SelectionSet = set
		return op, nil
	}

	opTok, err := p.pop()
	if err != nil {
		return nil, err
	}
	switch string(opTok.Data) {
	case "query":
		op.Operation = OpQuery
	case "mutation":
		op.Operation = OpMutation
	case "subscription":
		op.Operation = OpSubscription
	}
	op.Index = opTok.Index

	if nameTok, hasName, err := p.expectOptional(Name); err != nil {
		return nil, err
	} else if hasName {
		n := NameValue{Value: string(nameTok.Data), Index: nameTok.Index}
		op.Name = &n
	}

	varDefs, err := p.variableDefinitions()
	if err != nil {
		return nil, err
	}
	op.VariableDefinitions = varDefs

	directives, err := p.directives(false)
	if err != nil {
		return nil, err
	}
	op.Directives = directives

	set, err := p.selectionSet()
	if err != nil {
		return nil, err
	}
	op.SelectionSet = set

	return op, nil
}

func (p *Parser) variableDefinitions() ([]*VariableDefinition, error) {
	return parseOptionalMany(p, LParen, RParen, p.variableDefinition)
}

func (p *Parser) variableDefinition() (*VariableDefinition, error) {
	defer p.trace("VariableDefinition")()

	if _, err := p.expect(Dollar); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	t, err := p.typeRef()
	if err != nil {
		return nil, err
	}

	var def *Value
	if _, hasEq, err := p.expectOptional(Eq); err != nil {
		return nil, err
	} else if hasEq {
		def, err = p.value(true)
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}

	v := newNode[VariableDefinition](p.alloc)
	v.Name = name
	v.Type = t
	v.Default = def
	v.Directives = directives
	v.Index = name.Index
	return v, nil
}

func (p *Parser) selectionSet() ([]Selection, error) {
	defer p.trace("SelectionSet")()
	return parseMany(p, LCurly, RCurly, p.selection)
}

func (p *Parser) selection() (Selection, error) {
	kind, err := p.peekKind()
	if err != nil {
		return nil, err
	}
	if kind == Spread {
		return p.fragmentSpreadOrInlineFragment()
	}
	return p.field()
}

func (p *Parser) field() (Selection, error) {
	defer p.trace("Field")()

	first, err := p.name()
	if err != nil {
		return nil, err
	}

	var alias *NameValue
	name := first
	if _, hasColon, err := p.expectOptional(Colon); err != nil {
		return nil, err
	} else if hasColon {
		alias = &first
		name, err = p.name()
		if err != nil {
			return nil, err
		}
	}

	args, err := p.arguments(false)
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(false)
	if err != nil {
		return nil, err
	}

	kind, err := p.peekKind()
	if err != nil {
		return nil, err
	}
	var set []Selection
	if kind == LCurly {
		set, err = p.selectionSet()
		if err != nil {
			return nil, err
		}
	}

	f := newNode[Field](p.alloc)
	f.Alias = alias
	f.Name = name
	f.Args = args
	f.Directives = directives
	f.SelectionSet = set
	f.Index = name.Index
	return f, nil
}

// fragmentSpreadOrInlineFragment handles the two productions that begin
// with "...": a FragmentSpread ("...Name") and an InlineFragment
// ("...on Type { ... }" or "... { ... }"). The fragment name "on" is
// grammatically reserved for the type-condition clause, so a spread
// naming a fragment literally called "on" is invalid - the grammar has
// no way to spell it unambiguously.
func (p *Parser) fragmentSpreadOrInlineFragment() (Selection, error) {
	spreadTok, err := p.expect(Spread)
	if err != nil {
		return nil, err
	}

	onKw, err := p.atKeyword("on")
	if err != nil {
		return nil, err
	}

	kind, err := p.peekKind()
	if err != nil {
		return nil, err
	}

	if !onKw && kind == Name {
		defer p.trace("FragmentSpread")()
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		if name.Value == "on" {
			return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedFragmentName, Offset: name.Index,
				Detail: `"on" cannot be used as a fragment name`}
		}
		directives, err := p.directives(false)
		if err != nil {
			return nil, err
		}
		fs := newNode[FragmentSpread](p.alloc)
		fs.Name = name
		fs.Directives = directives
		fs.Index = spreadTok.Index
		return fs, nil
	}

	defer p.trace("InlineFragment")()

	var typeCondition string
	if onKw {
		if _, err := p.pop(); err != nil {
			return nil, err
		}
		tc, err := p.name()
		if err != nil {
			return nil, err
		}
		typeCondition = tc.Value
	}

	directives, err := p.directives(false)
	if err != nil {
		return nil, err
	}
	set, err := p.selectionSet()
	if err != nil {
		return nil, err
	}

	inl := newNode[InlineFragment](p.alloc)
	inl.TypeCondition = typeCondition
	inl.Directives = directives
	inl.SelectionSet = set
	inl.Index = spreadTok.Index
	return inl, nil
}

func (p *Parser) parseFragmentDefinition() (*FragmentDefinition, error) {
	defer p.trace("FragmentDefinition")()

	fragTok, err := p.expectKeyword("fragment")
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	if name.Value == "on" {
		return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedFragmentName, Offset: name.Index,
			Detail: `"on" cannot be used as a fragment name`}
	}

	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.name()
	if err != nil {
		return nil, err
	}

	directives, err := p.directives(false)
	if err != nil {
		return nil, err
	}
	set, err := p.selectionSet()
	if err != nil {
		return nil, err
	}

	fd := newNode[FragmentDefinition](p.alloc)
	fd.Name = name
	fd.TypeCondition = typeCondition.Value
	fd.Directives = directives
	fd.SelectionSet = set
	fd.Index = fragTok.Index
	return fd, nil
}

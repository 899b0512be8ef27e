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

import "github.com/bits-and-blooms/bitset"

// -- Schema definition --

func (p *Parser) parseSchemaDefinition(desc string) (*SchemaDefinition, error) {
	defer p.trace("SchemaDefinition")()

	tok, err := p.expectKeyword("schema")
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	roots, err := parseMany(p, LCurly, RCurly, p.rootOperationTypeDefinition)
	if err != nil {
		return nil, err
	}

	s := newNode[SchemaDefinition](p.alloc)
	s.Description = desc
	s.Directives = directives
	s.RootOperations = roots
	s.Index = tok.Index
	return s, nil
}

func (p *Parser) rootOperationTypeDefinition() (*RootOperationTypeDefinition, error) {
	tok, err := p.expect(Name)
	if err != nil {
		return nil, err
	}
	var op OperationType
	switch string(tok.Data) {
	case "query":
		op = OpQuery
	case "mutation":
		op = OpMutation
	case "subscription":
		op = OpSubscription
	default:
		return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedToken, Offset: tok.Index,
			Detail: "expected query, mutation or subscription"}
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}

	r := newNode[RootOperationTypeDefinition](p.alloc)
	r.Operation = op
	r.Type = name
	r.Index = tok.Index
	return r, nil
}

// -- Scalar --

func (p *Parser) parseScalarTypeDefinition(desc string) (*ScalarTypeDefinition, error) {
	defer p.trace("ScalarTypeDefinition")()

	tok, err := p.expectKeyword("scalar")
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}

	s := newNode[ScalarTypeDefinition](p.alloc)
	s.Description = desc
	s.Name = name
	s.Directives = directives
	s.Index = tok.Index
	return s, nil
}

// -- Object --

func (p *Parser) parseObjectTypeDefinition(desc string) (*ObjectTypeDefinition, error) {
	defer p.trace("ObjectTypeDefinition")()

	tok, err := p.expectKeyword("type")
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	implements, err := p.implementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.fieldsDefinition()
	if err != nil {
		return nil, err
	}

	o := newNode[ObjectTypeDefinition](p.alloc)
	o.Description = desc
	o.Name = name
	o.Implements = implements
	o.Directives = directives
	o.Fields = fields
	o.Index = tok.Index
	return o, nil
}

// implementsInterfaces parses the optional "implements A & B & C" clause
// shared by object and interface type definitions, including the
// leading "&" some schemas write before the first member.
func (p *Parser) implementsInterfaces() ([]NameValue, error) {
	ok, err := p.expectOptionalKeyword("implements")
	if err != nil || !ok {
		return nil, err
	}
	if _, _, err := p.expectOptional(Amp); err != nil {
		return nil, err
	}

	var names []NameValue
	for {
		n, err := p.name()
		if err != nil {
			return nil, err
		}
		names = append(names, n)

		if _, hasAmp, err := p.expectOptional(Amp); err != nil {
			return nil, err
		} else if !hasAmp {
			break
		}
	}
	return names, nil
}

func (p *Parser) fieldsDefinition() ([]*FieldDefinition, error) {
	return parseOptionalMany(p, LCurly, RCurly, p.fieldDefinition)
}

func (p *Parser) fieldDefinition() (*FieldDefinition, error) {
	defer p.trace("FieldDefinition")()

	desc, err := p.description()
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	args, err := p.argumentsDefinition()
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
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}

	f := newNode[FieldDefinition](p.alloc)
	f.Description = desc
	f.Name = name
	f.Args = args
	f.Type = t
	f.Directives = directives
	f.Index = name.Index
	return f, nil
}

// argumentsDefinition parses the optional "(...)" clause of a field or
// directive definition. Unlike Arguments (a call site), an empty "()"
// is accepted here: a field may be declared with parens reserved for
// arguments it doesn't have yet.
func (p *Parser) argumentsDefinition() ([]*InputValueDefinition, error) {
	kind, err := p.peekKind()
	if err != nil {
		return nil, err
	}
	if kind != LParen {
		return nil, nil
	}
	return parseDelimitedMany(p, LParen, RParen, p.inputValueDefinition)
}

func (p *Parser) inputValueDefinition() (*InputValueDefinition, error) {
	defer p.trace("InputValueDefinition")()

	desc, err := p.description()
	if err != nil {
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

	iv := newNode[InputValueDefinition](p.alloc)
	iv.Description = desc
	iv.Name = name
	iv.Type = t
	iv.Default = def
	iv.Directives = directives
	iv.Index = name.Index
	return iv, nil
}

// -- Interface --

func (p *Parser) parseInterfaceTypeDefinition(desc string) (*InterfaceTypeDefinition, error) {
	defer p.trace("InterfaceTypeDefinition")()

	tok, err := p.expectKeyword("interface")
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	implements, err := p.implementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.fieldsDefinition()
	if err != nil {
		return nil, err
	}

	i := newNode[InterfaceTypeDefinition](p.alloc)
	i.Description = desc
	i.Name = name
	i.Implements = implements
	i.Directives = directives
	i.Fields = fields
	i.Index = tok.Index
	return i, nil
}

// -- Union --

func (p *Parser) parseUnionTypeDefinition(desc string) (*UnionTypeDefinition, error) {
	defer p.trace("UnionTypeDefinition")()

	tok, err := p.expectKeyword("union")
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	members, err := p.unionMemberTypes()
	if err != nil {
		return nil, err
	}

	u := newNode[UnionTypeDefinition](p.alloc)
	u.Description = desc
	u.Name = name
	u.Directives = directives
	u.Members = members
	u.Index = tok.Index
	return u, nil
}

func (p *Parser) unionMemberTypes() ([]NameValue, error) {
	if _, hasEq, err := p.expectOptional(Eq); err != nil || !hasEq {
		return nil, err
	}
	if _, _, err := p.expectOptional(Pipe); err != nil {
		return nil, err
	}

	var members []NameValue
	for {
		n, err := p.name()
		if err != nil {
			return nil, err
		}
		members = append(members, n)

		if _, hasPipe, err := p.expectOptional(Pipe); err != nil {
			return nil, err
		} else if !hasPipe {
			break
		}
	}
	return members, nil
}

// -- Enum --

func (p *Parser) parseEnumTypeDefinition(desc string) (*EnumTypeDefinition, error) {
	defer p.trace("EnumTypeDefinition")()

	tok, err := p.expectKeyword("enum")
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	values, err := p.enumValuesDefinition()
	if err != nil {
		return nil, err
	}

	e := newNode[EnumTypeDefinition](p.alloc)
	e.Description = desc
	e.Name = name
	e.Directives = directives
	e.Values = values
	e.Index = tok.Index
	return e, nil
}

func (p *Parser) enumValuesDefinition() ([]*EnumValueDefinition, error) {
	return parseOptionalMany(p, LCurly, RCurly, p.enumValueDefinition)
}

func (p *Parser) enumValueDefinition() (*EnumValueDefinition, error) {
	desc, err := p.description()
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	if name.Value == "true" || name.Value == "false" || name.Value == "null" {
		return nil, &Error{Kind: KindSyntactic, Type: ErrReservedEnumValueName, Offset: name.Index,
			Detail: name.Value}
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}

	e := newNode[EnumValueDefinition](p.alloc)
	e.Description = desc
	e.Name = name
	e.Directives = directives
	e.Index = name.Index
	return e, nil
}

// -- Input object --

func (p *Parser) parseInputObjectTypeDefinition(desc string) (*InputObjectTypeDefinition, error) {
	defer p.trace("InputObjectTypeDefinition")()

	tok, err := p.expectKeyword("input")
	if err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	fields, err := parseOptionalMany(p, LCurly, RCurly, p.inputValueDefinition)
	if err != nil {
		return nil, err
	}

	i := newNode[InputObjectTypeDefinition](p.alloc)
	i.Description = desc
	i.Name = name
	i.Directives = directives
	i.Fields = fields
	i.Index = tok.Index
	return i, nil
}

// -- Directive definition --

func (p *Parser) parseDirectiveDefinition(desc string) (*DirectiveDefinition, error) {
	defer p.trace("DirectiveDefinition")()

	tok, err := p.expectKeyword("directive")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(At); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	args, err := p.argumentsDefinition()
	if err != nil {
		return nil, err
	}
	repeatable, err := p.expectOptionalKeyword("repeatable")
	if err != nil {
		return nil, err
	}
	locations, err := p.directiveLocationList()
	if err != nil {
		return nil, err
	}

	d := newNode[DirectiveDefinition](p.alloc)
	d.Description = desc
	d.Name = name
	d.Args = args
	d.Repeatable = repeatable
	d.Locations = locations
	d.Index = tok.Index
	return d, nil
}

// directiveLocationList parses "on LOCATION | LOCATION ...", validating
// each name against the closed set of 19 directive locations. The
// bitset records which locations have been named; it is not consulted
// afterwards, so a repeated location is accepted and appears in the list
// once per occurrence. It is not retained on the AST node, which keeps
// the plain ordered name list a caller actually wants to print or walk.
func (p *Parser) directiveLocationList() ([]string, error) {
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	if _, _, err := p.expectOptional(Pipe); err != nil {
		return nil, err
	}

	seen := bitset.New(uint(len(directiveLocations)))
	var locations []string
	for {
		tok, err := p.expect(Name)
		if err != nil {
			return nil, err
		}
		idx := directiveLocationIndex(string(tok.Data))
		if idx < 0 {
			return nil, &Error{Kind: KindSyntactic, Type: ErrUnknownDirectiveLocation, Offset: tok.Index,
				Detail: string(tok.Data)}
		}
		seen.Set(uint(idx))
		locations = append(locations, string(tok.Data))

		if _, hasPipe, err := p.expectOptional(Pipe); err != nil {
			return nil, err
		} else if !hasPipe {
			break
		}
	}
	return locations, nil
}

// -- Type system extensions --

func (p *Parser) parseTypeSystemExtension() (TypeSystemExtension, error) {
	defer p.trace("TypeSystemExtension")()

	extendTok, err := p.expectKeyword("extend")
	if err != nil {
		return nil, err
	}

	kw, ok, err := p.keywordOf()
	if err != nil {
		return nil, err
	}
	if !ok {
		tok, _ := p.peek()
		return nil, &Error{Kind: KindSyntactic, Type: ErrUnknownDefinition, Offset: tok.Index,
			Detail: "expected a type-system definition keyword after extend"}
	}

	switch kw {
	case kwSchema:
		return p.parseSchemaExtension(extendTok)
	case kwScalar:
		return p.parseScalarTypeExtension(extendTok)
	case kwType:
		return p.parseObjectTypeExtension(extendTok)
	case kwInterface:
		return p.parseInterfaceTypeExtension(extendTok)
	case kwUnion:
		return p.parseUnionTypeExtension(extendTok)
	case kwEnum:
		return p.parseEnumTypeExtension(extendTok)
	case kwInput:
		return p.parseInputObjectTypeExtension(extendTok)
	default:
		tok, _ := p.peek()
		return nil, &Error{Kind: KindSyntactic, Type: ErrUnexpectedKeyword, Offset: tok.Index,
			Detail: "keyword not valid after extend"}
	}
}

func (p *Parser) parseSchemaExtension(extendTok Token) (*SchemaExtension, error) {
	if _, err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	roots, err := parseOptionalMany(p, LCurly, RCurly, p.rootOperationTypeDefinition)
	if err != nil {
		return nil, err
	}

	have := bitset.New(2)
	if len(directives) > 0 {
		have.Set(0)
	}
	if len(roots) > 0 {
		have.Set(1)
	}
	if have.None() {
		return nil, p.emptyExtensionError(extendTok, "schema")
	}

	s := newNode[SchemaExtension](p.alloc)
	s.Directives = directives
	s.RootOperations = roots
	s.Index = extendTok.Index
	return s, nil
}

func (p *Parser) parseScalarTypeExtension(extendTok Token) (*ScalarTypeExtension, error) {
	if _, err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 {
		return nil, p.emptyExtensionError(extendTok, "scalar")
	}

	s := newNode[ScalarTypeExtension](p.alloc)
	s.Name = name
	s.Directives = directives
	s.Index = extendTok.Index
	return s, nil
}

func (p *Parser) parseObjectTypeExtension(extendTok Token) (*ObjectTypeExtension, error) {
	if _, err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	implements, err := p.implementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.fieldsDefinition()
	if err != nil {
		return nil, err
	}

	have := bitset.New(3)
	if len(implements) > 0 {
		have.Set(0)
	}
	if len(directives) > 0 {
		have.Set(1)
	}
	if len(fields) > 0 {
		have.Set(2)
	}
	if have.None() {
		return nil, p.emptyExtensionError(extendTok, "type")
	}

	o := newNode[ObjectTypeExtension](p.alloc)
	o.Name = name
	o.Implements = implements
	o.Directives = directives
	o.Fields = fields
	o.Index = extendTok.Index
	return o, nil
}

func (p *Parser) parseInterfaceTypeExtension(extendTok Token) (*InterfaceTypeExtension, error) {
	if _, err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	implements, err := p.implementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.fieldsDefinition()
	if err != nil {
		return nil, err
	}

	have := bitset.New(3)
	if len(implements) > 0 {
		have.Set(0)
	}
	if len(directives) > 0 {
		have.Set(1)
	}
	if len(fields) > 0 {
		have.Set(2)
	}
	if have.None() {
		return nil, p.emptyExtensionError(extendTok, "interface")
	}

	i := newNode[InterfaceTypeExtension](p.alloc)
	i.Name = name
	i.Implements = implements
	i.Directives = directives
	i.Fields = fields
	i.Index = extendTok.Index
	return i, nil
}

func (p *Parser) parseUnionTypeExtension(extendTok Token) (*UnionTypeExtension, error) {
	if _, err := p.expectKeyword("union"); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	members, err := p.unionMemberTypes()
	if err != nil {
		return nil, err
	}

	have := bitset.New(2)
	if len(directives) > 0 {
		have.Set(0)
	}
	if len(members) > 0 {
		have.Set(1)
	}
	if have.None() {
		return nil, p.emptyExtensionError(extendTok, "union")
	}

	u := newNode[UnionTypeExtension](p.alloc)
	u.Name = name
	u.Directives = directives
	u.Members = members
	u.Index = extendTok.Index
	return u, nil
}

func (p *Parser) parseEnumTypeExtension(extendTok Token) (*EnumTypeExtension, error) {
	if _, err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	values, err := p.enumValuesDefinition()
	if err != nil {
		return nil, err
	}

	have := bitset.New(2)
	if len(directives) > 0 {
		have.Set(0)
	}
	if len(values) > 0 {
		have.Set(1)
	}
	if have.None() {
		return nil, p.emptyExtensionError(extendTok, "enum")
	}

	e := newNode[EnumTypeExtension](p.alloc)
	e.Name = name
	e.Directives = directives
	e.Values = values
	e.Index = extendTok.Index
	return e, nil
}

func (p *Parser) parseInputObjectTypeExtension(extendTok Token) (*InputObjectTypeExtension, error) {
	if _, err := p.expectKeyword("input"); err != nil {
		return nil, err
	}
	name, err := p.name()
	if err != nil {
		return nil, err
	}
	directives, err := p.directives(true)
	if err != nil {
		return nil, err
	}
	fields, err := parseOptionalMany(p, LCurly, RCurly, p.inputValueDefinition)
	if err != nil {
		return nil, err
	}

	have := bitset.New(2)
	if len(directives) > 0 {
		have.Set(0)
	}
	if len(fields) > 0 {
		have.Set(1)
	}
	if have.None() {
		return nil, p.emptyExtensionError(extendTok, "input")
	}

	i := newNode[InputObjectTypeExtension](p.alloc)
	i.Name = name
	i.Directives = directives
	i.Fields = fields
	i.Index = extendTok.Index
	return i, nil
}

func (p *Parser) emptyExtensionError(extendTok Token, what string) error {
	return &Error{Kind: KindSyntactic, Type: ErrUnexpectedToken, Offset: extendTok.Index,
		Detail: "extend " + what + " must add at least one directive, field or member"}
}

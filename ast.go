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

import "github.com/spf13/cast"

// Document is the root of a parsed GraphQL text. The grammar does not
// require a text to be wholly executable or wholly a type-system
// document, so Definitions may mix both families in any order the way
// the October 2021 grammar allows.
type Document struct {
	Definitions []Definition
}

// Definition is implemented by every top-level production a Document can
// contain: OperationDefinition, FragmentDefinition, and every
// TypeSystemDefinition/TypeSystemExtension variant.
type Definition interface {
	isDefinition()
}

// ExecutableDefinition is the subset of Definition the executable
// grammar produces.
type ExecutableDefinition interface {
	Definition
	isExecutableDefinition()
}

// TypeSystemDefinition is the subset of Definition a type-system document
// produces (schema, scalar, object, ... definitions).
type TypeSystemDefinition interface {
	Definition
	isTypeSystemDefinition()
}

// TypeSystemExtension is the subset of Definition an "extend ..." clause
// produces.
type TypeSystemExtension interface {
	Definition
	isTypeSystemExtension()
}

// TypeDefinition is implemented by the six ...TypeDefinition structs.
type TypeDefinition interface {
	TypeSystemDefinition
	isTypeDefinition()
}

// TypeExtension is implemented by the six ...TypeExtension structs.
type TypeExtension interface {
	TypeSystemExtension
	isTypeExtension()
}

// Selection is implemented by Field, FragmentSpread and InlineFragment,
// the three productions a SelectionSet may contain.
type Selection interface {
	isSelection()
}

// -- Names --

// NameValue is a bare Name token, used anywhere the grammar references an
// identifier by itself: a field's response key, a directive's name, a
// fragment's name, an enum value's spelling.
type NameValue struct {
	Value string
	Index int
}

// -- Types --

// TypeKind tags which of Type's three shapes, @spec Oct 2021 "Type", is
// populated: a named type, a list type wrapping OfType, or a non-null
// type wrapping OfType.
type TypeKind uint8

const (
	NamedType TypeKind = iota
	ListType
	NonNullType
)

// Type is every Type production folded into one tagged struct rather
// than three distinct node types, since every consumer (field types,
// input value types, variable types) needs to walk the same NonNull/List
// wrapping regardless of which grammar rule produced it.
type Type struct {
	Kind   TypeKind
	Name   string // set iff Kind == NamedType
	OfType *Type  // set iff Kind == ListType or Kind == NonNullType
	Index  int
}

// -- Values --

// ValueKind tags which field of Value is meaningful.
type ValueKind uint8

const (
	VariableValue ValueKind = iota
	IntValue
	FloatValue
	StringValueKind
	BooleanValue
	NullValue
	EnumValue
	ListValue
	ObjectValue
)

// Value is every Value production folded into one tagged struct, the
// same choice made for Type and for the same reason: a single recursive
// shape is easier for a caller to walk than nine small interface
// implementations, and GraphQL values nest arbitrarily (ListValue and
// ObjectValue contain more Values).
//
// Raw holds the literal token text for scalar kinds exactly as lexed, no
// escape interpretation performed; Int64/Float64/Bool parse Raw lazily
// through spf13/cast for callers that want the coerced Go value instead
// of the source text.
type Value struct {
	Kind ValueKind
	Raw  string // IntValue, FloatValue, StringValueKind, BooleanValue, EnumValue
	Name string // VariableValue (without the leading $)
	List []*Value
	Fields []*ObjectField
	Index  int
}

// Int64 parses Raw as a GraphQL IntValue. It only makes sense when Kind
// == IntValue; callers that don't know the kind ahead of time should
// check Kind first.
func (v *Value) Int64() (int64, error) {
	return cast.ToInt64E(v.Raw)
}

// Float64 parses Raw as a GraphQL FloatValue or IntValue.
func (v *Value) Float64() (float64, error) {
	return cast.ToFloat64E(v.Raw)
}

// Bool parses Raw as a GraphQL BooleanValue ("true" or "false").
func (v *Value) Bool() (bool, error) {
	return cast.ToBoolE(v.Raw)
}

// ObjectField is one "name: value" pair inside an ObjectValue.
type ObjectField struct {
	Name  NameValue
	Value *Value
	Index int
}

// -- Directives, arguments, variables --

// Argument is one "name: value" pair inside a field or directive's
// argument list.
type Argument struct {
	Name  NameValue
	Value *Value
	Index int
}

// Directive is one "@name(args...)" occurrence. Args is nil, not an
// empty non-nil slice, when the directive carries no parenthesized
// argument list at all - the distinction matters for round-tripping but
// this package does not print, so callers should treat nil and empty the
// same way.
type Directive struct {
	Name  NameValue
	Args  []*Argument
	Index int
}

// VariableDefinition is one "$name: Type = default @directives" entry in
// an operation's variable definition list.
type VariableDefinition struct {
	Name       NameValue
	Type       *Type
	Default    *Value // nil if absent
	Directives []*Directive
	Index      int
}

// InputValueDefinition is one argument or input-object-field declaration:
// "name: Type = default @directives", used inside FieldDefinition's
// argument list, DirectiveDefinition's argument list, and
// InputObjectTypeDefinition's field list.
type InputValueDefinition struct {
	Description string // raw StringValue lexeme (quotes included), empty if absent
	Name        NameValue
	Type        *Type
	Default     *Value // nil if absent
	Directives  []*Directive
	Index       int
}

// FieldDefinition is one field declaration inside an object or interface
// type: "name(args): Type @directives".
type FieldDefinition struct {
	Description string
	Name        NameValue
	Args        []*InputValueDefinition
	Type        *Type
	Directives  []*Directive
	Index       int
}

// EnumValueDefinition is one member of an EnumTypeDefinition's value set.
type EnumValueDefinition struct {
	Description string
	Name        NameValue
	Directives  []*Directive
	Index       int
}

// RootOperationTypeDefinition binds an operation kind to the object type
// implementing it inside a SchemaDefinition or SchemaExtension, e.g.
// "query: QueryRoot".
type RootOperationTypeDefinition struct {
	Operation OperationType
	Type      NameValue
	Index     int
}

// OperationType is one of the three fixed root-operation kinds.
type OperationType uint8

const (
	OpQuery OperationType = iota
	OpMutation
	OpSubscription
)

// -- Executable definitions --

// Field is a selection of one field, with its optional alias, argument
// list, directives and, for object/interface/union-typed fields, its own
// nested SelectionSet.
type Field struct {
	Alias        *NameValue // nil if no alias
	Name         NameValue
	Args         []*Argument
	Directives   []*Directive
	SelectionSet []Selection // nil for a leaf (scalar/enum) field
	Index        int
}

func (*Field) isSelection() {}

// FragmentSpread is a "...Name @directives" selection.
type FragmentSpread struct {
	Name       NameValue
	Directives []*Directive
	Index      int
}

func (*FragmentSpread) isSelection() {}

// InlineFragment is a "... on TypeCondition @directives { ... }"
// selection. TypeCondition is empty when the "on Type" clause is absent.
type InlineFragment struct {
	TypeCondition string
	Directives    []*Directive
	SelectionSet  []Selection
	Index         int
}

func (*InlineFragment) isSelection() {}

// OperationDefinition is one query/mutation/subscription, including the
// shorthand anonymous-query form ("{ ... }") where Name is empty and
// Operation defaults to OpQuery.
type OperationDefinition struct {
	Operation           OperationType
	Name                *NameValue // nil for the anonymous shorthand
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        []Selection
	Index               int
}

func (*OperationDefinition) isDefinition()           {}
func (*OperationDefinition) isExecutableDefinition() {}

// FragmentDefinition is one "fragment Name on TypeCondition { ... }"
// declaration. The fragment name "on" itself is grammatically reserved
// and rejected while parsing, ErrUnexpectedFragmentName.
type FragmentDefinition struct {
	Name          NameValue
	TypeCondition string
	Directives    []*Directive
	SelectionSet  []Selection
	Index         int
}

func (*FragmentDefinition) isDefinition()           {}
func (*FragmentDefinition) isExecutableDefinition() {}

// -- Type-system definitions --

// SchemaDefinition declares the object types implementing each root
// operation, plus any schema-level directives.
type SchemaDefinition struct {
	Description    string
	Directives     []*Directive
	RootOperations []*RootOperationTypeDefinition
	Index          int
}

func (*SchemaDefinition) isDefinition()           {}
func (*SchemaDefinition) isTypeSystemDefinition() {}

// ScalarTypeDefinition declares a custom scalar.
type ScalarTypeDefinition struct {
	Description string
	Name        NameValue
	Directives  []*Directive
	Index       int
}

func (*ScalarTypeDefinition) isDefinition()           {}
func (*ScalarTypeDefinition) isTypeSystemDefinition() {}
func (*ScalarTypeDefinition) isTypeDefinition()       {}

// ObjectTypeDefinition declares an object type, its interfaces and its
// fields.
type ObjectTypeDefinition struct {
	Description string
	Name        NameValue
	Implements  []NameValue
	Directives  []*Directive
	Fields      []*FieldDefinition
	Index       int
}

func (*ObjectTypeDefinition) isDefinition()           {}
func (*ObjectTypeDefinition) isTypeSystemDefinition() {}
func (*ObjectTypeDefinition) isTypeDefinition()       {}

// InterfaceTypeDefinition declares an interface type, which may itself
// implement other interfaces ("interface B implements A").
type InterfaceTypeDefinition struct {
	Description string
	Name        NameValue
	Implements  []NameValue
	Directives  []*Directive
	Fields      []*FieldDefinition
	Index       int
}

func (*InterfaceTypeDefinition) isDefinition()           {}
func (*InterfaceTypeDefinition) isTypeSystemDefinition() {}
func (*InterfaceTypeDefinition) isTypeDefinition()       {}

// UnionTypeDefinition declares a union and its member types.
type UnionTypeDefinition struct {
	Description string
	Name        NameValue
	Directives  []*Directive
	Members     []NameValue
	Index       int
}

func (*UnionTypeDefinition) isDefinition()           {}
func (*UnionTypeDefinition) isTypeSystemDefinition() {}
func (*UnionTypeDefinition) isTypeDefinition()       {}

// EnumTypeDefinition declares an enum and its values.
type EnumTypeDefinition struct {
	Description string
	Name        NameValue
	Directives  []*Directive
	Values      []*EnumValueDefinition
	Index       int
}

func (*EnumTypeDefinition) isDefinition()           {}
func (*EnumTypeDefinition) isTypeSystemDefinition() {}
func (*EnumTypeDefinition) isTypeDefinition()       {}

// InputObjectTypeDefinition declares an input object and its fields.
type InputObjectTypeDefinition struct {
	Description string
	Name        NameValue
	Directives  []*Directive
	Fields      []*InputValueDefinition
	Index       int
}

func (*InputObjectTypeDefinition) isDefinition()           {}
func (*InputObjectTypeDefinition) isTypeSystemDefinition() {}
func (*InputObjectTypeDefinition) isTypeDefinition()       {}

// DirectiveDefinition declares a custom directive, its arguments,
// repeatability and the set of locations it may be applied at.
type DirectiveDefinition struct {
	Description string
	Name        NameValue
	Args        []*InputValueDefinition
	Repeatable  bool
	Locations   []string
	Index       int
}

func (*DirectiveDefinition) isDefinition()           {}
func (*DirectiveDefinition) isTypeSystemDefinition() {}

// -- Type-system extensions --

// SchemaExtension is "extend schema @directives { root operations }",
// with at least one of the directive list or the root-operation list
// required to be non-empty - an extension with neither is meaningless
// and rejected during parsing.
type SchemaExtension struct {
	Directives     []*Directive
	RootOperations []*RootOperationTypeDefinition
	Index          int
}

func (*SchemaExtension) isDefinition()          {}
func (*SchemaExtension) isTypeSystemExtension() {}

// ScalarTypeExtension is "extend scalar Name @directives"; the directive
// list must be non-empty.
type ScalarTypeExtension struct {
	Name       NameValue
	Directives []*Directive
	Index      int
}

func (*ScalarTypeExtension) isDefinition()          {}
func (*ScalarTypeExtension) isTypeSystemExtension() {}
func (*ScalarTypeExtension) isTypeExtension()       {}

// ObjectTypeExtension is "extend type Name implements ... @directives {
// fields }"; at least one of Implements, Directives or Fields must be
// present.
type ObjectTypeExtension struct {
	Name       NameValue
	Implements []NameValue
	Directives []*Directive
	Fields     []*FieldDefinition
	Index      int
}

func (*ObjectTypeExtension) isDefinition()          {}
func (*ObjectTypeExtension) isTypeSystemExtension() {}
func (*ObjectTypeExtension) isTypeExtension()       {}

// InterfaceTypeExtension mirrors ObjectTypeExtension for interfaces.
type InterfaceTypeExtension struct {
	Name       NameValue
	Implements []NameValue
	Directives []*Directive
	Fields     []*FieldDefinition
	Index      int
}

func (*InterfaceTypeExtension) isDefinition()          {}
func (*InterfaceTypeExtension) isTypeSystemExtension() {}
func (*InterfaceTypeExtension) isTypeExtension()       {}

// UnionTypeExtension is "extend union Name @directives = Members"; at
// least one of Directives or Members must be present.
type UnionTypeExtension struct {
	Name       NameValue
	Directives []*Directive
	Members    []NameValue
	Index      int
}

func (*UnionTypeExtension) isDefinition()          {}
func (*UnionTypeExtension) isTypeSystemExtension() {}
func (*UnionTypeExtension) isTypeExtension()       {}

// EnumTypeExtension is "extend enum Name @directives { values }"; at
// least one of Directives or Values must be present.
type EnumTypeExtension struct {
	Name       NameValue
	Directives []*Directive
	Values     []*EnumValueDefinition
	Index      int
}

func (*EnumTypeExtension) isDefinition()          {}
func (*EnumTypeExtension) isTypeSystemExtension() {}
func (*EnumTypeExtension) isTypeExtension()       {}

// InputObjectTypeExtension is "extend input Name @directives { fields
// }"; at least one of Directives or Fields must be present.
type InputObjectTypeExtension struct {
	Name       NameValue
	Directives []*Directive
	Fields     []*InputValueDefinition
	Index      int
}

func (*InputObjectTypeExtension) isDefinition()          {}
func (*InputObjectTypeExtension) isTypeSystemExtension() {}
func (*InputObjectTypeExtension) isTypeExtension()       {}

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexAll drains every token from a fresh Lexer in streaming mode, stopping
// at the first error or at Eof.
func lexAll(t *testing.T, source string) ([]Token, error) {
	t.Helper()
	l := NewLexer([]byte(source))
	var toks []Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return toks, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
		if tok.Kind == Eof {
			return toks, nil
		}
	}
}

// -- Invariant 1: faithful tokenization --

func TestInvariantFaithfulTokenization(t *testing.T) {
	sources := []string{
		`{ user { id } }`,
		`query Q($x: Int = 1) @dir { field(a: [1, 2], b: {k: "v"}) }`,
		`"""block
string""" type T { f: [Int!]! }`,
		`# just a comment
`,
	}
	for _, src := range sources {
		toks, err := lexAll(t, src)
		require.NoError(t, err, "source %q", src)
		require.NotEmpty(t, toks)
		last := toks[len(toks)-1]
		assert.Equal(t, Eof, last.Kind, "source %q", src)
		assert.Empty(t, last.Data, "source %q", src)

		var reconstructed []byte
		for _, tok := range toks[:len(toks)-1] {
			reconstructed = append(reconstructed, tok.Data...)
		}
		assert.Equal(t, src, string(reconstructed), "source %q", src)
	}
}

// -- Invariant 2: monotone indexing --

func TestInvariantMonotoneIndexing(t *testing.T) {
	src := `query Q($x: Int) { field(a: "str", b: 3.14) @dir(n: null) }`
	toks, err := lexAll(t, src)
	require.NoError(t, err)

	prev := -1
	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.Index, prev, "token %v", tok)
		prev = tok.Index
		if tok.Kind != Eof {
			assert.Equal(t, src[tok.Index:tok.Index+len(tok.Data)], string(tok.Data), "token %v", tok)
		}
	}
}

// -- Invariant 3: exactly one Eof, as the last token --

func TestInvariantExactlyOneEof(t *testing.T) {
	src := `{ a b c }`
	toks, err := lexAll(t, src)
	require.NoError(t, err)

	eofCount := 0
	for i, tok := range toks {
		if tok.Kind == Eof {
			eofCount++
			assert.Equal(t, len(toks)-1, i, "Eof must be the last token")
		}
	}
	assert.Equal(t, 1, eofCount)
}

// -- Invariant 4: limit contract --

func TestInvariantLimitContractStreaming(t *testing.T) {
	src := `{ user { id name email } }`
	l := NewLexer([]byte(src)).WithLimit(5)

	var got int
	var lastErr error
	for {
		_, ok, err := l.Next()
		if err != nil {
			lastErr = err
			break
		}
		if !ok {
			break
		}
		got++
	}
	assert.LessOrEqual(t, got, 5)
	assert.True(t, errors.Is(lastErr, ErrLimitReached))
}

func TestInvariantLimitContractBatch(t *testing.T) {
	src := `{ user { id name email } }`
	alloc := NewAllocator()
	l := NewLexer([]byte(src)).WithLimit(5)

	toks, errs := l.Lex(alloc)
	require.Len(t, toks, 5)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], ErrLimitReached))
}

// -- Invariant 5: trivia transparency --

func TestInvariantTriviaTransparency(t *testing.T) {
	compact := `{user{id,name}}`
	spaced := "{ user  ,, { id  , name\t} \n}"

	docA := mustParse(t, compact)
	docB := mustParse(t, spaced)

	opA := docA.Definitions[0].(*OperationDefinition)
	opB := docB.Definitions[0].(*OperationDefinition)

	userA := opA.SelectionSet[0].(*Field)
	userB := opB.SelectionSet[0].(*Field)
	assert.Equal(t, userA.Name.Value, userB.Name.Value)
	require.Len(t, userA.SelectionSet, 2)
	require.Len(t, userB.SelectionSet, 2)

	for i := range userA.SelectionSet {
		fa := userA.SelectionSet[i].(*Field)
		fb := userB.SelectionSet[i].(*Field)
		assert.Equal(t, fa.Name.Value, fb.Name.Value)
	}
}

// -- Invariant 6: const discipline --

func TestInvariantConstDiscipline(t *testing.T) {
	cases := []string{
		`query ($x: Int = $y) { f }`,
		`input I { f: Int = $y }`,
		`directive @d(a: Int = $y) on FIELD`,
	}
	for _, src := range cases {
		alloc := NewAllocator()
		_, err := Parse(alloc, []byte(src))
		assert.True(t, errors.Is(err, ErrUnexpectedVariable), "source %q: got %v", src, err)
	}

	// Variables remain legal outside const contexts.
	doc := mustParse(t, `query ($x: Int) { f(a: $x) }`)
	op := doc.Definitions[0].(*OperationDefinition)
	field := op.SelectionSet[0].(*Field)
	require.Len(t, field.Args, 1)
	assert.Equal(t, VariableValue, field.Args[0].Value.Kind)
}

// -- Invariant 7: type-wrapping law --

func TestInvariantTypeWrappingLaw(t *testing.T) {
	alloc := NewAllocator()
	_, err := Parse(alloc, []byte(`type T { f: Int!! }`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))

	// A valid non-null wrapping a list wrapping a non-null is fine.
	doc := mustParse(t, `type Post { tags: [String!]! }`)
	o := doc.Definitions[0].(*ObjectTypeDefinition)
	ty := o.Fields[0].Type
	require.Equal(t, NonNullType, ty.Kind)
	require.Equal(t, ListType, ty.OfType.Kind)
	require.Equal(t, NonNullType, ty.OfType.OfType.Kind)
	assert.Equal(t, "String", ty.OfType.OfType.OfType.Name)
}

// -- Invariant 8: round-trip-of-structure --

func TestInvariantRoundTripOfStructureMinimalField(t *testing.T) {
	doc := mustParse(t, `{ id }`)
	op := doc.Definitions[0].(*OperationDefinition)
	f := op.SelectionSet[0].(*Field)

	assert.Nil(t, f.Alias)
	assert.Nil(t, f.Args)
	assert.Nil(t, f.Directives)
	assert.Nil(t, f.SelectionSet)
	assert.Nil(t, op.Name)
	assert.Nil(t, op.VariableDefinitions)
	assert.Nil(t, op.Directives)
}

func TestInvariantRoundTripOfStructureMinimalObjectType(t *testing.T) {
	doc := mustParse(t, `type T { f: Int }`)
	o := doc.Definitions[0].(*ObjectTypeDefinition)

	assert.Empty(t, o.Description)
	assert.Nil(t, o.Implements)
	assert.Nil(t, o.Directives)
	assert.Nil(t, o.Fields[0].Args)
	assert.Nil(t, o.Fields[0].Directives)
	assert.Empty(t, o.Fields[0].Description)
}

// -- End-to-end scenarios E1-E7 --

func TestScenarioE1(t *testing.T) {
	src := `{ user { id } }`
	toks, err := lexAll(t, src)
	require.NoError(t, err)

	want := []TokenKind{LCurly, Whitespace, Name, Whitespace, LCurly, Whitespace,
		Name, Whitespace, RCurly, Whitespace, RCurly, Eof}
	require.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
	assert.Equal(t, "user", string(toks[2].Data))
	assert.Equal(t, "id", string(toks[6].Data))

	doc := mustParse(t, src)
	require.Len(t, doc.Definitions, 1)
	op := doc.Definitions[0].(*OperationDefinition)
	assert.Equal(t, OpQuery, op.Operation)
	assert.Nil(t, op.Name)
	require.Len(t, op.SelectionSet, 1)
	user := op.SelectionSet[0].(*Field)
	assert.Equal(t, "user", user.Name.Value)
	require.Len(t, user.SelectionSet, 1)
	id := user.SelectionSet[0].(*Field)
	assert.Equal(t, "id", id.Name.Value)
	assert.Nil(t, id.SelectionSet)
}

func TestScenarioE2(t *testing.T) {
	alloc := NewAllocator()
	l := NewLexer([]byte(`{ user { id } }`)).WithLimit(10)
	toks, errs := l.Lex(alloc)
	require.Len(t, toks, 10)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], ErrLimitReached))
}

func TestScenarioE3(t *testing.T) {
	alloc := NewAllocator()
	_, err := ParseWithLimit(alloc, []byte(`{ user { id } }`), 11)
	assert.True(t, errors.Is(err, ErrLimitReached))
}

func TestScenarioE4(t *testing.T) {
	src := "\"\"\"\na block description\n\"\"\" type Query { users(): User }"
	alloc := NewAllocator()
	l := NewLexer([]byte(src))
	toks, errs := l.Lex(alloc)
	require.Empty(t, errs)
	assert.Equal(t, 17, len(toks))

	doc, err := Parse(alloc, []byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)
	o := doc.Definitions[0].(*ObjectTypeDefinition)
	assert.Equal(t, "\"\"\"\na block description\n\"\"\"", o.Description)
	require.Len(t, o.Fields, 1)
	assert.Equal(t, "users", o.Fields[0].Name.Value)
	assert.Empty(t, o.Fields[0].Args)
	assert.Equal(t, NamedType, o.Fields[0].Type.Kind)
	assert.Equal(t, "User", o.Fields[0].Type.Name)
}

func TestScenarioE5(t *testing.T) {
	doc := mustParse(t, `type Post { tags: [String!]! }`)
	o := doc.Definitions[0].(*ObjectTypeDefinition)
	ty := o.Fields[0].Type
	require.Equal(t, NonNullType, ty.Kind)
	require.Equal(t, ListType, ty.OfType.Kind)
	require.Equal(t, NonNullType, ty.OfType.OfType.Kind)
	assert.Equal(t, "String", ty.OfType.OfType.OfType.Name)
}

func TestScenarioE6(t *testing.T) {
	src := `directive @deprecated(reason: String = "No longer supported", removeDate: String) on FIELD_DEFINITION | ENUM_VALUE`
	doc := mustParse(t, src)
	d := doc.Definitions[0].(*DirectiveDefinition)
	assert.False(t, d.Repeatable)
	require.Len(t, d.Args, 2)
	assert.Equal(t, "reason", d.Args[0].Name.Value)
	require.NotNil(t, d.Args[0].Default)
	assert.Equal(t, `"No longer supported"`, d.Args[0].Default.Raw)
	assert.Equal(t, "removeDate", d.Args[1].Name.Value)
	assert.Nil(t, d.Args[1].Default)
	assert.Equal(t, []string{"FIELD_DEFINITION", "ENUM_VALUE"}, d.Locations)
}

func TestScenarioE7(t *testing.T) {
	alloc := NewAllocator()
	_, err := Parse(alloc, []byte(`*`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedChar))
}

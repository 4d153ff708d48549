// Package json is a matcher grammar for RFC 8259 JSON built from the
// pegtl combinators.  It recognizes JSON without building any values;
// callers that want a tree attach a TreeControl over the named rules.
//
// Structural rules commit with IfMust: once an opening brace, bracket
// or quote has matched, a malformed remainder is a hard error with
// the offending position, not a silent backtrack to position zero.
package json

import (
	pegtl "github.com/TechPenguineer/PEGTL"
)

// Value matches any JSON value.  It is a named rule so grammars
// embedding JSON can refer to it recursively.
var Value = pegtl.Named("value")

var (
	ws    = pegtl.Star(pegtl.OneOf(' ', '\t', '\n', '\r'))
	digit = pegtl.RuneRange('0', '9')

	hexdig = pegtl.Sor(
		digit,
		pegtl.RuneRange('a', 'f'),
		pegtl.RuneRange('A', 'F'),
	)

	frac = pegtl.IfMust(pegtl.Rune('.'), pegtl.Plus(digit))
	exp  = pegtl.IfMust(
		pegtl.OneOf('e', 'E'),
		pegtl.Opt(pegtl.OneOf('+', '-')),
		pegtl.Plus(digit),
	)

	// Number follows the RFC: no leading zeros, optional fraction
	// and exponent.
	Number = pegtl.Named("number").Bind(pegtl.Seq(
		pegtl.Opt(pegtl.Rune('-')),
		pegtl.Sor(
			pegtl.Rune('0'),
			pegtl.Seq(pegtl.RuneRange('1', '9'), pegtl.Star(digit)),
		),
		pegtl.Opt(frac),
		pegtl.Opt(exp),
	))

	escaped = pegtl.Seq(
		pegtl.Rune('\\'),
		pegtl.Must(pegtl.Sor(
			pegtl.OneOf('"', '\\', '/', 'b', 'f', 'n', 'r', 't'),
			pegtl.Seq(pegtl.Rune('u'), pegtl.Rep(4, hexdig)),
		)),
	)

	unescaped = pegtl.Seq(
		pegtl.NotAt(pegtl.OneOf('"', '\\')),
		pegtl.Any(),
	)

	character = pegtl.Sor(escaped, unescaped)

	// String commits at the opening quote; a missing closing
	// quote escalates instead of failing softly.
	String = pegtl.Named("string").Bind(pegtl.IfMust(
		pegtl.Rune('"'),
		pegtl.Star(character),
		pegtl.Rune('"'),
	))

	member = pegtl.Seq(
		ws, String, ws,
		pegtl.Must(pegtl.Rune(':')),
		ws,
		pegtl.Must(Value),
		ws,
	)

	members  = pegtl.ListMust(member, pegtl.Rune(','))
	element  = pegtl.Seq(ws, Value, ws)
	elements = pegtl.ListMust(element, pegtl.Rune(','))

	Object = pegtl.Named("object").Bind(pegtl.IfMust(
		pegtl.Rune('{'),
		pegtl.Sor(members, ws),
		pegtl.Rune('}'),
	))

	Array = pegtl.Named("array").Bind(pegtl.IfMust(
		pegtl.Rune('['),
		pegtl.Sor(elements, ws),
		pegtl.Rune(']'),
	))

	// Text is the grammar entry point: one value padded by
	// whitespace, consuming the entire input.
	Text = pegtl.Named("text").Bind(pegtl.Seq(ws, Value, ws, pegtl.Eof()))
)

func init() {
	Value.Bind(pegtl.Sor(
		String,
		Object,
		Array,
		Number,
		pegtl.Literal("true"),
		pegtl.Literal("false"),
		pegtl.Literal("null"),
	))
}

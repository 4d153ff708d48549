// Package abnf provides the core rules of RFC 5234, appendix B.1, as
// reusable terminals for grammars written with the pegtl combinators.
package abnf

import (
	pegtl "github.com/TechPenguineer/PEGTL"
)

var (
	ALPHA  = pegtl.Sor(pegtl.RuneRange('A', 'Z'), pegtl.RuneRange('a', 'z'))
	BIT    = pegtl.OneOf('0', '1')
	CHAR   = pegtl.RuneRange(0x01, 0x7f)
	CR     = pegtl.Rune('\r')
	CRLF   = pegtl.Literal("\r\n")
	CTL    = pegtl.Sor(pegtl.RuneRange(0x00, 0x1f), pegtl.Rune(0x7f))
	DIGIT  = pegtl.RuneRange('0', '9')
	DQUOTE = pegtl.Rune('"')
	HEXDIG = pegtl.Sor(DIGIT, pegtl.RuneRange('a', 'f'), pegtl.RuneRange('A', 'F'))
	HTAB   = pegtl.Rune('\t')
	LF     = pegtl.Rune('\n')
	OCTET  = pegtl.RuneRange(0x00, 0xff)
	SP     = pegtl.Rune(' ')
	VCHAR  = pegtl.RuneRange(0x21, 0x7e)
	WSP    = pegtl.Sor(pegtl.Rune(' '), pegtl.Rune('\t'))
	LWSP   = pegtl.Star(pegtl.Sor(WSP, pegtl.Seq(CRLF, WSP)))
)

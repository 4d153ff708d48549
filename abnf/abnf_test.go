package abnf

import (
	"testing"

	pegtl "github.com/TechPenguineer/PEGTL"
	"github.com/stretchr/testify/assert"
)

func TestCoreRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  pegtl.Rule
		input string
		ok    bool
	}{
		{name: "alpha upper", rule: ALPHA, input: "Q", ok: true},
		{name: "alpha rejects digit", rule: ALPHA, input: "7", ok: false},
		{name: "digit", rule: DIGIT, input: "7", ok: true},
		{name: "hexdig lower", rule: HEXDIG, input: "f", ok: true},
		{name: "hexdig rejects g", rule: HEXDIG, input: "g", ok: false},
		{name: "crlf", rule: CRLF, input: "\r\n", ok: true},
		{name: "ctl", rule: CTL, input: "\x07", ok: true},
		{name: "vchar rejects space", rule: VCHAR, input: " ", ok: false},
		{name: "wsp tab", rule: WSP, input: "\t", ok: true},
		{name: "lwsp folding", rule: pegtl.Seq(LWSP, pegtl.Eof()), input: " \r\n \t", ok: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := pegtl.RunString(pegtl.Seq(test.rule, pegtl.Eof()), test.input)
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

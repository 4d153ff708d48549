package pegtl

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadMessages reads a rule-name to error-message map from a YAML
// file, the format the CLI's --messages flag accepts:
//
//	string: "unterminated string, missing closing quote"
//	value:  "expected a JSON value"
//
// The result feeds WithMessages so that escalations report the text
// the grammar author wrote instead of a synthesized one.
func LoadMessages(fs afero.Fs, path string) (map[string]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading messages file %s", path)
	}
	m := map[string]string{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing messages file %s", path)
	}
	return m, nil
}

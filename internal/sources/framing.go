package sources

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyBody is returned when nothing remains after removing the declaration.
var ErrEmptyBody = errors.New("no data after declaration")

var declarationPrefix = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+[A-Za-z_$][\w$]*\s*=`)

// StripDeclaration removes the JavaScript framing around a data literal.
//
//	const assistants = [{"Tool": "A"}];   ->   [{"Tool": "A"}]
//	[{"Tool": "A"}]                       ->   [{"Tool": "A"}]
//
// Only the leading declaration (up to and including "=") and one trailing ";"
// are removed. Text without a declaration is returned trimmed.
func StripDeclaration(text string) (string, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.TrimSpace(text)

	if loc := declarationPrefix.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ";")
	text = strings.TrimSpace(text)

	if text == "" {
		return "", ErrEmptyBody
	}
	return text, nil
}

// README: Resolves free-text place names to 3-letter transport-hub codes.
package locale

import (
	"regexp"
	"strings"
)

var (
	codePattern     = regexp.MustCompile(`^[A-Z]{3}$`)
	embeddedPattern = regexp.MustCompile(`\(([A-Z]{3})\)|[-–]\s*([A-Z]{3})\s*$`)
)

// Resolve maps a free-text place string to a hub code. The empty string is a
// meaningful result: flight acquisition uses it to short-circuit to synthesis.
// Matching order, first hit wins:
//  1. input already is a code ("CDG")
//  2. code embedded in parentheses or after a dash suffix ("Paris (CDG)", "Paris - CDG")
//  3. exact gazetteer match after normalization
//  4. gazetteer key is a substring of the input or vice versa
func Resolve(place string) string {
	trimmed := strings.TrimSpace(place)
	if trimmed == "" {
		return ""
	}

	if codePattern.MatchString(strings.ToUpper(trimmed)) {
		return strings.ToUpper(trimmed)
	}

	if m := embeddedPattern.FindStringSubmatch(trimmed); m != nil {
		if m[1] != "" {
			return m[1]
		}
		return m[2]
	}

	key := normalize(trimmed)
	if code, ok := gazetteer[key]; ok {
		return code
	}

	for name, code := range gazetteer {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return code
		}
	}

	return ""
}

// normalize lowercases and strips trailing region qualifiers and the word
// "airport" so "Paris, France" and "Paris Airport" both hit the "paris" key.
func normalize(place string) string {
	s := strings.ToLower(strings.TrimSpace(place))
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSuffix(s, " airport")
	return strings.TrimSpace(s)
}

// Package phone validates contact phone numbers and canonicalizes them
// to a digits-only form (with an optional leading +country prefix).
package phone

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotAString = apperror.New(http.StatusBadRequest, "phone number must be a string")
	ErrEmpty      = apperror.New(http.StatusBadRequest, "phone number cannot be empty")
)

// Accepted shapes: optional "+XX" country code, optional single extra digit,
// then 3-3-4 digit groups separated by spaces, dots or hyphens, with the
// first group optionally parenthesized.
var phonePattern = regexp.MustCompile(`^(?:(\+\d{1,2})\s?)?(?:(\d)\s?)?\(?(\d{3})\)?[\s.\-]?(\d{3})[\s.\-]?(\d{4})$`)

// Normalize validates raw and returns its canonical form: the digit groups
// concatenated with every separator and parenthesis stripped, e.g.
// "+54 9 343 450-2306" -> "+5493434502306".
//
// raw is typed any because the value arrives from an untyped request
// boundary; a non-string value is rejected before any parsing.
func Normalize(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", ErrNotAString
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}

	groups := phonePattern.FindStringSubmatch(s)
	if groups == nil {
		return "", apperror.Newf(
			http.StatusUnprocessableEntity,
			"%q is not a valid phone number: expected a shape like \"(+XX)? (X)? XXX XXX-XXXX\"",
			s,
		)
	}

	// groups[0] is the full match; the canonical form is the capture groups
	// joined, unmatched optional groups contributing nothing.
	return strings.Join(groups[1:], ""), nil
}

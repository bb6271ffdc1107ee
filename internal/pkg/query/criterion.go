// Package query turns optional scalar-or-range request parameters into
// storage predicates and offset/limit windows.
package query

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/apperror"
)

// MaxRangeBound is the sentinel upper bound used when the max side of a
// range is omitted.
const MaxRangeBound int64 = 1<<53 - 1

type criterionKind int

const (
	kindNone criterionKind = iota
	kindExact
	kindRange
)

// Criterion is a tagged variant over an optional integer filter:
// absent, an exact value, or a half-open [min, max) range.
//
// Range bounds are taken as given: min <= max is not enforced here, an
// out-of-order range simply matches zero rows.
type Criterion struct {
	kind criterionKind
	val  int64
	min  int64
	max  int64
}

// Exact builds a criterion matching a single value.
func Exact(v int64) Criterion {
	return Criterion{kind: kindExact, val: v}
}

// Range builds a criterion matching min <= column < max.
func Range(min, max int64) Criterion {
	return Criterion{kind: kindRange, min: min, max: max}
}

// IsZero reports whether the criterion is absent.
func (c Criterion) IsZero() bool {
	return c.kind == kindNone
}

// Sqlizer returns the predicate for column, or nil when the criterion
// is absent.
func (c Criterion) Sqlizer(column string) squirrel.Sqlizer {
	switch c.kind {
	case kindExact:
		return squirrel.Eq{column: c.val}
	case kindRange:
		return squirrel.And{
			squirrel.GtOrEq{column: c.min},
			squirrel.Lt{column: c.max},
		}
	default:
		return nil
	}
}

// Matches reports whether v satisfies the criterion. An absent
// criterion matches everything.
func (c Criterion) Matches(v int64) bool {
	switch c.kind {
	case kindExact:
		return v == c.val
	case kindRange:
		return v >= c.min && v < c.max
	default:
		return true
	}
}

// ParseCriterion parses the literal query-parameter syntax for a filter:
// either a bare integer or a "min:max" range where each side may be
// omitted (defaulting to 0 and MaxRangeBound). name identifies the
// criterion in error messages.
func ParseCriterion(raw, name string) (Criterion, error) {
	if !strings.Contains(raw, ":") {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Criterion{}, apperror.Newf(
				http.StatusBadRequest,
				"the %s criterion (%q) must be an integer or a range of the form \"min:max\"",
				name, raw,
			)
		}
		return Exact(v), nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return Criterion{}, apperror.Newf(
			http.StatusBadRequest,
			"the %s criterion (%q) must be an integer or a range of the form \"min:max\"",
			name, raw,
		)
	}

	min := int64(0)
	max := MaxRangeBound
	var err error

	if parts[0] != "" {
		if min, err = strconv.ParseInt(parts[0], 10, 64); err != nil {
			return Criterion{}, apperror.Newf(
				http.StatusBadRequest,
				"the %s criterion (%q) has an invalid integer as range minimum",
				name, raw,
			)
		}
	}
	if parts[1] != "" {
		if max, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
			return Criterion{}, apperror.Newf(
				http.StatusBadRequest,
				"the %s criterion (%q) has an invalid integer as range maximum",
				name, raw,
			)
		}
	}

	return Range(min, max), nil
}

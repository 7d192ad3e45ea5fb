package failure

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Rule is a pure predicate over a candidate value paired with the Malformed
// failure it produces on rejection.
type Rule[T any] struct {
	Field  string
	Reason string
	Valid  func(T) bool
}

// Check returns nil when v passes, otherwise Malformed(Field, Reason).
func (r Rule[T]) Check(v T) error {
	if r.Valid(v) {
		return nil
	}
	return Malformed(r.Field, r.Reason)
}

// Defaults applied by collection endpoints.
const (
	DefaultLimit  = 10
	DefaultSortBy = "created_at"
)

// MaxVoteDelta bounds the magnitude of a single inc_votes so a running total
// cannot overflow the votes column.
const MaxVoteDelta = math.MaxInt32

// SortFields is the allow-list for article sort_by. Values are column names
// and may be interpolated into ORDER BY only after passing SortByRule.
var SortFields = []string{"created_at", "votes", "author", "title", "article_id", "topic"}

var (
	// IntegerRule accepts base-10 integer strings that fit in int64.
	IntegerRule = Rule[string]{
		Field:  FieldID,
		Reason: "must be an integer",
		Valid: func(s string) bool {
			_, err := strconv.ParseInt(s, 10, 64)
			return err == nil
		},
	}

	// PositiveRule accepts absent values or strictly positive integers.
	PositiveRule = Rule[string]{
		Field:  FieldPagination,
		Reason: "must be a positive integer",
		Valid: func(s string) bool {
			if s == "" {
				return true
			}
			n, err := strconv.ParseInt(s, 10, 64)
			return err == nil && n > 0
		},
	}

	// SortByRule accepts absent values or a member of SortFields.
	SortByRule = Rule[string]{
		Field:  FieldSortBy,
		Reason: "invalid",
		Valid: func(s string) bool {
			if s == "" {
				return true
			}
			for _, f := range SortFields {
				if s == f {
					return true
				}
			}
			return false
		},
	}

	// VoteDeltaRule accepts an absent or null value, or a JSON integer no
	// larger in magnitude than MaxVoteDelta.
	VoteDeltaRule = Rule[json.RawMessage]{
		Field:  FieldIncVotes,
		Reason: "must be an integer",
		Valid: func(raw json.RawMessage) bool {
			n, err := decodeDelta(raw)
			return err == nil && n >= -MaxVoteDelta && n <= MaxVoteDelta
		},
	}
)

// NonEmptyRule rejects a present-but-empty string for field. Absence (nil)
// is not this rule's concern; required-ness is enforced by the store.
func NonEmptyRule(field string) Rule[*string] {
	return Rule[*string]{
		Field:  field,
		Reason: "cannot be empty",
		Valid:  func(s *string) bool { return s == nil || *s != "" },
	}
}

// ID validates a path identifier and returns its value.
func ID(raw string) (int64, error) {
	if err := IntegerRule.Check(raw); err != nil {
		return 0, err
	}
	n, _ := strconv.ParseInt(raw, 10, 64)
	return n, nil
}

// VoteDelta validates inc_votes. Absent or null yields a zero delta.
func VoteDelta(raw json.RawMessage) (int64, error) {
	if err := VoteDeltaRule.Check(raw); err != nil {
		return 0, err
	}
	n, _ := decodeDelta(raw)
	return n, nil
}

// Page validates the limit and p query values. Absent values take defaults
// (DefaultLimit, page 1).
func Page(limitRaw, pageRaw string) (limit, page int, err error) {
	if err = PositiveRule.Check(limitRaw); err != nil {
		return 0, 0, err
	}
	if err = PositiveRule.Check(pageRaw); err != nil {
		return 0, 0, err
	}
	limit, page = DefaultLimit, 1
	if limitRaw != "" {
		n, convErr := strconv.Atoi(limitRaw)
		if convErr != nil {
			return 0, 0, Malformed(FieldPagination, "must be a positive integer")
		}
		limit = n
	}
	if pageRaw != "" {
		n, convErr := strconv.Atoi(pageRaw)
		if convErr != nil {
			return 0, 0, Malformed(FieldPagination, "must be a positive integer")
		}
		page = n
	}
	return limit, page, nil
}

// Offset returns the number of rows skipped before page. It saturates at
// math.MaxInt, so a page far past the end is empty rather than wrapping.
func Offset(limit, page int) int {
	if limit <= 0 || page <= 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// SortBy validates sort_by and applies the default column.
func SortBy(raw string) (string, error) {
	if err := SortByRule.Check(raw); err != nil {
		return "", err
	}
	if raw == "" {
		return DefaultSortBy, nil
	}
	return raw, nil
}

// Descending normalises order: only a case-insensitive "asc" is ascending,
// anything else (including invalid values) sorts descending.
func Descending(raw string) bool {
	return !strings.EqualFold(strings.TrimSpace(raw), "asc")
}

// NonEmpty checks each named field with NonEmptyRule in order and returns the
// first rejection.
func NonEmpty(fields ...NamedValue) error {
	for _, f := range fields {
		if err := NonEmptyRule(f.Name).Check(f.Value); err != nil {
			return err
		}
	}
	return nil
}

// NamedValue pairs an optional string with its field name.
type NamedValue struct {
	Name  string
	Value *string
}

func decodeDelta(raw json.RawMessage) (int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(num.String(), 10, 64)
}

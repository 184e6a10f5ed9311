package ledger

import (
	"sort"
	"strings"
)

// MatchAll is the sentinel category/flow selector that matches every record.
// Matching is case-insensitive, so "All" from a category dropdown works too.
const MatchAll = "all"

// Query selects a subset of records. Zero-value fields match everything.
type Query struct {
	// Text is matched case-insensitively as a substring of SearchText.
	Text string
	// Category must equal CategoryKey exactly, unless empty or MatchAll.
	Category string
	// Flow must equal the record's flow, unless empty or MatchAll.
	Flow string
}

type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort picks the comparison key and direction. The zero value means the
// default ordering: by date, most recent first.
type Sort struct {
	Key       SortKey
	Direction SortDirection
}

// FilterAndSort returns a new slice holding the records matching every
// predicate of the query, stably ordered by the sort. The input is not
// modified.
func FilterAndSort[T Record](records []T, query Query, order Sort) []T {
	matched := make([]T, 0, len(records))
	for _, r := range records {
		if matches(r, query) {
			matched = append(matched, r)
		}
	}

	key := order.Key
	if key == "" {
		key = SortByDate
	}
	direction := order.Direction
	if direction == "" {
		direction = Descending
	}

	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		if key == SortByAmount {
			less = matched[i].Value().Cmp(matched[j].Value()) < 0
		} else {
			less = matched[i].OccurredAt().Before(matched[j].OccurredAt())
		}
		if direction == Descending {
			return !less && !equalOn(matched[i], matched[j], key)
		}
		return less
	})

	return matched
}

func equalOn[T Record](a, b T, key SortKey) bool {
	if key == SortByAmount {
		return a.Value().Cmp(b.Value()) == 0
	}
	return a.OccurredAt().Equal(b.OccurredAt())
}

func matches[T Record](r T, query Query) bool {
	if query.Text != "" &&
		!strings.Contains(strings.ToLower(r.SearchText()), strings.ToLower(query.Text)) {
		return false
	}
	if !selectorMatches(query.Category, r.CategoryKey()) {
		return false
	}
	if !selectorMatches(query.Flow, string(r.Flow())) {
		return false
	}
	return true
}

func selectorMatches(selector, value string) bool {
	if selector == "" || strings.EqualFold(selector, MatchAll) {
		return true
	}
	return selector == value
}

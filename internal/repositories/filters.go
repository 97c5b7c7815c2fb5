package repositories

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"rental-backend/internal/utils"
)

// Contains matches rows where any of cols contains text. Blank text matches
// everything and yields nil, which callers skip.
func Contains(text string, cols ...string) sq.Sqlizer {
	text = strings.TrimSpace(text)
	if text == "" || len(cols) == 0 {
		return nil
	}
	pattern := utils.ContainsPattern(text)
	or := make(sq.Or, 0, len(cols))
	for _, c := range cols {
		or = append(or, sq.Expr(c+" LIKE ? ESCAPE '"+utils.LikeEscape+"'", pattern))
	}
	return or
}

// EqualsFold matches col case-insensitively. Blank value yields nil.
func EqualsFold(col, value string) sq.Sqlizer {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return sq.Expr("LOWER("+col+") = ?", strings.ToLower(value))
}

// Where drops nil predicates so optional filters can be listed inline.
func Where(preds ...sq.Sqlizer) []sq.Sqlizer {
	out := make([]sq.Sqlizer, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

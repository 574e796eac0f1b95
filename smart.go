package uchar

// MatchesSmart is true if candidate is an acceptable match for query in a
// "smart case" search. The relation is not symmetric: the case and the
// diacritics of the query determine how strict the match has to be.
//
// MatchesSmart holds iff
//
//   - query and candidate share the same base letter (see EqualsBase),
//   - candidate is upper case, if query is upper case, and
//   - candidate carries the same combining marks as query, if query
//     carries any.
//
// A lower case query without marks is thus the most permissive, while an
// upper case query with marks will match only canonically equivalent
// characters.
func MatchesSmart(query, candidate *Character) bool {
	if query.base != candidate.base {
		return false
	}
	if query.isUpper && !candidate.isUpper {
		return false
	}
	return query.diacritics == "" || query.diacritics == candidate.diacritics
}

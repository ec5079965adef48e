package query

import "strings"

// Encoder renders the predicates of a Query as a SQL condition.
type Encoder interface {
	// Encode returns the WHERE clause body without the "WHERE" keyword.
	// Returns empty string if the query has no predicates.
	Encode(q *Query) string
}

// EncoderOptions configures encoding behavior.
type EncoderOptions struct {
	// ColumnMapping maps dimension names to target column names.
	// Dimensions not in the map use their own names.
	ColumnMapping map[string]string
}

// escapeString escapes single quotes in a string value for SQL.
func escapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// quoteLiteral returns a SQL string literal with proper escaping.
func quoteLiteral(s string) string {
	return "'" + escapeString(s) + "'"
}

// quoteIdentifier returns a quoted identifier if needed.
// DuckDB uses double quotes for identifiers.
func quoteIdentifier(name string) string {
	if needsQuoting(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

// needsQuoting returns true if the identifier needs quoting.
func needsQuoting(name string) bool {
	if len(name) == 0 {
		return true
	}

	c := name[0]
	if !isLetter(c) && c != '_' {
		return true
	}
	for i := 1; i < len(name); i++ {
		c = name[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return true
		}
	}

	return reservedWords[strings.ToUpper(name)]
}

// reservedWords lists keywords that cannot appear unquoted as a column
// reference in a DuckDB condition.
var reservedWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "NULL", "TRUE", "FALSE",
		"INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER", "TABLE", "INDEX",
		"JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "ON", "AS", "IN", "IS", "LIKE",
		"BETWEEN", "EXISTS", "CASE", "WHEN", "THEN", "ELSE", "END", "ORDER", "BY",
		"GROUP", "HAVING", "LIMIT", "OFFSET", "UNION", "EXCEPT", "INTERSECT",
		"ALL", "DISTINCT", "VALUES", "SET", "INTO", "PRIMARY", "KEY", "FOREIGN",
		"REFERENCES", "CONSTRAINT", "DEFAULT", "CHECK", "UNIQUE", "ASC", "DESC",
		"NULLS", "FIRST", "LAST", "CAST", "INTERVAL", "DATE", "TIME", "TIMESTAMP",
		// remaining DuckDB reserved keywords
		"ANALYSE", "ANALYZE", "ANY", "ARRAY", "ASYMMETRIC", "BOTH", "COLLATE",
		"COLUMN", "DEFERRABLE", "DESCRIBE", "DO", "FETCH", "FOR", "GRANT",
		"INITIALLY", "LATERAL", "LEADING", "ONLY", "PIVOT", "PIVOT_LONGER",
		"PIVOT_WIDER", "PLACING", "QUALIFY", "RETURNING", "SHOW", "SOME",
		"SUMMARIZE", "SYMMETRIC", "TO", "TRAILING", "UNPIVOT", "USING",
		"VARIADIC", "WINDOW", "WITH",
	} {
		reservedWords[w] = true
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

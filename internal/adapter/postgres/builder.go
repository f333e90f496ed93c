package postgres

import sq "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using $n placeholders.
// Repositories use it for queries whose shape depends on input.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

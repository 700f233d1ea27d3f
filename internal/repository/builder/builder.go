package builder

import (
	"fmt"
	"strings"
)

type statementKind int

const (
	kindSelect statementKind = iota + 1
	kindInsert
	kindDelete
)

// SQLBuilder helps construct SQL queries dynamically. Conditions are written
// with "?" markers which Build rewrites to positional "$n" placeholders.
type SQLBuilder struct {
	kind    statementKind
	table   string
	columns []string
	values  []interface{}
	where   []string
	args    []interface{}
	orderBy []string
	limit   int
}

// NewSQLBuilder creates a new instance of SQLBuilder.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// Select specifies the columns to retrieve.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.kind = kindSelect
	b.columns = cols
	return b
}

// Count selects COUNT(*) from table.
func (b *SQLBuilder) Count(table string) *SQLBuilder {
	return b.Select("COUNT(*)").From(table)
}

// Insert specifies the table and columns for insertion.
func (b *SQLBuilder) Insert(table string, cols ...string) *SQLBuilder {
	b.kind = kindInsert
	b.table = table
	b.columns = cols
	return b
}

// Delete specifies the table to delete from.
func (b *SQLBuilder) Delete(table string) *SQLBuilder {
	b.kind = kindDelete
	b.table = table
	return b
}

// From specifies the table to select from.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// Values specifies the values for insertion.
func (b *SQLBuilder) Values(vals ...interface{}) *SQLBuilder {
	b.values = vals
	return b
}

// Where adds a condition; multiple conditions are joined with AND.
func (b *SQLBuilder) Where(condition string, args ...interface{}) *SQLBuilder {
	b.where = append(b.where, condition)
	b.args = append(b.args, args...)
	return b
}

// OrderBy adds an ORDER BY term.
func (b *SQLBuilder) OrderBy(order string) *SQLBuilder {
	b.orderBy = append(b.orderBy, order)
	return b
}

// Limit adds a LIMIT clause.
func (b *SQLBuilder) Limit(limit int) *SQLBuilder {
	b.limit = limit
	return b
}

// Build constructs the final SQL string and arguments.
func (b *SQLBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	argIndex := 1

	switch b.kind {
	case kindInsert:
		placeholders := make([]string, len(b.values))
		for i := range b.values {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			argIndex++
		}
		fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES (%s)",
			b.table, strings.Join(b.columns, ", "), strings.Join(placeholders, ", "))
		return sb.String(), append([]interface{}{}, b.values...)
	case kindSelect:
		fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(b.columns, ", "), b.table)
	case kindDelete:
		fmt.Fprintf(&sb, "DELETE FROM %s", b.table)
	}

	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(numberPlaceholders(strings.Join(b.where, " AND "), &argIndex))
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", b.limit)
	}

	return sb.String(), append([]interface{}{}, b.args...)
}

// BuildSafe is Build plus a check that every argument has a placeholder.
func (b *SQLBuilder) BuildSafe() (string, []interface{}, error) {
	query, args := b.Build()
	placeholders := strings.Count(query, "$")
	if placeholders != len(args) {
		return "", nil, fmt.Errorf("placeholder count (%d) does not match argument count (%d)", placeholders, len(args))
	}
	return query, args, nil
}

func numberPlaceholders(clause string, argIndex *int) string {
	var sb strings.Builder
	parts := strings.Split(clause, "?")
	for i, part := range parts {
		sb.WriteString(part)
		if i < len(parts)-1 {
			fmt.Fprintf(&sb, "$%d", *argIndex)
			*argIndex++
		}
	}
	return sb.String()
}

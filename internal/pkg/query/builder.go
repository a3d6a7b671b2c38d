// Package query builds SELECT statements for Cloud Spanner with
// auto-numbered parameters, so column filters never drift out of sync with
// their parameter maps.
package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc sorts ascending.
	Asc Direction = iota
	// Desc sorts descending.
	Desc
)

// Builder constructs a SELECT statement with WHERE, ORDER BY and LIMIT.
type Builder struct {
	table      string
	selectCols []string
	conditions []Condition
	orderByCol string
	orderByDir Direction
	limitVal   int64
}

// From creates a new Builder for the given table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	b.selectCols = append(b.selectCols, columns...)
	return b
}

// Where adds a condition. Multiple conditions combine with AND.
func (b *Builder) Where(cond Condition) *Builder {
	b.conditions = append(b.conditions, cond)
	return b
}

// OrderBy sets the sort column and direction.
func (b *Builder) OrderBy(column string, dir Direction) *Builder {
	b.orderByCol = column
	b.orderByDir = dir
	return b
}

// Limit caps the number of returned rows. Zero means no limit.
func (b *Builder) Limit(limit int64) *Builder {
	b.limitVal = limit
	return b
}

// Build constructs the final spanner.Statement.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.conditions))
		for i, cond := range b.conditions {
			fragment, condParams := cond.SQL(i)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if b.orderByCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderByCol)
		if b.orderByDir == Desc {
			sql.WriteString(" DESC")
		}
	}

	if b.limitVal > 0 {
		sql.WriteString(fmt.Sprintf(" LIMIT %d", b.limitVal))
	}

	return spanner.Statement{SQL: sql.String(), Params: params}
}

package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAssignments is returned when Build is called without any present value.
var ErrNoAssignments = errors.New("update has no assignments")

// UpdateBuilder assembles an UPDATE statement from (column, optional value)
// pairs. Absent values are skipped entirely, so callers can feed it every
// optional field of a PATCH request and only the supplied ones become part of
// the SET clause. Placeholders are numbered after any args reserved up front
// for the WHERE clause.
type UpdateBuilder struct {
	table       string
	assignments []string
	args        []interface{}
	whereArgs   []interface{}
	where       string
}

// NewUpdate creates a builder for the given table.
func NewUpdate(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set adds an unconditional assignment.
func (b *UpdateBuilder) Set(column string, value interface{}) *UpdateBuilder {
	b.assignments = append(b.assignments, column)
	b.args = append(b.args, value)
	return b
}

// SetIfString adds the assignment only when the value is present.
func (b *UpdateBuilder) SetIfString(column string, value *string) *UpdateBuilder {
	if value != nil {
		b.Set(column, *value)
	}
	return b
}

// SetIfBool adds the assignment only when the value is present.
func (b *UpdateBuilder) SetIfBool(column string, value *bool) *UpdateBuilder {
	if value != nil {
		b.Set(column, *value)
	}
	return b
}

// SetIfInt adds the assignment only when the value is present.
func (b *UpdateBuilder) SetIfInt(column string, value *int) *UpdateBuilder {
	if value != nil {
		b.Set(column, *value)
	}
	return b
}

// SetIf adds the assignment only when present is true. Used for fields whose
// zero value is meaningful (nullable columns updated to NULL, json payloads).
func (b *UpdateBuilder) SetIf(present bool, column string, value interface{}) *UpdateBuilder {
	if present {
		b.Set(column, value)
	}
	return b
}

// Where sets the WHERE clause. The condition uses placeholders $1..$n for the
// given args; SET placeholders are numbered after them.
func (b *UpdateBuilder) Where(condition string, args ...interface{}) *UpdateBuilder {
	b.where = condition
	b.whereArgs = args
	return b
}

// Empty reports whether no assignment was collected.
func (b *UpdateBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// Build renders the statement and its argument list.
func (b *UpdateBuilder) Build() (string, []interface{}, error) {
	if b.Empty() {
		return "", nil, ErrNoAssignments
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")

	offset := len(b.whereArgs)
	for i, column := range b.assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = $%d", column, offset+i+1)
	}

	if b.where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.where)
	}

	args := make([]interface{}, 0, len(b.whereArgs)+len(b.args))
	args = append(args, b.whereArgs...)
	args = append(args, b.args...)

	return sb.String(), args, nil
}

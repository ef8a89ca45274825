// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lingobee/lingobee/ent/practicestat"
)

// PracticeStat is the model entity for the PracticeStat schema.
type PracticeStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TotalNodesCompleted holds the value of the "total_nodes_completed" field.
	TotalNodesCompleted int `json:"total_nodes_completed,omitempty"`
	// TotalXpEarned holds the value of the "total_xp_earned" field.
	TotalXpEarned int `json:"total_xp_earned,omitempty"`
	// ISO date (YYYY-MM-DD) of the most recent completion
	LastPracticeDate string `json:"last_practice_date,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicestat.FieldID, practicestat.FieldTotalNodesCompleted, practicestat.FieldTotalXpEarned:
			values[i] = new(sql.NullInt64)
		case practicestat.FieldUserID, practicestat.FieldLastPracticeDate:
			values[i] = new(sql.NullString)
		case practicestat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeStat fields.
func (_m *PracticeStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicestat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practicestat.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case practicestat.FieldTotalNodesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_nodes_completed", values[i])
			} else if value.Valid {
				_m.TotalNodesCompleted = int(value.Int64)
			}
		case practicestat.FieldTotalXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_xp_earned", values[i])
			} else if value.Valid {
				_m.TotalXpEarned = int(value.Int64)
			}
		case practicestat.FieldLastPracticeDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_practice_date", values[i])
			} else if value.Valid {
				_m.LastPracticeDate = value.String
			}
		case practicestat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeStat.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeStat.
// Note that you need to call PracticeStat.Unwrap() before calling this method if this PracticeStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeStat) Update() *PracticeStatUpdateOne {
	return NewPracticeStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeStat) Unwrap() *PracticeStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeStat) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("total_nodes_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalNodesCompleted))
	builder.WriteString(", ")
	builder.WriteString("total_xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalXpEarned))
	builder.WriteString(", ")
	builder.WriteString("last_practice_date=")
	builder.WriteString(_m.LastPracticeDate)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeStats is a parsable slice of PracticeStat.
type PracticeStats []*PracticeStat

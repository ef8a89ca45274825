// Code generated by ent, DO NOT EDIT.

package practicestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicestat type in the database.
	Label = "practice_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTotalNodesCompleted holds the string denoting the total_nodes_completed field in the database.
	FieldTotalNodesCompleted = "total_nodes_completed"
	// FieldTotalXpEarned holds the string denoting the total_xp_earned field in the database.
	FieldTotalXpEarned = "total_xp_earned"
	// FieldLastPracticeDate holds the string denoting the last_practice_date field in the database.
	FieldLastPracticeDate = "last_practice_date"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the practicestat in the database.
	Table = "practice_stats"
)

// Columns holds all SQL columns for practicestat fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTotalNodesCompleted,
	FieldTotalXpEarned,
	FieldLastPracticeDate,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultTotalNodesCompleted holds the default value on creation for the "total_nodes_completed" field.
	DefaultTotalNodesCompleted int
	// TotalNodesCompletedValidator is a validator for the "total_nodes_completed" field. It is called by the builders before save.
	TotalNodesCompletedValidator func(int) error
	// DefaultTotalXpEarned holds the default value on creation for the "total_xp_earned" field.
	DefaultTotalXpEarned int
	// TotalXpEarnedValidator is a validator for the "total_xp_earned" field. It is called by the builders before save.
	TotalXpEarnedValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PracticeStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTotalNodesCompleted orders the results by the total_nodes_completed field.
func ByTotalNodesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalNodesCompleted, opts...).ToFunc()
}

// ByTotalXpEarned orders the results by the total_xp_earned field.
func ByTotalXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalXpEarned, opts...).ToFunc()
}

// ByLastPracticeDate orders the results by the last_practice_date field.
func ByLastPracticeDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticeDate, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package practicestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lingobee/lingobee/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldUserID, v))
}

// TotalNodesCompleted applies equality check predicate on the "total_nodes_completed" field. It's identical to TotalNodesCompletedEQ.
func TotalNodesCompleted(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldTotalNodesCompleted, v))
}

// TotalXpEarned applies equality check predicate on the "total_xp_earned" field. It's identical to TotalXpEarnedEQ.
func TotalXpEarned(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldTotalXpEarned, v))
}

// LastPracticeDate applies equality check predicate on the "last_practice_date" field. It's identical to LastPracticeDateEQ.
func LastPracticeDate(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldLastPracticeDate, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldContainsFold(FieldUserID, v))
}

// TotalNodesCompletedEQ applies the EQ predicate on the "total_nodes_completed" field.
func TotalNodesCompletedEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldTotalNodesCompleted, v))
}

// TotalNodesCompletedNEQ applies the NEQ predicate on the "total_nodes_completed" field.
func TotalNodesCompletedNEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldTotalNodesCompleted, v))
}

// TotalNodesCompletedIn applies the In predicate on the "total_nodes_completed" field.
func TotalNodesCompletedIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldTotalNodesCompleted, vs...))
}

// TotalNodesCompletedNotIn applies the NotIn predicate on the "total_nodes_completed" field.
func TotalNodesCompletedNotIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldTotalNodesCompleted, vs...))
}

// TotalNodesCompletedGT applies the GT predicate on the "total_nodes_completed" field.
func TotalNodesCompletedGT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldTotalNodesCompleted, v))
}

// TotalNodesCompletedGTE applies the GTE predicate on the "total_nodes_completed" field.
func TotalNodesCompletedGTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldTotalNodesCompleted, v))
}

// TotalNodesCompletedLT applies the LT predicate on the "total_nodes_completed" field.
func TotalNodesCompletedLT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldTotalNodesCompleted, v))
}

// TotalNodesCompletedLTE applies the LTE predicate on the "total_nodes_completed" field.
func TotalNodesCompletedLTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldTotalNodesCompleted, v))
}

// TotalXpEarnedEQ applies the EQ predicate on the "total_xp_earned" field.
func TotalXpEarnedEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldTotalXpEarned, v))
}

// TotalXpEarnedNEQ applies the NEQ predicate on the "total_xp_earned" field.
func TotalXpEarnedNEQ(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldTotalXpEarned, v))
}

// TotalXpEarnedIn applies the In predicate on the "total_xp_earned" field.
func TotalXpEarnedIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldTotalXpEarned, vs...))
}

// TotalXpEarnedNotIn applies the NotIn predicate on the "total_xp_earned" field.
func TotalXpEarnedNotIn(vs ...int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldTotalXpEarned, vs...))
}

// TotalXpEarnedGT applies the GT predicate on the "total_xp_earned" field.
func TotalXpEarnedGT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldTotalXpEarned, v))
}

// TotalXpEarnedGTE applies the GTE predicate on the "total_xp_earned" field.
func TotalXpEarnedGTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldTotalXpEarned, v))
}

// TotalXpEarnedLT applies the LT predicate on the "total_xp_earned" field.
func TotalXpEarnedLT(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldTotalXpEarned, v))
}

// TotalXpEarnedLTE applies the LTE predicate on the "total_xp_earned" field.
func TotalXpEarnedLTE(v int) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldTotalXpEarned, v))
}

// LastPracticeDateEQ applies the EQ predicate on the "last_practice_date" field.
func LastPracticeDateEQ(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldLastPracticeDate, v))
}

// LastPracticeDateNEQ applies the NEQ predicate on the "last_practice_date" field.
func LastPracticeDateNEQ(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldLastPracticeDate, v))
}

// LastPracticeDateIn applies the In predicate on the "last_practice_date" field.
func LastPracticeDateIn(vs ...string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldLastPracticeDate, vs...))
}

// LastPracticeDateNotIn applies the NotIn predicate on the "last_practice_date" field.
func LastPracticeDateNotIn(vs ...string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldLastPracticeDate, vs...))
}

// LastPracticeDateGT applies the GT predicate on the "last_practice_date" field.
func LastPracticeDateGT(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldLastPracticeDate, v))
}

// LastPracticeDateGTE applies the GTE predicate on the "last_practice_date" field.
func LastPracticeDateGTE(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldLastPracticeDate, v))
}

// LastPracticeDateLT applies the LT predicate on the "last_practice_date" field.
func LastPracticeDateLT(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldLastPracticeDate, v))
}

// LastPracticeDateLTE applies the LTE predicate on the "last_practice_date" field.
func LastPracticeDateLTE(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldLastPracticeDate, v))
}

// LastPracticeDateContains applies the Contains predicate on the "last_practice_date" field.
func LastPracticeDateContains(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldContains(FieldLastPracticeDate, v))
}

// LastPracticeDateHasPrefix applies the HasPrefix predicate on the "last_practice_date" field.
func LastPracticeDateHasPrefix(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldHasPrefix(FieldLastPracticeDate, v))
}

// LastPracticeDateHasSuffix applies the HasSuffix predicate on the "last_practice_date" field.
func LastPracticeDateHasSuffix(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldHasSuffix(FieldLastPracticeDate, v))
}

// LastPracticeDateIsNil applies the IsNil predicate on the "last_practice_date" field.
func LastPracticeDateIsNil() predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIsNull(FieldLastPracticeDate))
}

// LastPracticeDateNotNil applies the NotNil predicate on the "last_practice_date" field.
func LastPracticeDateNotNil() predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotNull(FieldLastPracticeDate))
}

// LastPracticeDateEqualFold applies the EqualFold predicate on the "last_practice_date" field.
func LastPracticeDateEqualFold(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEqualFold(FieldLastPracticeDate, v))
}

// LastPracticeDateContainsFold applies the ContainsFold predicate on the "last_practice_date" field.
func LastPracticeDateContainsFold(v string) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldContainsFold(FieldLastPracticeDate, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PracticeStat {
	return predicate.PracticeStat(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeStat) predicate.PracticeStat {
	return predicate.PracticeStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeStat) predicate.PracticeStat {
	return predicate.PracticeStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeStat) predicate.PracticeStat {
	return predicate.PracticeStat(sql.NotPredicates(p))
}

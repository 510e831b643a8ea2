package logging

// Standardized field names for structured logging, kept in one place so
// sessions, plans and journal rows stay filterable across the whole bot.
const (
	FieldSession     = "session_id"
	FieldIntent      = "intent"
	FieldStep        = "step"
	FieldAmount      = "amount"
	FieldPocket      = "pocket"
	FieldPocketFrom  = "pocket_from"
	FieldPocketTo    = "pocket_to"
	FieldPlanKind    = "plan_kind"
	FieldUndoToken   = "undo_token"
	FieldTransaction = "transaction_id"
	FieldError       = "error"
	FieldCount       = "count"
)

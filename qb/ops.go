package qb

// Common comparison operator strings, offered as named constants so callers
// don't have to spell out the SQL text themselves. Kept as plain strings
// since ConditionToken.Op is passed straight through to the compiler
// unparsed.
const (
	OpEQ      = "="
	OpNEQ     = "!="
	OpGT      = ">"
	OpGTE     = ">="
	OpLT      = "<"
	OpLTE     = "<="
	OpLike    = "LIKE"
	OpNotLike = "NOT LIKE"
)

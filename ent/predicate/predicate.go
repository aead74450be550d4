// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProfileDoc is the predicate function for profiledoc builders.
type ProfileDoc func(*sql.Selector)

// StudySessionEvent is the predicate function for studysessionevent builders.
type StudySessionEvent func(*sql.Selector)

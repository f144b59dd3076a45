package strategy

import (
	"fmt"
	"strings"
)

// IdentityError reports an empty or invalid client id. It is raised before
// validation runs and before any store access.
type IdentityError struct {
	Reason string
}

func (e *IdentityError) Error() string {
	return e.Reason
}

// ValidationError carries every field violation collected for a submission.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid strategy inputs: %s", strings.Join(e.Messages(), "; "))
}

// Messages returns the violation messages in rule order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return msgs
}

// StoreError reports a record store failure. Nothing was persisted.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

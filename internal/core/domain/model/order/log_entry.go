package order

import (
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
)

// ErrLogEntryIsNotConstructed is returned when a LogEntry was not created
// through one of its constructor functions.
var ErrLogEntryIsNotConstructed = errors.New("LogEntry must be created via a NewLogEntry constructor")

// Action is the tag describing what a log entry records. Actions are
// stored by their canonical string identifiers.
type Action string

const (
	// ActionCreated marks the single entry written when an order is created.
	ActionCreated Action = "created"

	// ActionStatusChange marks an entry recording a status transition.
	ActionStatusChange Action = "status_change"

	// ActionEdited marks an entry recording a quantity or comment edit
	// that did not change the status.
	ActionEdited Action = "edited"
)

// Validate checks that the Action is one of the defined tags.
func (a Action) Validate() error {
	switch a {
	case ActionCreated, ActionStatusChange, ActionEdited:
		return nil
	default:
		return errs.NewValueIsInvalidError("action")
	}
}

// LogEntry is an immutable audit record of one order mutation. Entries are
// append-only: exactly one per mutation, never updated or deleted. For
// non-transition actions ("created", "edited") the status fields are nil.
type LogEntry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	action     Action
	oldStatus  *Status
	newStatus  *Status
	operatorID *kernel.UUID
	comment    string
	createdAt  time.Time

	isConstructed bool
}

// NewCreatedLogEntry builds the audit entry written once at order creation.
// It records the initial status as the new status with no previous one.
func NewCreatedLogEntry(id, orderID kernel.UUID, createdAt time.Time) (LogEntry, error) {
	initial := New
	return newLogEntry(id, orderID, ActionCreated, nil, &initial, nil, "", createdAt)
}

// NewStatusChangeLogEntry builds the audit entry for a status transition.
// operatorID may be nil for client- or system-driven transitions.
func NewStatusChangeLogEntry(
	id, orderID kernel.UUID,
	oldStatus, newStatus Status,
	operatorID *kernel.UUID,
	comment string,
	createdAt time.Time,
) (LogEntry, error) {
	if err := errors.Join(oldStatus.Validate(), newStatus.Validate()); err != nil {
		return LogEntry{}, err
	}
	return newLogEntry(id, orderID, ActionStatusChange, &oldStatus, &newStatus, operatorID, comment, createdAt)
}

// NewEditedLogEntry builds the audit entry for a quantity/comment edit.
// Status fields stay nil because the order remains New.
func NewEditedLogEntry(id, orderID kernel.UUID, comment string, createdAt time.Time) (LogEntry, error) {
	return newLogEntry(id, orderID, ActionEdited, nil, nil, nil, comment, createdAt)
}

func newLogEntry(
	id, orderID kernel.UUID,
	action Action,
	oldStatus, newStatus *Status,
	operatorID *kernel.UUID,
	comment string,
	createdAt time.Time,
) (LogEntry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), action.Validate()); err != nil {
		return LogEntry{}, err
	}
	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return LogEntry{}, err
		}
	}

	return LogEntry{
		id:            id,
		orderID:       orderID,
		action:        action,
		oldStatus:     oldStatus,
		newStatus:     newStatus,
		operatorID:    operatorID,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the LogEntry was created through a constructor.
func (e LogEntry) Validate() error {
	if !e.isConstructed {
		return ErrLogEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e LogEntry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order this entry belongs to.
func (e LogEntry) OrderID() kernel.UUID {
	return e.orderID
}

// Action returns the entry's action tag.
func (e LogEntry) Action() Action {
	return e.action
}

// OldStatus returns the status before the mutation.
// Returns nil for non-transition actions.
func (e LogEntry) OldStatus() *Status {
	return e.oldStatus
}

// NewStatus returns the status after the mutation.
// Returns nil for non-transition actions.
func (e LogEntry) NewStatus() *Status {
	return e.newStatus
}

// OperatorID returns the acting operator, if any.
func (e LogEntry) OperatorID() *kernel.UUID {
	return e.operatorID
}

// Comment returns the free-text note attached to the mutation.
func (e LogEntry) Comment() string {
	return e.comment
}

// CreatedAt returns the timestamp of the mutation.
func (e LogEntry) CreatedAt() time.Time {
	return e.createdAt
}

package events

import "time"

// Event types published on the campus event bus.
const (
	TypeCreditGranted       = "CREDIT_GRANTED"
	TypeReportConfirmed     = "REPORT_CONFIRMED"
	TypeWithdrawalRequested = "WITHDRAWAL_REQUESTED"
	TypeSessionStarted      = "SESSION_STARTED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CREDIT_GRANTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by publishers and consumers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewCreditGranted records a credit grant against a user's wallet.
func NewCreditGranted(userId string, amount int, reason string) Event {
	return BaseEvent{
		Type: TypeCreditGranted,
		Data: map[string]interface{}{
			"user_id": userId,
			"amount":  amount,
			"reason":  reason,
		},
		OccurredAt: time.Now(),
	}
}

// NewReportConfirmed records a verified infrastructure damage report.
func NewReportConfirmed(reportId, userId, description string) Event {
	return BaseEvent{
		Type: TypeReportConfirmed,
		Data: map[string]interface{}{
			"report_id":   reportId,
			"user_id":     userId,
			"description": description,
		},
		OccurredAt: time.Now(),
	}
}

// NewWithdrawalRequested records a credit redemption request.
func NewWithdrawalRequested(withdrawalId, userId string, amount int) Event {
	return BaseEvent{
		Type: TypeWithdrawalRequested,
		Data: map[string]interface{}{
			"withdrawal_id": withdrawalId,
			"user_id":       userId,
			"amount":        amount,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionStarted records creation of a chat session.
func NewSessionStarted(sessionId, userId string) Event {
	return BaseEvent{
		Type: TypeSessionStarted,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
		},
		OccurredAt: time.Now(),
	}
}

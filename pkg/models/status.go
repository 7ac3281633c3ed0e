package models

// Status is a closed set of symbolic states. It carries no transition
// rules and is not attached to Entity or Container.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// ValidStatuses is the set of all valid statuses.
var ValidStatuses = []Status{
	StatusActive,
	StatusInactive,
	StatusPending,
}

// IsValid returns true if the status is recognized.
func (s Status) IsValid() bool {
	for i := range ValidStatuses {
		if s == ValidStatuses[i] {
			return true
		}
	}
	return false
}

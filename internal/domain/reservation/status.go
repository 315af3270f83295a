package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusPickedUp  Status = "picked_up"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var validTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusCancelled},
	StatusApproved: {StatusPickedUp, StatusCancelled},
	StatusPickedUp: {StatusCompleted},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusPickedUp, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

package vehicle

type Status string

const (
	StatusAvailable    Status = "available"
	StatusReserved     Status = "reserved"
	StatusPickedUp     Status = "picked_up"
	StatusOutOfService Status = "out_of_service"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusPickedUp, StatusOutOfService:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

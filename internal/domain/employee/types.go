package employee

type Role string

const (
	RoleAgent   Role = "agent"
	RoleManager Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAgent, RoleManager:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type EmploymentType string

const (
	FullTime EmploymentType = "full_time"
	PartTime EmploymentType = "part_time"
	Contract EmploymentType = "contract"
)

func (t EmploymentType) String() string {
	return string(t)
}

func (t EmploymentType) IsValid() bool {
	switch t {
	case FullTime, PartTime, Contract:
		return true
	default:
		return false
	}
}

func NewEmploymentType(s string) (EmploymentType, error) {
	t := EmploymentType(s)
	if !t.IsValid() {
		return "", ErrInvalidEmploymentType
	}
	return t, nil
}

package reservation

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusNoShow    Status = "noshow"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Actor records who canceled a reservation.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorOperator Actor = "operator"
)

func (a Actor) String() string {
	return string(a)
}

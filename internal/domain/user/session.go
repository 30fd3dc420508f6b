package user

import "github.com/google/uuid"

// Principal is the identity carried by an access token.
type Principal struct {
	UserID  uuid.UUID
	Kind    Kind
	Role    Role
	SalonID uuid.UUID
}

func (p Principal) IsCustomer() bool { return p.Kind == KindCustomer }
func (p Principal) IsOperator() bool { return p.Kind == KindOperator }

type CustomerProfile struct {
	ID      uuid.UUID
	SalonID uuid.UUID
	Name    string
	Email   string
	Phone   *string
}

type OperatorProfile struct {
	ID       uuid.UUID
	SalonID  uuid.UUID
	Name     string
	Email    string
	Role     Role
	IsActive bool
}

// Session is a closed sum type: Anonymous, CustomerSession or OperatorSession.
type Session interface {
	Kind() Kind
	session()
}

type Anonymous struct{}

type CustomerSession struct {
	Profile CustomerProfile
}

type OperatorSession struct {
	Profile OperatorProfile
}

func (Anonymous) Kind() Kind       { return KindAnonymous }
func (CustomerSession) Kind() Kind { return KindCustomer }
func (OperatorSession) Kind() Kind { return KindOperator }

func (Anonymous) session()       {}
func (CustomerSession) session() {}
func (OperatorSession) session() {}

func AsCustomer(s Session) (CustomerProfile, bool) {
	cs, ok := s.(CustomerSession)
	if !ok {
		return CustomerProfile{}, false
	}
	return cs.Profile, true
}

func AsOperator(s Session) (OperatorProfile, bool) {
	op, ok := s.(OperatorSession)
	if !ok {
		return OperatorProfile{}, false
	}
	return op.Profile, true
}

package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidKind     = errors.New("invalid user kind")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const minPasswordLength = 8

type Email struct {
	value string
}

func NewEmail(v string) (Email, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" || !emailPattern.MatchString(v) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) Value() string { return e.value }

type Password struct {
	value string
}

func NewPassword(v string) (Password, error) {
	if utf8.RuneCountInString(v) < minPasswordLength {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: v}, nil
}

func (p Password) Value() string { return p.value }

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

// Role applies to operator accounts only.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func NewRole(v string) (Role, error) {
	r := Role(v)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleStaff:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants every permission of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank() && r.rank() > 0
}

// Kind is the discriminator of Session and Profile.
type Kind string

const (
	KindAnonymous Kind = "anonymous"
	KindCustomer  Kind = "customer"
	KindOperator  Kind = "operator"
)

func NewKind(v string) (Kind, error) {
	switch k := Kind(v); k {
	case KindCustomer, KindOperator:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string { return string(k) }

package response

import (
	"salon-reserve/internal/domain/user"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Session      SessionResponse `json:"session"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SessionResponse is discriminated by Type; Profile is absent for anonymous sessions.
type SessionResponse struct {
	Type    string `json:"type"`
	Profile any    `json:"profile,omitempty"`
}

type CustomerProfileResponse struct {
	ID      uuid.UUID `json:"id"`
	SalonID uuid.UUID `json:"salon_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   *string   `json:"phone,omitempty"`
}

type OperatorProfileResponse struct {
	ID      uuid.UUID `json:"id"`
	SalonID uuid.UUID `json:"salon_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
}

func FromSession(s user.Session) SessionResponse {
	switch v := s.(type) {
	case user.CustomerSession:
		return SessionResponse{
			Type: user.KindCustomer.String(),
			Profile: CustomerProfileResponse{
				ID:      v.Profile.ID,
				SalonID: v.Profile.SalonID,
				Name:    v.Profile.Name,
				Email:   v.Profile.Email,
				Phone:   v.Profile.Phone,
			},
		}
	case user.OperatorSession:
		return SessionResponse{
			Type: user.KindOperator.String(),
			Profile: OperatorProfileResponse{
				ID:      v.Profile.ID,
				SalonID: v.Profile.SalonID,
				Name:    v.Profile.Name,
				Email:   v.Profile.Email,
				Role:    v.Profile.Role.String(),
			},
		}
	default:
		return SessionResponse{Type: user.KindAnonymous.String()}
	}
}

package response

import (
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SalonResponse struct {
	ID                          uuid.UUID `json:"id"`
	Name                        string    `json:"name"`
	Timezone                    string    `json:"timezone"`
	CancellationDeadlineMinutes int       `json:"cancellation_deadline_minutes"`
}

func FromSalonView(v *queries.SalonView) (*SalonResponse, error) {
	var resp SalonResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OperatorResponse is the public calendar entry; contact fields stay private.
type OperatorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

func FromOperatorViews(views []*queries.OperatorView) ([]*OperatorResponse, error) {
	out := make([]*OperatorResponse, 0, len(views))
	for _, v := range views {
		var resp OperatorResponse
		if err := copier.Copy(&resp, v); err != nil {
			return nil, err
		}
		out = append(out, &resp)
	}
	return out, nil
}

package request

import (
	"salon-reserve/internal/domain/salon"
	"salon-reserve/internal/pkg/patch"
	"salon-reserve/internal/usecase/queries"
)

// UpdateSalonSettingsRequest keeps the stored value for every omitted field.
type UpdateSalonSettingsRequest struct {
	Name                        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Timezone                    *string `json:"timezone,omitempty"`
	CancellationDeadlineMinutes *int    `json:"cancellation_deadline_minutes,omitempty" binding:"omitempty,min=0,max=43200"`
}

func (r UpdateSalonSettingsRequest) ToSettings(existing *queries.SalonView) (salon.Settings, error) {
	return salon.NewSettings(
		patch.Coalesce(r.Name, existing.Name),
		patch.Coalesce(r.Timezone, existing.Timezone),
		patch.Coalesce(r.CancellationDeadlineMinutes, existing.CancellationDeadlineMinutes),
	)
}

package menu

import (
	"errors"
	"slices"
	"time"

	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrMenuInactive    = errors.New("menu is not active")
	ErrMenuOtherSalon  = errors.New("menu belongs to another salon")
	ErrMissingCategory = errors.New("category is required")
)

// Spec carries the editable fields of a menu.
type Spec struct {
	CategoryID      uuid.UUID
	DivisionIDs     []uuid.UUID
	Name            string
	Description     string
	PriceWithoutTax int64
	OffPrice        *int64
	DurationHours   int
	DurationMinutes int
	IsActive        bool
	IsCoupon        bool
	DiscountAmount  *int64
	ValidFrom       *slot.Date
	ValidUntil      *slot.Date
}

type Menu struct {
	id          uuid.UUID
	salonID     uuid.UUID
	categoryID  uuid.UUID
	divisionIDs []uuid.UUID
	name        string
	description string
	price       Price
	offPrice    *Price
	duration    Duration
	isActive    bool
	coupon      *Coupon
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMenu(salonID uuid.UUID, spec Spec) (*Menu, error) {
	m := &Menu{id: uuid.New(), salonID: salonID}
	if err := m.apply(spec); err != nil {
		return nil, err
	}
	return m, nil
}

func ReconstructMenu(
	id, salonID, categoryID uuid.UUID,
	divisionIDs []uuid.UUID,
	name, description string,
	price Price,
	offPrice *Price,
	duration Duration,
	isActive bool,
	coupon *Coupon,
	createdAt, updatedAt time.Time,
) *Menu {
	return &Menu{
		id:          id,
		salonID:     salonID,
		categoryID:  categoryID,
		divisionIDs: divisionIDs,
		name:        name,
		description: description,
		price:       price,
		offPrice:    offPrice,
		duration:    duration,
		isActive:    isActive,
		coupon:      coupon,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces every editable field; the menu is left untouched on error.
func (m *Menu) Update(spec Spec) error {
	next := *m
	if err := next.apply(spec); err != nil {
		return err
	}
	*m = next
	return nil
}

func (m *Menu) apply(spec Spec) error {
	if spec.CategoryID == uuid.Nil {
		return ErrMissingCategory
	}
	name, err := normalizeName(spec.Name)
	if err != nil {
		return err
	}
	price, err := NewPrice(spec.PriceWithoutTax)
	if err != nil {
		return err
	}
	var offPrice *Price
	if spec.OffPrice != nil {
		p, err := NewPrice(*spec.OffPrice)
		if err != nil {
			return err
		}
		offPrice = &p
	}
	duration, err := NewDuration(spec.DurationHours, spec.DurationMinutes)
	if err != nil {
		return err
	}

	var coupon *Coupon
	if spec.IsCoupon {
		var amount int64
		if spec.DiscountAmount != nil {
			amount = *spec.DiscountAmount
		}
		c, err := NewCoupon(amount, spec.ValidFrom, spec.ValidUntil)
		if err != nil {
			return err
		}
		coupon = &c
	}

	divisions := slices.Clone(spec.DivisionIDs)
	slices.SortFunc(divisions, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })

	m.categoryID = spec.CategoryID
	m.divisionIDs = slices.Compact(divisions)
	m.name = name
	m.description = spec.Description
	m.price = price
	m.offPrice = offPrice
	m.duration = duration
	m.isActive = spec.IsActive
	m.coupon = coupon
	return nil
}

func (m *Menu) Deactivate() { m.isActive = false }

// EnsureBookable checks that a customer of salonID may reserve this menu.
func (m *Menu) EnsureBookable(salonID uuid.UUID) error {
	if m.salonID != salonID {
		return ErrMenuOtherSalon
	}
	if !m.isActive {
		return ErrMenuInactive
	}
	return nil
}

func (m *Menu) ID() uuid.UUID            { return m.id }
func (m *Menu) SalonID() uuid.UUID       { return m.salonID }
func (m *Menu) CategoryID() uuid.UUID    { return m.categoryID }
func (m *Menu) DivisionIDs() []uuid.UUID { return slices.Clone(m.divisionIDs) }
func (m *Menu) Name() string             { return m.name }
func (m *Menu) Description() string      { return m.description }
func (m *Menu) Price() Price             { return m.price }
func (m *Menu) OffPrice() *Price         { return m.offPrice }
func (m *Menu) Duration() Duration       { return m.duration }
func (m *Menu) IsActive() bool           { return m.isActive }
func (m *Menu) Coupon() *Coupon          { return m.coupon }
func (m *Menu) IsCoupon() bool           { return m.coupon != nil }
func (m *Menu) CreatedAt() time.Time     { return m.createdAt }
func (m *Menu) UpdatedAt() time.Time     { return m.updatedAt }

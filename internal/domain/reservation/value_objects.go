package reservation

import (
	"errors"
	"unicode/utf8"

	"salon-reserve/internal/domain/menu"
)

var ErrOtherRequestsTooLong = errors.New("other requests must be at most 200 characters")

const MaxOtherRequestsLength = 200

// OtherRequests is the customer's free-text note, counted in characters.
type OtherRequests struct {
	value string
}

func NewOtherRequests(value string) (OtherRequests, error) {
	if utf8.RuneCountInString(value) > MaxOtherRequestsLength {
		return OtherRequests{}, ErrOtherRequestsTooLong
	}
	return OtherRequests{value: value}, nil
}

func (o OtherRequests) String() string {
	return o.value
}

func (o OtherRequests) IsEmpty() bool {
	return o.value == ""
}

// PriceSnapshot freezes the menu pricing at booking time.
type PriceSnapshot struct {
	Base     menu.Price
	OffPrice menu.Price
	Discount menu.Price
	Total    menu.Price
}

// TotalWithoutGelRemoval is the total the customer would pay without the off option.
func (p PriceSnapshot) TotalWithoutGelRemoval() menu.Price {
	if p.Discount >= p.Base {
		return 0
	}
	return p.Base - p.Discount
}

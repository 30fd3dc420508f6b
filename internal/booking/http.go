package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

// TokenSource yields the bearer token for each request.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken always returns token.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) { return token, nil }
}

// HTTPBackend talks to the salon-reserve API as an authenticated customer.
type HTTPBackend struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

func NewHTTPBackend(baseURL string, token TokenSource) *HTTPBackend {
	return &HTTPBackend{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient replaces the default client, e.g. to share a transport.
func (b *HTTPBackend) WithHTTPClient(c *http.Client) *HTTPBackend {
	b.httpClient = c
	return b
}

func (b *HTTPBackend) Operators(ctx context.Context, salonID uuid.UUID) ([]Operator, error) {
	endpoint := fmt.Sprintf("%s/api/salons/%s/operators", b.baseURL, salonID)

	var resp []response.OperatorResponse
	if _, err := b.do(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]Operator, 0, len(resp))
	for _, o := range resp {
		out = append(out, Operator{ID: o.ID, Name: o.Name, Role: o.Role})
	}
	return out, nil
}

func (b *HTTPBackend) Availability(ctx context.Context, operatorID uuid.UUID, month slot.Date) (availability.Snapshot, error) {
	endpoint := fmt.Sprintf("%s/api/operators/%s/availability?month=%s",
		b.baseURL, operatorID, url.QueryEscape(month.MonthString()))

	var resp response.AvailabilityResponse
	if _, err := b.do(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return availability.Empty(), err
	}
	return resp.Snapshot, nil
}

func (b *HTTPBackend) Eligibility(ctx context.Context) (reservation.Eligibility, error) {
	var resp response.EligibilityResponse
	if _, err := b.do(ctx, http.MethodGet, b.baseURL+"/api/reservations/eligibility", nil, nil, &resp); err != nil {
		return reservation.Eligibility{}, err
	}
	return reservation.Eligibility{CanCreate: resp.CanCreate, LockedUntil: resp.LockedUntil}, nil
}

func (b *HTTPBackend) CreateReservation(ctx context.Context, idempotencyKey uuid.UUID, req CreateRequest) (Reservation, error) {
	body := request.CreateReservationRequest{
		OperatorID:    req.OperatorID,
		MenuID:        req.MenuID,
		Date:          req.Date.String(),
		Time:          req.Time.String(),
		GelRemoval:    req.GelRemoval,
		OtherRequests: req.OtherRequests,
	}
	headers := map[string]string{"Idempotency-Key": idempotencyKey.String()}

	var resp response.ReservationResponse
	h, err := b.do(ctx, http.MethodPost, b.baseURL+"/api/reservations", headers, body, &resp)
	if err != nil {
		return Reservation{}, err
	}
	res := fromResponse(resp)
	res.Replayed = h.Get("Idempotent-Replayed") == "true"
	return res, nil
}

func (b *HTTPBackend) CancelReservation(ctx context.Context, reservationID uuid.UUID) (Reservation, error) {
	endpoint := fmt.Sprintf("%s/api/reservations/%s/cancel", b.baseURL, reservationID)

	var resp response.ReservationResponse
	if _, err := b.do(ctx, http.MethodPost, endpoint, nil, nil, &resp); err != nil {
		return Reservation{}, err
	}
	return fromResponse(resp), nil
}

func (b *HTTPBackend) RebookCheck(ctx context.Context, menuID uuid.UUID) error {
	endpoint := fmt.Sprintf("%s/api/menus/%s/rebook-check", b.baseURL, menuID)
	_, err := b.do(ctx, http.MethodGet, endpoint, nil, nil, nil)
	return err
}

func fromResponse(r response.ReservationResponse) Reservation {
	deadline := r.CancellationDeadlineMinutes
	return Reservation{
		ID:                          r.ID,
		SalonID:                     r.SalonID,
		OperatorID:                  r.OperatorID,
		MenuID:                      r.MenuID,
		MenuName:                    r.MenuName,
		Date:                        r.Date,
		Time:                        r.Time,
		Status:                      reservation.Status(r.Status),
		GelRemoval:                  r.GelRemoval,
		OtherRequests:               r.OtherRequests,
		TotalPrice:                  r.TotalPrice,
		CancellationDeadlineMinutes: &deadline,
	}
}

func (b *HTTPBackend) do(ctx context.Context, method, endpoint string, headers map[string]string, body, out any) (http.Header, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if b.token != nil {
		token, err := b.token(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "resolve token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s %s", method, req.URL.Path), ErrTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.Header, statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.Header, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.Header, errs.Tag(errs.Wrap(err, "decode response"), ErrUnexpectedPayload)
	}
	return resp.Header, nil
}

type lockoutDetail struct {
	LockedUntil *time.Time `json:"locked_until"`
}

// statusError maps an error response onto the package taxonomy.
func statusError(resp *http.Response) error {
	var payload struct {
		httperr.Response
		Detail json.RawMessage `json:"detail"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(data, &payload)

	msg := payload.Error.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	base := errs.Newf("http %d: %s", resp.StatusCode, msg)

	switch {
	case resp.StatusCode == http.StatusConflict:
		var detail lockoutDetail
		if len(payload.Detail) > 0 && json.Unmarshal(payload.Detail, &detail) == nil && detail.LockedUntil != nil {
			return errs.Tag(&LockedOutError{Until: detail.LockedUntil}, ErrLockedOut)
		}
		return errs.Mark(base, ErrConflict)
	case resp.StatusCode == http.StatusNotFound:
		return errs.Mark(base, ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return errs.Mark(base, ErrValidation)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errs.Mark(base, errs.ErrForbidden)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return errs.Mark(base, ErrTransient)
	default:
		return base
	}
}

var _ Backend = (*HTTPBackend)(nil)

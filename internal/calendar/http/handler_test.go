package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sportbook-app/sportbook-backend/internal/calendar"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

const testCourtID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

type stubService struct {
	month []calendar.MonthDay
	day   *calendar.DayAvailability
}

func (s *stubService) Month(ctx context.Context, courtID, month string) ([]calendar.MonthDay, error) {
	if courtID != testCourtID {
		return nil, calendar.ErrCourtNotFound
	}
	return s.month, nil
}

func (s *stubService) DayAvailability(ctx context.Context, courtID, date string, d pricing.Duration) (*calendar.DayAvailability, error) {
	if courtID != testCourtID {
		return nil, calendar.ErrCourtNotFound
	}
	return s.day, nil
}

func newTestRouter(svc calendar.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc))
	return r
}

func TestMonthEndpoint(t *testing.T) {
	svc := &stubService{
		month: []calendar.MonthDay{
			{Day: calendar.Day{Date: "2026-03-01", Closed: true}, Status: calendar.DayClosed},
			{Day: calendar.Day{Date: "2026-03-02", Slots: []calendar.Slot{{Time: "09:00", Enabled: true}}}, Status: calendar.DayAvailable},
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/courts/"+testCourtID+"/calendar?month=2026-03", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp MonthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, testCourtID, resp.CourtID)
	require.Equal(t, "2026-03", resp.Month)
	require.Len(t, resp.Days, 2)
	require.Equal(t, calendar.DayClosed, resp.Days[0].Status)
}

func TestMonthEndpointValidation(t *testing.T) {
	r := newTestRouter(&stubService{})

	// Missing month parameter.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/courts/"+testCourtID+"/calendar", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed month parameter.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/courts/"+testCourtID+"/calendar?month=03-2026", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Court ID that is not a UUID.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/courts/abc/calendar?month=2026-03", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityEndpoint(t *testing.T) {
	price := 20.0
	svc := &stubService{
		day: &calendar.DayAvailability{
			Day:      calendar.Day{Date: "2026-03-24", Slots: []calendar.Slot{{Time: "09:00", Enabled: true}}},
			Status:   calendar.DayAvailable,
			Duration: 1,
			Starts: []calendar.StartOption{
				{Time: "09:00", Price: price},
			},
			PriceLabel: "€20.00",
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/courts/"+testCourtID+"/availability?date=2026-03-24&duration_hours=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp calendar.DayAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "2026-03-24", resp.Day.Date)
	require.Len(t, resp.Starts, 1)
	require.Equal(t, 20.0, resp.Starts[0].Price)
	require.Equal(t, "€20.00", resp.PriceLabel)
}

func TestAvailabilityEndpointValidation(t *testing.T) {
	r := newTestRouter(&stubService{})

	// Unsupported duration.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/courts/"+testCourtID+"/availability?date=2026-03-24&duration_hours=2", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown court.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/courts/8a1d8f10-0000-4000-8000-000000000000/availability?date=2026-03-24&duration_hours=1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

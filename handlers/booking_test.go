package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingSvc "allride/services/booking"
	"allride/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// availabilityStub answers only the availability query; the rest of the
// service is never reached by these requests.
type availabilityStub struct {
	bookingSvc.BookingService
	available bool
	err       error
}

func (s *availabilityStub) IsAvailable(vehicleID, startDate, endDate string) (bool, error) {
	return s.available, s.err
}

func newAvailabilityRouter(svc bookingSvc.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	bh := NewBookingHandler(svc)
	router.GET("/api/bookings/availability", bh.AvailabilityHandler)
	return router
}

func doGET(t *testing.T, router *gin.Engine, url string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestAvailabilityEndpointAvailable(t *testing.T) {
	router := newAvailabilityRouter(&availabilityStub{available: true})

	code, body := doGET(t, router, "/api/bookings/availability?vehicleId=veh-1&startDate=2026-03-10&endDate=2026-03-12")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["isAvailable"])
}

func TestAvailabilityEndpointUnavailable(t *testing.T) {
	router := newAvailabilityRouter(&availabilityStub{available: false})

	code, body := doGET(t, router, "/api/bookings/availability?vehicleId=veh-1&startDate=2026-03-10&endDate=2026-03-12")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["isAvailable"])
}

func TestAvailabilityEndpointMissingVehicleID(t *testing.T) {
	router := newAvailabilityRouter(&availabilityStub{available: true})

	code, body := doGET(t, router, "/api/bookings/availability?startDate=2026-03-10&endDate=2026-03-12")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "vehicleId is required", body["message"])
}

func TestAvailabilityEndpointBadDates(t *testing.T) {
	router := newAvailabilityRouter(&availabilityStub{
		err: utils.NewValidationError("invalid date \"10-03-2026\": use YYYY-MM-DD"),
	})

	code, body := doGET(t, router, "/api/bookings/availability?vehicleId=veh-1&startDate=10-03-2026&endDate=12-03-2026")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "YYYY-MM-DD")
}

func TestAvailabilityEndpointUnknownVehicle(t *testing.T) {
	router := newAvailabilityRouter(&availabilityStub{
		err: utils.NewNotFoundError("vehicle", "veh-404"),
	})

	code, body := doGET(t, router, "/api/bookings/availability?vehicleId=veh-404&startDate=2026-03-10&endDate=2026-03-12")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

package rating_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "cleanrate/infras/otel/mocks"
	"cleanrate/internal/domains/rating/mocks"
	"cleanrate/internal/domains/rating/model/dto"
	"cleanrate/internal/handlers/rating"
	"cleanrate/shared/constant"
	"cleanrate/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	employeeID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	roomID     = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
	ratingID   = "550e8400-e29b-41d4-a716-446655440000"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockRatingService) {
	t.Helper()

	svc := mocks.NewMockRatingService(gomock.NewController(t))
	handler := rating.New(svc, otelMocks.NewOtel())

	r := chi.NewRouter()
	handler.Router(r)

	return r, svc
}

func serve(r chi.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestHandler_SubmitRating(t *testing.T) {
	body := `{"employee_id":"` + employeeID + `","room_id":"` + roomID + `","rating":8,"notes":"clean"}`
	want := dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: 8, Notes: "clean"}

	tests := []struct {
		name     string
		created  bool
		message  string
		wantCode int
	}{
		{"first rating of the day", true, dto.MsgRatingAdded, http.StatusCreated},
		{"resubmission", false, dto.MsgRatingUpdated, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newRouter(t)

			svc.EXPECT().Submit(gomock.Any(), want).
				Return(dto.SubmitRatingResponse{Message: tt.message, Created: tt.created}, nil)

			rec := serve(r, http.MethodPost, "/ratings", body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.NotContains(t, rec.Body.String(), "created")
		})
	}
}

func TestHandler_SubmitRating_OutOfRange(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(dto.SubmitRatingResponse{}, failure.BadRequestFromString("Rating must be between 1 and 10"))

	rec := serve(r, http.MethodPost, "/ratings", `{"employee_id":"`+employeeID+`","room_id":"`+roomID+`","rating":11}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Rating must be between 1 and 10"}`, rec.Body.String())
}

func TestHandler_UpdateRating(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().UpdateByID(gomock.Any(), dto.SubmitRatingRequest{RatingID: ratingID, Rating: 5}).
		Return(dto.SubmitRatingResponse{}, failure.NotFound("Rating not found"))

	rec := serve(r, http.MethodPut, "/ratings", `{"rating_id":"`+ratingID+`","rating":5}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ClearRating(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().Clear(gomock.Any(), dto.ClearRatingRequest{EmployeeID: employeeID, RoomID: roomID, Date: "2026-10-19"}).
		Return(dto.MsgNoRating, nil)

	rec := serve(r, http.MethodDelete, "/ratings", `{"employee_id":"`+employeeID+`","room_id":"`+roomID+`","date":"2026-10-19"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"No rating found to delete"}`, rec.Body.String())
}

func TestHandler_GetRatings(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().List(gomock.Any(), dto.ListRatingsRequest{
		EmployeeID: employeeID,
		Building:   "Tower A",
		Floor:      "3F",
		From:       "2026-10-01",
		To:         "2026-10-19",
	}).Return(dto.ListRatingsResponse{}, nil)

	rec := serve(r, http.MethodGet, "/ratings?employee_id="+employeeID+"&building=Tower+A&floor=3F&from=2026-10-01&to=2026-10-19", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ExportRatings(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().Export(gomock.Any(), dto.ListRatingsRequest{Building: "Tower A"}).Return([]byte("xlsx"), nil)

	rec := serve(r, http.MethodGet, "/ratings/export?building=Tower+A", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentDisposition), `attachment; filename="ratings-`)
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestHandler_ExportRatings_Error(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, errors.New("excel failed"))

	rec := serve(r, http.MethodGet, "/ratings/export", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

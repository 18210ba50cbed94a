package history_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "cleanrate/infras/otel/mocks"
	"cleanrate/internal/domains/history/mocks"
	"cleanrate/internal/domains/history/model/dto"
	"cleanrate/internal/handlers/history"
	"cleanrate/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockHistoryService) {
	t.Helper()

	svc := mocks.NewMockHistoryService(gomock.NewController(t))
	handler := history.New(svc, otelMocks.NewOtel())

	r := chi.NewRouter()
	handler.Router(r)

	return r, svc
}

func serve(r chi.Router, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestHandler_GetHistory(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.ListHistoryRequest) (dto.ListHistoryResponse, error) {
		assert.Equal(t, "ADD_RATING", req.Action)
		assert.Equal(t, "ratings", req.TableName)
		assert.Equal(t, 20, req.Limit)
		assert.True(t, req.From.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
		assert.Nil(t, req.To)

		return dto.ListHistoryResponse{}, nil
	})

	rec := serve(r, http.MethodGet, "/history?action=ADD_RATING&table_name=ratings&limit=20&from=2026-10-01T00:00:00Z", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetHistory_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad from", "?from=yesterday"},
		{"bad to", "?to=10/01/2026"},
		{"bad limit", "?limit=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRouter(t)

			rec := serve(r, http.MethodGet, "/history"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_CreateHistory(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateHistoryRequest) (dto.HistoryResponse, error) {
		assert.Equal(t, "EXPORT_REPORT", req.Action)
		assert.JSONEq(t, `{"rows":3}`, string(req.NewValues))

		return dto.HistoryResponse{ID: "entry-1", Action: req.Action}, nil
	})

	rec := serve(r, http.MethodPost, "/history", `{"action":"EXPORT_REPORT","new_values":{"rows":3}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_CreateHistory_MissingAction(t *testing.T) {
	r, _ := newRouter(t)

	rec := serve(r, http.MethodPost, "/history", `{"table_name":"ratings"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ExportHistory(t *testing.T) {
	r, svc := newRouter(t)

	svc.EXPECT().Export(gomock.Any(), gomock.Any()).Return([]byte("xlsx"), nil)

	rec := serve(r, http.MethodGet, "/history/export", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
}

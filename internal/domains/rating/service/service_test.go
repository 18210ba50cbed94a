package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"cleanrate/config"
	"cleanrate/infras/otel/mocks"
	pgMocks "cleanrate/infras/postgres/mocks"
	employeeMocks "cleanrate/internal/domains/employee/mocks"
	employeeDto "cleanrate/internal/domains/employee/model/dto"
	historyMocks "cleanrate/internal/domains/history/mocks"
	historyModel "cleanrate/internal/domains/history/model"
	historyDto "cleanrate/internal/domains/history/model/dto"
	ratingMocks "cleanrate/internal/domains/rating/mocks"
	"cleanrate/internal/domains/rating/model"
	"cleanrate/internal/domains/rating/model/dto"
	"cleanrate/internal/domains/rating/service"
	cacheMocks "cleanrate/shared/cache/mocks"
	"cleanrate/shared/constant"
	gDto "cleanrate/shared/dto"
	"cleanrate/shared/failure"
)

const (
	adminID    = "550e8400-e29b-41d4-a716-446655440000"
	employeeID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	roomID     = "9b2f0c1e-5a0d-4c4e-9a53-0e1f6a2b7c11"
	ratingID   = "0f8fad5b-d9cb-469f-a165-70867728950e"
)

type deps struct {
	repo       *ratingMocks.MockRatingRepository
	employees  *employeeMocks.MockEmployeeService
	transactor *pgMocks.MockTransactor
	history    *historyMocks.MockHistoryService
	cache      *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Rating, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:       ratingMocks.NewMockRatingRepository(ctrl),
		employees:  employeeMocks.NewMockEmployeeService(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		history:    historyMocks.NewMockHistoryService(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	pgMocks.PassThrough(d.transactor)
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(d.repo, d.employees, d.transactor, d.history, &config.Config{}, d.cache, mocks.NewOtel()), d
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, adminID)
}

func today() string {
	return time.Now().UTC().Format(constant.DayFormat)
}

func storedRating(score int, notes string) model.Rating {
	day, _ := time.Parse(constant.DayFormat, today())

	return model.Rating{
		ID:           ratingID,
		EmployeeID:   employeeID,
		RoomID:       roomID,
		Rating:       score,
		Notes:        notes,
		RatedOn:      day,
		EmployeeName: "Alice",
		RoomName:     "301",
		FloorName:    "3F",
		BuildingName: "HQ",
	}
}

func TestRatingService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.SubmitRatingRequest
		msg  string
	}{
		{"missing room", dto.SubmitRatingRequest{EmployeeID: employeeID, Rating: 5}, "All fields are required"},
		{"missing rating", dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID}, "All fields are required"},
		{"too high", dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: 11}, "Rating must be between 1 and 10"},
		{"negative", dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: -3}, "Rating must be between 1 and 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Submit(adminContext(), tt.req)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestRatingService_Submit_Insert(t *testing.T) {
	svc, d := newService(t)

	var inserted model.Rating

	gomock.InOrder(
		d.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), "ratings:"+employeeID+":"+roomID+":"+today()).Return(nil),
		d.repo.EXPECT().TargetTx(gomock.Any(), gomock.Any(), employeeID, roomID).
			Return(model.Target{EmployeeName: "Alice", RoomName: "301"}, nil),
		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Rating, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, today(), args["rated_on"])

				return model.Rating{}, nil
			}),
		d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, m model.Rating) error {
				inserted = m

				assert.Equal(t, 7, m.Rating)
				assert.Equal(t, adminID, *m.RatedBy)
				assert.Equal(t, today(), m.RatedOn.Format(constant.DayFormat))

				return nil
			}),
		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Rating, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, inserted.ID, args["id"])

				stored := storedRating(7, "clean")
				stored.ID = inserted.ID

				return stored, nil
			}),
	)

	d.history.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry historyDto.Entry) {
		assert.Equal(t, historyModel.ActionAddRating, entry.Action)
		assert.Nil(t, entry.OldValues)

		snap, ok := entry.NewValues.(dto.RatingResponse)
		require.True(t, ok)
		assert.Equal(t, "Alice", snap.EmployeeName)
		assert.Equal(t, "HQ", snap.BuildingName)
	})

	res, err := svc.Submit(adminContext(), dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: 7, Notes: "clean"})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "Rating added successfully", res.Message)
	assert.Equal(t, 7, res.Rating.Rating)
}

func TestRatingService_Submit_SystemCaller(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().TargetTx(gomock.Any(), gomock.Any(), employeeID, roomID).Return(model.Target{}, nil)
	d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Rating{}, nil)
	d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, m model.Rating) error {
			assert.Nil(t, m.RatedBy)
			assert.Equal(t, constant.ContextSystem, m.CreatedBy)

			return nil
		})
	d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedRating(6, ""), nil)
	d.history.EXPECT().Record(gomock.Any(), gomock.Any())

	res, err := svc.Submit(context.Background(), dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: 6})
	require.NoError(t, err)
	assert.True(t, res.Created)
}

func TestRatingService_Submit_SameDayUpdates(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().TargetTx(gomock.Any(), gomock.Any(), employeeID, roomID).
		Return(model.Target{EmployeeName: "Alice", RoomName: "301"}, nil)

	gomock.InOrder(
		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedRating(7, "clean"), nil),
		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedRating(9, ""), nil),
	)

	d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
			assert.Equal(t, 9, fields["rating"])
			assert.Equal(t, "", fields["notes"])
			assert.NotContains(t, fields, "rated_by")

			_, args := filter.GetWhereClause()
			assert.Equal(t, ratingID, args["id"])

			return nil
		})

	d.history.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry historyDto.Entry) {
		assert.Equal(t, historyModel.ActionUpdateRating, entry.Action)

		old, ok := entry.OldValues.(dto.RatingResponse)
		require.True(t, ok)
		assert.Equal(t, 7, old.Rating)

		current, ok := entry.NewValues.(dto.RatingResponse)
		require.True(t, ok)
		assert.Equal(t, 9, current.Rating)
	})

	res, err := svc.Submit(adminContext(), dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: 9})
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "Rating updated successfully", res.Message)
	assert.Equal(t, ratingID, res.Rating.ID)
}

func TestRatingService_Submit_UnknownTarget(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().TargetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Target{}, nil)

	_, err := svc.Submit(adminContext(), dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: 5})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRatingService_Submit_PersistenceFailure(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := svc.Submit(adminContext(), dto.SubmitRatingRequest{EmployeeID: employeeID, RoomID: roomID, Rating: 5})
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestRatingService_UpdateByID(t *testing.T) {
	t.Run("routed from submit", func(t *testing.T) {
		svc, d := newService(t)

		gomock.InOrder(
			d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedRating(4, "dusty"), nil),
			d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedRating(8, "better"), nil),
		)
		d.history.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry historyDto.Entry) {
			assert.Equal(t, historyModel.ActionUpdateRating, entry.Action)
			assert.Equal(t, ratingID, entry.RecordID)
		})

		res, err := svc.Submit(adminContext(), dto.SubmitRatingRequest{RatingID: ratingID, Rating: 8, Notes: "better"})
		require.NoError(t, err)
		assert.Equal(t, 8, res.Rating.Rating)
		assert.False(t, res.Created)
	})

	t.Run("not found", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Rating{}, nil)

		_, err := svc.UpdateByID(adminContext(), dto.SubmitRatingRequest{RatingID: ratingID, Rating: 8})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Rating not found")
	})

	t.Run("missing rating", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.UpdateByID(adminContext(), dto.SubmitRatingRequest{RatingID: ratingID})
		assert.EqualError(t, err, "Rating ID and rating value are required")
	})
}

func TestRatingService_Clear(t *testing.T) {
	t.Run("no rating is a no-op", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Rating{}, nil)

		msg, err := svc.Clear(adminContext(), dto.ClearRatingRequest{EmployeeID: employeeID, RoomID: roomID, Date: "2025-01-06"})
		require.NoError(t, err)
		assert.Equal(t, "No rating found to delete", msg)
	})

	t.Run("deletes and records snapshot", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Rating, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "2025-01-06", args["rated_on"])

				return storedRating(6, "ok"), nil
			})
		d.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.history.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry historyDto.Entry) {
			assert.Equal(t, historyModel.ActionDeleteRating, entry.Action)
			assert.Nil(t, entry.NewValues)

			old, ok := entry.OldValues.(dto.RatingResponse)
			require.True(t, ok)
			assert.Equal(t, "301", old.RoomName)
		})

		msg, err := svc.Clear(adminContext(), dto.ClearRatingRequest{EmployeeID: employeeID, RoomID: roomID, Date: "2025-01-06"})
		require.NoError(t, err)
		assert.Equal(t, "Rating cleared successfully", msg)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Clear(adminContext(), dto.ClearRatingRequest{EmployeeID: employeeID, RoomID: roomID, Date: "06/01/2025"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Clear(adminContext(), dto.ClearRatingRequest{EmployeeID: employeeID})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func employees() employeeDto.ListEmployeesResponse {
	building := "HQ"

	return employeeDto.ListEmployeesResponse{
		Employees: []employeeDto.EmployeeResponse{
			{ID: employeeID, Name: "Alice", Email: "alice@example.com", AssignedBuilding: &building, AssignedFloors: []string{"3F"}},
			{ID: "bob", Name: "Bob", Email: "bob@example.com", AssignedFloors: []string{}},
		},
		TotalEmployees: 2,
	}
}

func TestRatingService_List(t *testing.T) {
	t.Run("groups ratings per employee", func(t *testing.T) {
		svc, d := newService(t)

		d.employees.EXPECT().List(gomock.Any(), employeeDto.ListEmployeesRequest{Building: "HQ", Floor: "3F"}).Return(employees(), nil)
		d.repo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter model.ListFilter) ([]model.Rating, error) {
				assert.Equal(t, []string{employeeID, "bob"}, filter.EmployeeIDs)
				require.NotNil(t, filter.From)
				assert.Equal(t, "2025-01-01", filter.From.Format(constant.DayFormat))
				assert.Nil(t, filter.To)

				return []model.Rating{storedRating(7, ""), storedRating(8, ""), storedRating(8, "")}, nil
			})

		res, err := svc.List(context.Background(), dto.ListRatingsRequest{Building: "HQ", Floor: "3F", From: "2025-01-01"})
		require.NoError(t, err)
		require.Len(t, res.Employees, 2)
		assert.Equal(t, 2, res.TotalEmployees)

		alice := res.Employees[0]
		assert.Equal(t, 3, alice.TotalRooms)
		assert.Equal(t, 7.7, alice.AverageRating)
		assert.Equal(t, []string{"3F"}, alice.AssignedFloors)

		bob := res.Employees[1]
		assert.Zero(t, bob.TotalRooms)
		assert.Zero(t, bob.AverageRating)
		assert.NotNil(t, bob.Ratings)
	})

	t.Run("single employee", func(t *testing.T) {
		svc, d := newService(t)

		d.employees.EXPECT().List(gomock.Any(), gomock.Any()).Return(employees(), nil)
		d.repo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter model.ListFilter) ([]model.Rating, error) {
				assert.Equal(t, []string{"bob"}, filter.EmployeeIDs)

				return []model.Rating{}, nil
			})

		res, err := svc.List(context.Background(), dto.ListRatingsRequest{EmployeeID: "bob"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalEmployees)
	})

	t.Run("unknown employee skips the query", func(t *testing.T) {
		svc, d := newService(t)

		d.employees.EXPECT().List(gomock.Any(), gomock.Any()).Return(employees(), nil)

		res, err := svc.List(context.Background(), dto.ListRatingsRequest{EmployeeID: "nobody"})
		require.NoError(t, err)
		assert.Empty(t, res.Employees)
	})

	t.Run("bad range", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.List(context.Background(), dto.ListRatingsRequest{To: "yesterday"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRatingService_Export(t *testing.T) {
	svc, d := newService(t)

	d.employees.EXPECT().List(gomock.Any(), gomock.Any()).Return(employees(), nil)
	d.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Rating{storedRating(7, "clean")}, nil)

	data, err := svc.Export(context.Background(), dto.ListRatingsRequest{})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer file.Close()

	assert.Equal(t, []string{"Ratings", "Summary"}, file.GetSheetList())

	rows, err := file.GetRows("Ratings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Employee", rows[0][0])
	assert.Equal(t, []string{"Alice", "alice@example.com", "HQ", "3F", "301", "7", "clean"}, rows[1][:7])

	summary, err := file.GetRows("Summary")
	require.NoError(t, err)
	assert.Len(t, summary, 3)
}

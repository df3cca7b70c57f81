package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/mocks"
)

func newClusterHandler(t *testing.T) (*handlers.ClusterHandler, *mocks.MockHealthReporter, *mocks.MockInfoReporter) {
	t.Helper()
	health := mocks.NewMockHealthReporter(t)
	info := mocks.NewMockInfoReporter(t)
	return handlers.NewClusterHandler(health, info), health, info
}

func TestHealth_Success(t *testing.T) {
	t.Parallel()
	h, health, _ := newClusterHandler(t)

	report := cluster.NewHealthReport(cluster.ReplicaSetStatus{
		SetName: "rs0",
		Members: []cluster.ReplicaMember{
			{Name: "db1:27017", State: "PRIMARY", Health: 1, Uptime: time.Minute},
			{Name: "db2:27017", State: "SECONDARY", Health: 1, Uptime: time.Minute},
			{Name: "db3:27017", State: "(not reachable/healthy)", Health: 0},
		},
	}, testTime)
	health.EXPECT().CheckHealth(mock.Anything).Return(report, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.Database.NodesHealth != "2/3" {
		t.Errorf("NodesHealth = %q, want 2/3", resp.Database.NodesHealth)
	}
}

func TestHealth_Failures(t *testing.T) {
	t.Parallel()

	kinds := []error{
		cluster.ErrNotConnected,
		cluster.ErrPingFailed,
		cluster.ErrStatusFailed,
		cluster.ErrNoHealthyNodes,
	}

	for _, kind := range kinds {
		t.Run(kind.Error(), func(t *testing.T) {
			t.Parallel()
			h, health, _ := newClusterHandler(t)

			health.EXPECT().CheckHealth(mock.Anything).
				Return(nil, cluster.NewHealthError(kind, nil, testTime))

			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			requireStatus(t, rec, http.StatusInternalServerError)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.Status != "error" {
				t.Errorf("Status = %q, want error", resp.Status)
			}
			if resp.Message != kind.Error() {
				t.Errorf("Message = %q, want %q", resp.Message, kind.Error())
			}
			if resp.Timestamp != dto.FormatTime(testTime) {
				t.Errorf("Timestamp = %q, want %q", resp.Timestamp, dto.FormatTime(testTime))
			}
		})
	}
}

func TestInfo_Success(t *testing.T) {
	t.Parallel()
	h, _, info := newClusterHandler(t)

	info.EXPECT().Snapshot(mock.Anything).Return(cluster.NewDatabaseInfo("app", []cluster.CollectionInfo{
		{Name: "users", Count: 2},
		{Name: "posts", Count: 1},
	}, testTime), nil)

	rec := httptest.NewRecorder()
	h.Info(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.InfoResponse](t, rec)
	if resp.Database.Name != "app" || len(resp.Database.Collections) != 2 {
		t.Errorf("database = %+v", resp.Database)
	}
	if resp.Database.Collections[0].Name != "posts" {
		t.Errorf("Collections[0] = %q, want posts", resp.Database.Collections[0].Name)
	}
}

func TestInfo_Error(t *testing.T) {
	t.Parallel()
	h, _, info := newClusterHandler(t)

	info.EXPECT().Snapshot(mock.Anything).Return(nil, errors.New("listing collections: boom"))

	rec := httptest.NewRecorder()
	h.Info(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Message != "listing collections: boom" || resp.Timestamp == "" {
		t.Errorf("error body = %+v", resp)
	}
}

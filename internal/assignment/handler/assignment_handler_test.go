package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/domain"
	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/handler"
	"github.com/Keshaini/MEDITRACK-sub000/internal/assignment/service"
	apperrors "github.com/Keshaini/MEDITRACK-sub000/internal/errors"
	identitydomain "github.com/Keshaini/MEDITRACK-sub000/internal/identity/domain"
	identityhandler "github.com/Keshaini/MEDITRACK-sub000/internal/identity/handler"
	identityservice "github.com/Keshaini/MEDITRACK-sub000/internal/identity/service"
	"github.com/Keshaini/MEDITRACK-sub000/internal/logging"
	"github.com/Keshaini/MEDITRACK-sub000/internal/mocks"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var (
	adminAccount   = &identitydomain.Account{ID: "admin-1", Name: "Admin", Role: "admin", Status: "verified"}
	patientAccount = &identitydomain.Account{ID: "patient-1", Name: "Alice Perera", Email: "alice@example.com", Role: "patient", Status: "verified"}
	doctorAccount  = &identitydomain.Account{ID: "doctor-1", Name: "Dr. Silva", Email: "silva@example.com", Role: "doctor", Status: "verified"}
)

type assignmentFixture struct {
	app      *fiber.App
	repo     *mocks.MockAssignmentRepository
	accounts *mocks.MockAccountRepository
	tokens   *identityservice.TokenService
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAssignmentRepository(ctrl)
	accounts := mocks.NewMockAccountRepository(ctrl)
	tokens := identityservice.NewTokenService("assignment-test-secret", 60)

	app := fiber.New()
	handler.RegisterRoutes(app,
		handler.NewAssignmentHandler(service.NewAssignmentService(repo, accounts, testLogger()), testLogger()),
		identityhandler.NewAuthMiddleware(tokens, accounts))

	return &assignmentFixture{app: app, repo: repo, accounts: accounts, tokens: tokens}
}

// authedAs mints a token for the account and wires the middleware lookup.
func (f *assignmentFixture) authedAs(t *testing.T, account *identitydomain.Account) string {
	t.Helper()

	f.accounts.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)

	token, _, err := f.tokens.Generate(account.ID, account.Role)
	require.NoError(t, err)

	return token
}

func (f *assignmentFixture) request(t *testing.T, method, path, body, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := f.app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestAssignEndpoint(t *testing.T) {
	t.Run("new pair returns 201", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		f.accounts.EXPECT().GetByID(gomock.Any(), "patient-1").Return(patientAccount, nil)
		f.accounts.EXPECT().GetByID(gomock.Any(), "doctor-1").Return(doctorAccount, nil)
		f.repo.EXPECT().GetByPair(gomock.Any(), "patient-1", "doctor-1").Return(nil, nil)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
				stored := *a
				stored.Status = "active"
				stored.AssignedAt = time.Now()
				return &stored, nil
			})

		resp := f.request(t, fiber.MethodPost, "/api/v1/assignments/assign",
			`{"patient_id":"patient-1","doctor_id":"doctor-1","notes":"initial consult"}`, token)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "active", body["status"])
		assert.Equal(t, "admin-1", body["assigned_by"])
	})

	t.Run("existing pair returns 200", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		existing := &domain.Assignment{
			ID: "assignment-1", PatientID: "patient-1", DoctorID: "doctor-1", Status: "inactive",
		}

		f.accounts.EXPECT().GetByID(gomock.Any(), "patient-1").Return(patientAccount, nil)
		f.accounts.EXPECT().GetByID(gomock.Any(), "doctor-1").Return(doctorAccount, nil)
		f.repo.EXPECT().GetByPair(gomock.Any(), "patient-1", "doctor-1").Return(existing, nil)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
				reactivated := *existing
				reactivated.Status = "active"
				reactivated.Note = a.Note
				reactivated.AssignedBy = a.AssignedBy
				reactivated.AssignedAt = time.Now()
				return &reactivated, nil
			})

		resp := f.request(t, fiber.MethodPost, "/api/v1/assignments/assign",
			`{"patient_id":"patient-1","doctor_id":"doctor-1"}`, token)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown patient returns 404", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		f.accounts.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		resp := f.request(t, fiber.MethodPost, "/api/v1/assignments/assign",
			`{"patient_id":"ghost","doctor_id":"doctor-1"}`, token)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-admin returns 403", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, patientAccount)

		resp := f.request(t, fiber.MethodPost, "/api/v1/assignments/assign",
			`{"patient_id":"patient-1","doctor_id":"doctor-1"}`, token)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestListEndpoints(t *testing.T) {
	active := []domain.Assignment{
		{ID: "assignment-1", PatientID: "patient-1", DoctorID: "doctor-1", Status: "active"},
	}

	expectResolved := func(f *assignmentFixture) {
		f.accounts.EXPECT().GetByID(gomock.Any(), "patient-1").Return(patientAccount, nil)
		f.accounts.EXPECT().GetByID(gomock.Any(), "doctor-1").Return(doctorAccount, nil)
	}

	t.Run("patient lists own doctors", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, patientAccount)

		f.repo.EXPECT().ListActiveByPatient(gomock.Any(), "patient-1").Return(active, nil)
		expectResolved(f)

		resp := f.request(t, fiber.MethodGet, "/api/v1/assignments/my-doctors", "", token)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 1)
		doctor := body[0]["doctor"].(map[string]any)
		assert.Equal(t, "Dr. Silva", doctor["name"])
	})

	t.Run("doctor lists own patients", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, doctorAccount)

		f.repo.EXPECT().ListActiveByDoctor(gomock.Any(), "doctor-1").Return(active, nil)
		expectResolved(f)

		resp := f.request(t, fiber.MethodGet, "/api/v1/assignments/my-patients", "", token)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("doctor cannot use the patient listing", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, doctorAccount)

		resp := f.request(t, fiber.MethodGet, "/api/v1/assignments/my-doctors", "", token)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin lists everything", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		f.repo.EXPECT().ListAll(gomock.Any()).Return(active, nil)
		expectResolved(f)

		resp := f.request(t, fiber.MethodGet, "/api/v1/assignments/all", "", token)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestGetAssignmentEndpoint(t *testing.T) {
	assignment := &domain.Assignment{
		ID: "assignment-1", PatientID: "patient-1", DoctorID: "doctor-1", Status: "active",
	}

	t.Run("party to the assignment sees it", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, patientAccount)

		f.repo.EXPECT().GetByID(gomock.Any(), "assignment-1").Return(assignment, nil)
		f.accounts.EXPECT().GetByID(gomock.Any(), "patient-1").Return(patientAccount, nil)
		f.accounts.EXPECT().GetByID(gomock.Any(), "doctor-1").Return(doctorAccount, nil)

		resp := f.request(t, fiber.MethodGet, "/api/v1/assignments/assignment-1", "", token)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unrelated patient gets 403", func(t *testing.T) {
		f := newAssignmentFixture(t)
		other := &identitydomain.Account{ID: "patient-2", Role: "patient", Status: "verified"}
		token := f.authedAs(t, other)

		f.repo.EXPECT().GetByID(gomock.Any(), "assignment-1").Return(assignment, nil)

		resp := f.request(t, fiber.MethodGet, "/api/v1/assignments/assignment-1", "", token)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing assignment gets 404", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp := f.request(t, fiber.MethodGet, "/api/v1/assignments/missing", "", token)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateStatusEndpoint(t *testing.T) {
	t.Run("updates to a valid status", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		f.repo.EXPECT().UpdateStatus(gomock.Any(), "assignment-1", "completed").
			Return(&domain.Assignment{
				ID: "assignment-1", PatientID: "patient-1", DoctorID: "doctor-1", Status: "completed",
			}, nil)
		f.accounts.EXPECT().GetByID(gomock.Any(), "patient-1").Return(patientAccount, nil)
		f.accounts.EXPECT().GetByID(gomock.Any(), "doctor-1").Return(doctorAccount, nil)

		resp := f.request(t, fiber.MethodPut, "/api/v1/assignments/assignment-1/status",
			`{"status":"completed"}`, token)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		resp := f.request(t, fiber.MethodPut, "/api/v1/assignments/assignment-1/status",
			`{"status":"archived"}`, token)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteAssignmentEndpoint(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		f.repo.EXPECT().Delete(gomock.Any(), "assignment-1").Return(nil)

		resp := f.request(t, fiber.MethodDelete, "/api/v1/assignments/assignment-1", "", token)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing assignment gets 404", func(t *testing.T) {
		f := newAssignmentFixture(t)
		token := f.authedAs(t, adminAccount)

		f.repo.EXPECT().Delete(gomock.Any(), "missing").Return(apperrors.ErrAssignmentNotFound)

		resp := f.request(t, fiber.MethodDelete, "/api/v1/assignments/missing", "", token)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

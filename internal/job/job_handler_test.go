package job_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barangay-portal/internal/domain"
	"barangay-portal/internal/job"
	joberrors "barangay-portal/internal/job/errors"
	"barangay-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeJobService struct {
	job.Service

	CreateListingFn     func(ctx context.Context, caller domain.Caller, req job.CreateJobListingRequest) (job.JobListingResponse, error)
	ListListingsFn      func(ctx context.Context, filter job.ListingFilter, page, pageSize int) ([]job.JobListingResponse, int64, error)
	ApplyFn             func(ctx context.Context, caller domain.Caller, req job.ApplyRequest) (job.JobApplicationResponse, error)
	AcceptFn            func(ctx context.Context, caller domain.Caller, id string) (job.JobApplicationResponse, error)
	ScheduleInterviewFn func(ctx context.Context, caller domain.Caller, listingID string, req job.ScheduleInterviewRequest) (job.JobApplicationResponse, error)
}

func (f *fakeJobService) CreateListing(ctx context.Context, caller domain.Caller, req job.CreateJobListingRequest) (job.JobListingResponse, error) {
	return f.CreateListingFn(ctx, caller, req)
}
func (f *fakeJobService) ListListings(ctx context.Context, filter job.ListingFilter, page, pageSize int) ([]job.JobListingResponse, int64, error) {
	return f.ListListingsFn(ctx, filter, page, pageSize)
}
func (f *fakeJobService) Apply(ctx context.Context, caller domain.Caller, req job.ApplyRequest) (job.JobApplicationResponse, error) {
	return f.ApplyFn(ctx, caller, req)
}
func (f *fakeJobService) Accept(ctx context.Context, caller domain.Caller, id string) (job.JobApplicationResponse, error) {
	return f.AcceptFn(ctx, caller, id)
}
func (f *fakeJobService) ScheduleInterview(ctx context.Context, caller domain.Caller, listingID string, req job.ScheduleInterviewRequest) (job.JobApplicationResponse, error) {
	return f.ScheduleInterviewFn(ctx, caller, listingID, req)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

func newJSONContext(method, target, body string, caller *domain.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if caller != nil {
		middleware.SetCaller(c, *caller)
	}
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestJobHandler_CreateListing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := domain.Caller{ID: uuid.New(), Role: domain.RoleHR}

	t.Run("created", func(t *testing.T) {
		svc := &fakeJobService{
			CreateListingFn: func(ctx context.Context, got domain.Caller, req job.CreateJobListingRequest) (job.JobListingResponse, error) {
				assert.Equal(t, 2, req.NeededApplicants)
				return job.JobListingResponse{ID: uuid.NewString(), Title: req.Title, Status: job.ListingOpen}, nil
			},
		}
		h := job.NewHandler(svc, zap.NewNop())
		c, w := newJSONContext(http.MethodPost, "/job-listings",
			`{"title":"Cashier","company":"Mart","type":"full_time","description":"Counter","needed_applicants":2}`, &caller)

		h.CreateListing(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "success", decode(t, w).Status)
	})

	t.Run("needed applicants below one fails validation", func(t *testing.T) {
		h := job.NewHandler(&fakeJobService{}, zap.NewNop())
		c, w := newJSONContext(http.MethodPost, "/job-listings",
			`{"title":"Cashier","company":"Mart","type":"full_time","description":"Counter","needed_applicants":-1}`, &caller)

		h.CreateListing(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestJobHandler_ListListings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeJobService{
		ListListingsFn: func(ctx context.Context, filter job.ListingFilter, page, pageSize int) ([]job.JobListingResponse, int64, error) {
			assert.Equal(t, job.ListingOpen, filter.Status)
			return []job.JobListingResponse{{ID: "a"}}, 1, nil
		},
	}
	h := job.NewHandler(svc, zap.NewNop())
	c, w := newJSONContext(http.MethodGet, "/job-listings?status=open", "", nil)

	h.ListListings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.EqualValues(t, 1, env.Meta["total"])
}

func TestJobHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := domain.Caller{ID: uuid.New(), Role: domain.RoleResident}
	body := `{"job_listing_id":"` + uuid.NewString() + `"}`

	t.Run("duplicate is 422", func(t *testing.T) {
		svc := &fakeJobService{
			ApplyFn: func(ctx context.Context, caller domain.Caller, req job.ApplyRequest) (job.JobApplicationResponse, error) {
				return job.JobApplicationResponse{}, joberrors.ErrAlreadyApplied
			},
		}
		h := job.NewHandler(svc, zap.NewNop())
		c, w := newJSONContext(http.MethodPost, "/job-applications", body, &caller)

		h.Apply(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decode(t, w)
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, joberrors.ErrAlreadyApplied.Message, env.Message)
	})

	t.Run("listing id must be a uuid", func(t *testing.T) {
		h := job.NewHandler(&fakeJobService{}, zap.NewNop())
		c, w := newJSONContext(http.MethodPost, "/job-applications", `{"job_listing_id":"abc"}`, &caller)

		h.Apply(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := job.NewHandler(&fakeJobService{}, zap.NewNop())
		c, w := newJSONContext(http.MethodPost, "/job-applications", body, nil)

		h.Apply(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestJobHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := domain.Caller{ID: uuid.New(), Role: domain.RoleHR}
	appID := uuid.NewString()

	svc := &fakeJobService{
		AcceptFn: func(ctx context.Context, got domain.Caller, id string) (job.JobApplicationResponse, error) {
			assert.Equal(t, appID, id)
			return job.JobApplicationResponse{}, joberrors.ErrListingFilled
		},
	}
	h := job.NewHandler(svc, zap.NewNop())
	c, w := newJSONContext(http.MethodPost, "/job-applications/"+appID+"/accept", "", &caller)
	c.Params = gin.Params{{Key: "id", Value: appID}}

	h.Accept(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "listing already filled", decode(t, w).Message)
}

func TestJobHandler_ScheduleInterview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := domain.Caller{ID: uuid.New(), Role: domain.RoleHR}
	listingID := uuid.NewString()

	t.Run("ok", func(t *testing.T) {
		svc := &fakeJobService{
			ScheduleInterviewFn: func(ctx context.Context, got domain.Caller, lid string, req job.ScheduleInterviewRequest) (job.JobApplicationResponse, error) {
				assert.Equal(t, listingID, lid)
				assert.Equal(t, "2026-03-20", req.Date)
				return job.JobApplicationResponse{ID: req.ApplicationID}, nil
			},
		}
		h := job.NewHandler(svc, zap.NewNop())
		body := `{"application_id":"` + uuid.NewString() + `","date":"2026-03-20","time":"10:00","location":"Hall"}`
		c, w := newJSONContext(http.MethodPost, "/job-listings/"+listingID+"/interviews", body, &caller)
		c.Params = gin.Params{{Key: "id", Value: listingID}}

		h.ScheduleInterview(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("location required", func(t *testing.T) {
		h := job.NewHandler(&fakeJobService{}, zap.NewNop())
		body := `{"application_id":"` + uuid.NewString() + `","date":"2026-03-20","time":"10:00"}`
		c, w := newJSONContext(http.MethodPost, "/job-listings/"+listingID+"/interviews", body, &caller)

		h.ScheduleInterview(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

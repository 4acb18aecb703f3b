package router

import (
	"net/http"
	"testing"
	"time"

	"gorm.io/gorm"

	"go-jobportal-api/internal/domain"
	"go-jobportal-api/pkg/utils"
)

func createJob(t *testing.T, h http.Handler, employerID, body string) domain.Job {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/jobs?employer_id="+employerID, body)
	if w.Code != http.StatusOK {
		t.Fatalf("create job: expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	return decode[domain.Job](t, w)
}

// seedJob writes a job straight into the store, for states the API cannot
// produce (closed/draft jobs).
func seedJob(t *testing.T, db *gorm.DB, employerID, title, status string, postedAt time.Time) domain.Job {
	t.Helper()
	j := domain.Job{
		ID:           utils.NewID(),
		Title:        title,
		Company:      "Seeded Co",
		Location:     "Nowhere",
		JobType:      "full-time",
		Description:  "seeded",
		Requirements: []string{},
		Benefits:     []string{},
		EmployerID:   employerID,
		PostedAt:     postedAt,
		Status:       status,
	}
	if err := db.Create(&j).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return j
}

func TestCreateAndFetchJob(t *testing.T) {
	h, _ := newTestEnv(t)
	employer := registerUser(t, h, "boss@acme.com", "Boss", "employer")

	body := `{
		"title": "Go Engineer",
		"company": "Acme",
		"location": "New York",
		"job_type": "full-time",
		"salary_range": "$120k-$150k",
		"description": "Build backend services",
		"requirements": ["Go", "SQL"],
		"benefits": ["Health", "401k"]
	}`
	created := createJob(t, h, employer, body)

	if created.Status != "active" {
		t.Fatalf("status should default to active, got %q", created.Status)
	}
	if created.EmployerID != employer {
		t.Fatalf("employer_id: got %q want %q", created.EmployerID, employer)
	}
	if created.SalaryRange == nil || *created.SalaryRange != "$120k-$150k" {
		t.Fatalf("salary_range lost: %+v", created.SalaryRange)
	}
	if len(created.Requirements) != 2 || created.Requirements[1] != "SQL" {
		t.Fatalf("requirements lost: %v", created.Requirements)
	}

	w := doJSON(t, h, http.MethodGet, "/api/jobs/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("fetch: expected 200 got %d", w.Code)
	}
	fetched := decode[domain.Job](t, w)
	if fetched.Title != created.Title || fetched.Company != created.Company ||
		fetched.Location != created.Location || fetched.JobType != created.JobType ||
		fetched.Description != created.Description {
		t.Fatalf("fetch differs from creation:\n%+v\n%+v", fetched, created)
	}
	if len(fetched.Benefits) != 2 || fetched.Benefits[0] != "Health" {
		t.Fatalf("benefits did not round-trip: %v", fetched.Benefits)
	}
	if !fetched.PostedAt.Equal(created.PostedAt) {
		t.Fatalf("posted_at did not round-trip: %v vs %v", fetched.PostedAt, created.PostedAt)
	}
}

func TestCreateJobRequiresEmployerID(t *testing.T) {
	h, _ := newTestEnv(t)
	w := doJSON(t, h, http.MethodPost, "/api/jobs",
		`{"title":"x","company":"y","location":"z","job_type":"remote","description":"d"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestGetJobNotFound(t *testing.T) {
	h, _ := newTestEnv(t)
	if w := doJSON(t, h, http.MethodGet, "/api/jobs/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestListJobsFilters(t *testing.T) {
	h, db := newTestEnv(t)
	employer := registerUser(t, h, "boss@acme.com", "Boss", "employer")

	goJob := createJob(t, h, employer, `{"title":"Go Engineer","company":"Acme","location":"New York","job_type":"full-time","description":"Backend in Go"}`)
	createJob(t, h, employer, `{"title":"Designer","company":"Beta Corp","location":"Berlin","job_type":"part-time","description":"Visual design"}`)
	createJob(t, h, employer, `{"title":"SRE","company":"Acme","location":"Remote","job_type":"remote","description":"Keep it running"}`)
	seedJob(t, db, employer, "Closed Role", domain.JobStatusClosed, time.Now().UTC())
	seedJob(t, db, employer, "Draft Role", domain.JobStatusDraft, time.Now().UTC())

	// unfiltered: active only
	all := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs", ""))
	if len(all) != 3 {
		t.Fatalf("expected 3 active jobs, got %d", len(all))
	}
	for _, j := range all {
		if j.Status != domain.JobStatusActive {
			t.Fatalf("non-active job leaked into listing: %+v", j)
		}
	}
	for i := 1; i < len(all); i++ {
		if all[i].PostedAt.After(all[i-1].PostedAt) {
			t.Fatalf("listing not ordered by posted_at desc")
		}
	}

	// job_type is an exact match
	ft := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs?job_type=full-time", ""))
	if len(ft) != 1 || ft[0].ID != goJob.ID {
		t.Fatalf("job_type filter: %+v", ft)
	}

	// search is a case-insensitive substring over title/company/description
	for _, q := range []string{"go", "GO", "acme", "backend"} {
		res := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs?search="+q, ""))
		found := false
		for _, j := range res {
			if j.ID == goJob.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("search %q should match the Go job, got %+v", q, res)
		}
	}
	if res := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs?search=nonexistent", "")); len(res) != 0 {
		t.Fatalf("search miss should be empty, got %+v", res)
	}

	// location substring, case-insensitive
	if res := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs?location=ber", "")); len(res) != 1 || res[0].Location != "Berlin" {
		t.Fatalf("location filter: %+v", res)
	}

	// skip/limit page through
	if res := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs?limit=2", "")); len(res) != 2 {
		t.Fatalf("limit: expected 2 got %d", len(res))
	}
	if res := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs?skip=2&limit=2", "")); len(res) != 1 {
		t.Fatalf("skip: expected 1 got %d", len(res))
	}
}

func TestEmployerJobsIncludeAllStatuses(t *testing.T) {
	h, db := newTestEnv(t)
	employer := registerUser(t, h, "boss@acme.com", "Boss", "employer")
	other := registerUser(t, h, "other@beta.com", "Other", "employer")

	createJob(t, h, employer, `{"title":"Open Role","company":"Acme","location":"NY","job_type":"full-time","description":"d"}`)
	seedJob(t, db, employer, "Closed Role", domain.JobStatusClosed, time.Now().UTC())
	createJob(t, h, other, `{"title":"Elsewhere","company":"Beta","location":"B","job_type":"remote","description":"d"}`)

	res := decode[[]domain.Job](t, doJSON(t, h, http.MethodGet, "/api/jobs/employer/"+employer, ""))
	if len(res) != 2 {
		t.Fatalf("expected 2 jobs for employer, got %d", len(res))
	}
	for _, j := range res {
		if j.EmployerID != employer {
			t.Fatalf("foreign job in employer listing: %+v", j)
		}
	}
	for i := 1; i < len(res); i++ {
		if res[i].PostedAt.After(res[i-1].PostedAt) {
			t.Fatalf("employer listing not ordered by posted_at desc")
		}
	}
}

package router

import (
	"encoding/json"
	"net/http"
	"testing"

	"go-jobportal-api/internal/domain"
)

func TestApplyForJob(t *testing.T) {
	h, _ := newTestEnv(t)
	employer := registerUser(t, h, "boss@acme.com", "Boss", "employer")
	seeker := registerUser(t, h, "alice@mail.com", "Alice", "job_seeker")
	job := createJob(t, h, employer, `{"title":"Go Engineer","company":"Acme","location":"NY","job_type":"full-time","description":"d"}`)

	w := doJSON(t, h, http.MethodPost, "/api/applications?applicant_id="+seeker,
		`{"job_id":"`+job.ID+`","cover_letter":"I would love to work on this."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("apply: expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	app := decode[appOut](t, w)
	if app.Status != domain.ApplicationStatusPending {
		t.Fatalf("new application should be pending, got %q", app.Status)
	}
	if app.JobID != job.ID || app.ApplicantID != seeker {
		t.Fatalf("ids not recorded: %+v", app)
	}
	if app.CoverLetter == nil || *app.CoverLetter != "I would love to work on this." {
		t.Fatalf("cover letter lost: %+v", app.CoverLetter)
	}
	if app.JobTitle == nil || *app.JobTitle != "Go Engineer" {
		t.Fatalf("job_title not enriched: %+v", app.JobTitle)
	}
	if app.Company == nil || *app.Company != "Acme" {
		t.Fatalf("company not enriched: %+v", app.Company)
	}

	// second application for the same job is rejected
	w = doJSON(t, h, http.MethodPost, "/api/applications?applicant_id="+seeker,
		`{"job_id":"`+job.ID+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate apply: expected 400 got %d", w.Code)
	}
	if body := decode[map[string]string](t, w); body["error"] != "Already applied for this job" {
		t.Fatalf("duplicate apply message: %q", body["error"])
	}
}

func TestApplyRequiresApplicantID(t *testing.T) {
	h, _ := newTestEnv(t)
	w := doJSON(t, h, http.MethodPost, "/api/applications", `{"job_id":"whatever"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestUserApplicationsEnrichment(t *testing.T) {
	h, db := newTestEnv(t)
	employer := registerUser(t, h, "boss@acme.com", "Boss", "employer")
	seeker := registerUser(t, h, "alice@mail.com", "Alice", "job_seeker")

	j1 := createJob(t, h, employer, `{"title":"Go Engineer","company":"Acme","location":"NY","job_type":"full-time","description":"d"}`)
	j2 := createJob(t, h, employer, `{"title":"SRE","company":"Acme","location":"Remote","job_type":"remote","description":"d"}`)
	for _, j := range []domain.Job{j1, j2} {
		if w := doJSON(t, h, http.MethodPost, "/api/applications?applicant_id="+seeker, `{"job_id":"`+j.ID+`"}`); w.Code != http.StatusOK {
			t.Fatalf("apply to %s: %d", j.Title, w.Code)
		}
	}

	w := doJSON(t, h, http.MethodGet, "/api/applications/user/"+seeker, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	apps := decode[[]appOut](t, w)
	if len(apps) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(apps))
	}
	for i := 1; i < len(apps); i++ {
		if apps[i].AppliedAt.After(apps[i-1].AppliedAt) {
			t.Fatalf("applications not ordered by applied_at desc")
		}
	}
	for _, a := range apps {
		if a.JobTitle == nil || a.Company == nil {
			t.Fatalf("enrichment missing on %+v", a)
		}
	}

	// a deleted job degrades gracefully: the application is still listed,
	// just without the job fields
	if err := db.Delete(&domain.Job{}, "id = ?", j1.ID).Error; err != nil {
		t.Fatalf("delete job: %v", err)
	}
	var raw []map[string]json.RawMessage
	w = doJSON(t, h, http.MethodGet, "/api/applications/user/"+seeker, "")
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 applications after job deletion, got %d", len(raw))
	}
	for _, m := range raw {
		var jobID string
		if err := json.Unmarshal(m["job_id"], &jobID); err != nil {
			t.Fatalf("job_id: %v", err)
		}
		_, hasTitle := m["job_title"]
		if jobID == j1.ID && hasTitle {
			t.Fatalf("orphaned application should omit job_title")
		}
		if jobID == j2.ID && !hasTitle {
			t.Fatalf("live application should carry job_title")
		}
	}
}

func TestJobApplicationsEnrichment(t *testing.T) {
	h, _ := newTestEnv(t)
	employer := registerUser(t, h, "boss@acme.com", "Boss", "employer")
	alice := registerUser(t, h, "alice@mail.com", "Alice", "job_seeker")
	bob := registerUser(t, h, "bob@mail.com", "Bob", "job_seeker")
	job := createJob(t, h, employer, `{"title":"Go Engineer","company":"Acme","location":"NY","job_type":"full-time","description":"d"}`)

	for _, id := range []string{alice, bob} {
		if w := doJSON(t, h, http.MethodPost, "/api/applications?applicant_id="+id, `{"job_id":"`+job.ID+`"}`); w.Code != http.StatusOK {
			t.Fatalf("apply: %d", w.Code)
		}
	}

	w := doJSON(t, h, http.MethodGet, "/api/applications/job/"+job.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	apps := decode[[]appOut](t, w)
	if len(apps) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(apps))
	}
	names := map[string]bool{}
	for _, a := range apps {
		if a.ApplicantName == nil {
			t.Fatalf("applicant_name missing: %+v", a)
		}
		names[*a.ApplicantName] = true
		if a.JobTitle == nil || *a.JobTitle != "Go Engineer" {
			t.Fatalf("job_title missing: %+v", a)
		}
	}
	if !names["Alice"] || !names["Bob"] {
		t.Fatalf("applicant names: %v", names)
	}
}

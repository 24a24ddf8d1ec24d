package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"placement-hub/internal/domain/eligibility"
	"placement-hub/internal/domain/job"
	"placement-hub/internal/domain/profile"

	"github.com/google/uuid"
)

func eligibilityFixture(jobs []job.Job, cache JobCache) (*Eligibility, *fakeJobRepo, profile.Profile) {
	student := profile.Profile{ID: uuid.New(), Branch: "CSE", CGPA: 8.5}
	repo := &fakeJobRepo{items: jobs}
	uc := NewEligibilityUsecase(&fakeProfileRepo{items: []profile.Profile{student}}, NewActiveJobSource(repo, cache, quietLogger()), quietLogger())
	uc.now = func() time.Time { return time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC) }
	return uc, repo, student
}

func TestEligibility_FiltersAndKeepsStoreOrder(t *testing.T) {
	jobs := []job.Job{
		{ID: uuid.New(), Status: job.StatusActive, MinCGPA: 7.5, EligibleBranches: []string{"CSE", "ISE"}},
		{ID: uuid.New(), Status: job.StatusActive, MinCGPA: 9.0},
		{ID: uuid.New(), Status: job.StatusInactive},
		{ID: uuid.New(), Status: job.StatusActive, EligibleBranches: []string{"ECE"}},
		{ID: uuid.New(), Status: job.StatusActive},
	}
	uc, _, student := eligibilityFixture(jobs, nil)

	got, err := uc.EligibleJobs(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].ID != jobs[0].ID || got[1].ID != jobs[4].ID {
		t.Fatalf("unexpected eligible jobs: %+v", got)
	}
}

func TestEligibility_ReportNamesFailingGate(t *testing.T) {
	jobs := []job.Job{
		{ID: uuid.New(), Status: job.StatusActive, MinCGPA: 9.0},
		{ID: uuid.New(), Status: job.StatusActive, EligibleBranches: []string{"ECE"}},
		{ID: uuid.New(), Status: job.StatusActive},
	}
	uc, _, student := eligibilityFixture(jobs, nil)

	report, err := uc.Report(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.TotalJobs != 3 || report.EligibleCount != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if report.Jobs[0].Gate != eligibility.GateCGPA || report.Jobs[1].Gate != eligibility.GateBranch || !report.Jobs[2].Eligible {
		t.Fatalf("unexpected verdicts: %+v", report.Jobs)
	}
}

func TestEligibility_UnknownStudent(t *testing.T) {
	uc, _, _ := eligibilityFixture(nil, nil)
	_, err := uc.EligibleJobs(context.Background(), uuid.New())
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEligibility_NoActiveJobsGivesEmptyList(t *testing.T) {
	uc, _, student := eligibilityFixture(nil, nil)
	got, err := uc.EligibleJobs(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestEligibility_StoreErrorOnJobs(t *testing.T) {
	uc, repo, student := eligibilityFixture(nil, nil)
	repo.err = errBoom
	if _, err := uc.EligibleJobs(context.Background(), student.ID); !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestEligibility_ActiveJobsServedFromCache(t *testing.T) {
	jobs := []job.Job{{ID: uuid.New(), Status: job.StatusActive}}
	cache := newFakeCache()
	uc, repo, student := eligibilityFixture(jobs, cache)

	for i := 0; i < 3; i++ {
		got, err := uc.EligibleJobs(context.Background(), student.ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 job, got %d", len(got))
		}
	}
	if repo.findActive != 1 {
		t.Fatalf("expected one store read, got %d", repo.findActive)
	}
}

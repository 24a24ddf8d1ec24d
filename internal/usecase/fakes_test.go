package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"placement-hub/internal/domain/application"
	"placement-hub/internal/domain/job"
	"placement-hub/internal/domain/profile"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

type fakeProfileRepo struct {
	items   []profile.Profile
	err     error
	lookups int
	failFor map[string]error
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (f *fakeProfileRepo) FindByField(_ context.Context, field profile.Field, value string) (profile.Profile, error) {
	f.lookups++
	if err, ok := f.failFor[value]; ok {
		return profile.Profile{}, err
	}
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	for _, p := range f.items {
		switch field {
		case profile.FieldEmail:
			if strings.EqualFold(p.Email, value) {
				return p, nil
			}
		case profile.FieldUSN:
			if p.USN == value {
				return p, nil
			}
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

type fakeJobRepo struct {
	items      []job.Job
	err        error
	findActive int
	created    []job.Job
}

func (f *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	for _, j := range f.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (f *fakeJobRepo) FindActive(context.Context) ([]job.Job, error) {
	f.findActive++
	if f.err != nil {
		return nil, f.err
	}
	out := []job.Job{}
	for _, j := range f.items {
		if j.Status == job.StatusActive {
			out = append(out, j)
		}
	}
	return out, nil
}

// FindAll sorts a copy newest first, like the store does.
func (f *fakeJobRepo) FindAll(context.Context) ([]job.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]job.Job{}, f.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	f.items = append(f.items, j)
	f.created = append(f.created, j)
	return j, nil
}

// fakeApplicationRepo is an in-memory application store. failUpdate and
// failInsert make single rows fail by student id.
type fakeApplicationRepo struct {
	mu         sync.Mutex
	items      map[uuid.UUID]application.Application
	findErr    error
	failUpdate map[uuid.UUID]bool
	failInsert map[uuid.UUID]bool
	batchReads int
}

func newFakeApplicationRepo(seed ...application.Application) *fakeApplicationRepo {
	f := &fakeApplicationRepo{items: map[uuid.UUID]application.Application{}}
	for _, a := range seed {
		f.items[a.ID] = a
	}
	return f
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return application.Application{}, f.findErr
	}
	a, ok := f.items[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (f *fakeApplicationRepo) FindByJobAndStudents(_ context.Context, jobID uuid.UUID, studentIDs []uuid.UUID) ([]application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchReads++
	if f.findErr != nil {
		return nil, f.findErr
	}
	want := map[uuid.UUID]bool{}
	for _, id := range studentIDs {
		want[id] = true
	}
	var out []application.Application
	for _, a := range f.items {
		if a.JobID == jobID && want[a.StudentID] {
			out = append(out, a)
		}
	}
	sortApplications(out)
	return out, nil
}

func (f *fakeApplicationRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]application.Application, error) {
	return f.filter(func(a application.Application) bool { return a.StudentID == studentID })
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return f.filter(func(a application.Application) bool { return a.JobID == jobID })
}

func (f *fakeApplicationRepo) filter(keep func(application.Application) bool) ([]application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := []application.Application{}
	for _, a := range f.items {
		if keep(a) {
			out = append(out, a)
		}
	}
	sortApplications(out)
	return out, nil
}

func (f *fakeApplicationRepo) Insert(_ context.Context, a application.Application) (application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert[a.StudentID] {
		return application.Application{}, errBoom
	}
	f.items[a.ID] = a
	return a, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status, at time.Time) (application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	if f.failUpdate[a.StudentID] {
		return application.Application{}, errBoom
	}
	a.Status = status
	a.UpdatedAt = at
	f.items[id] = a
	return a, nil
}

func (f *fakeApplicationRepo) forJob(jobID uuid.UUID) []application.Application {
	out, _ := f.ListByJob(context.Background(), jobID)
	return out
}

func sortApplications(items []application.Application) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID.String() < items[j].ID.String() })
}

// fakeCache stores JSON like the redis cache does.
type fakeCache struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.deletes++
	delete(c.data, key)
	return nil
}

type recordingPublisher struct {
	events []application.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt application.Event) error {
	p.events = append(p.events, evt)
	return p.err
}

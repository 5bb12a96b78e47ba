package testutil

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
)

var ErrCacheDown = errors.New("cache unavailable")

// MemoryCache is a portfolio.Cache. Setting Down makes every call fail.
type MemoryCache struct {
	mu            sync.Mutex
	summary       *portfolio.Summary
	activeProfile *profile.Profile
	generation    int64
	Down          bool
	Invalidations int
}

func NewMemoryCache() *MemoryCache { return &MemoryCache{} }

func (c *MemoryCache) Generation(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return 0, ErrCacheDown
	}
	return c.generation, nil
}

func (c *MemoryCache) GetSummary(context.Context) (*portfolio.Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return nil, ErrCacheDown
	}
	if c.summary == nil {
		return nil, nil
	}
	s := *c.summary
	return &s, nil
}

func (c *MemoryCache) SetSummary(_ context.Context, gen int64, s *portfolio.Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return ErrCacheDown
	}
	if gen != c.generation {
		return nil
	}
	cp := *s
	c.summary = &cp
	return nil
}

func (c *MemoryCache) GetActiveProfile(context.Context) (*profile.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return nil, ErrCacheDown
	}
	if c.activeProfile == nil {
		return nil, nil
	}
	p := *c.activeProfile
	return &p, nil
}

func (c *MemoryCache) SetActiveProfile(_ context.Context, gen int64, p *profile.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return ErrCacheDown
	}
	if gen != c.generation {
		return nil
	}
	cp := *p
	c.activeProfile = &cp
	return nil
}

func (c *MemoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return ErrCacheDown
	}
	c.summary = nil
	c.activeProfile = nil
	c.generation++
	c.Invalidations++
	return nil
}

func (c *MemoryCache) Ping(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return ErrCacheDown
	}
	return nil
}

// RecordingPublisher keeps every published event. Set Err to make Publish fail.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []service.PortfolioEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, e service.PortfolioEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *RecordingPublisher) Events() []service.PortfolioEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]service.PortfolioEvent(nil), p.events...)
}

// HasEvent reports whether an event of type t was published.
func (p *RecordingPublisher) HasEvent(t service.EventType) bool {
	for _, e := range p.Events() {
		if e.EventType == t {
			return true
		}
	}
	return false
}

// FakeUploader returns https://cdn.test/<folder>/<publicID>.
type FakeUploader struct {
	mu       sync.Mutex
	Uploaded map[string][]byte
	deleted  []string
	Err      error
}

func (u *FakeUploader) Upload(_ context.Context, file io.Reader, folder string, publicID string) (string, error) {
	if u.Err != nil {
		return "", u.Err
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Uploaded == nil {
		u.Uploaded = make(map[string][]byte)
	}
	key := folder + "/" + publicID
	u.Uploaded[key] = body
	return "https://cdn.test/" + key, nil
}

func (u *FakeUploader) Delete(_ context.Context, publicID string) error {
	if u.Err != nil {
		return u.Err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deleted = append(u.deleted, publicID)
	delete(u.Uploaded, publicID)
	return nil
}

func (u *FakeUploader) Deleted() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.deleted...)
}

// Keys lists the stored public ids.
func (u *FakeUploader) Keys() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	keys := make([]string, 0, len(u.Uploaded))
	for k := range u.Uploaded {
		keys = append(keys, k)
	}
	return keys
}

// MockProfileRepo is a testify mock for failure injection.
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepo) FindActive(ctx context.Context) (*profile.Profile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) Activate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProfileRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

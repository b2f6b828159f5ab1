package service

import (
	"context"
	"encoding/json"
	"hr_console/internal/config"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakePlatform is an in-process platform API that records every call.
type fakePlatform struct {
	mu    sync.Mutex
	calls []string
	mux   *http.ServeMux
}

func newFakePlatform(t *testing.T) (*fakePlatform, *platform.Client) {
	t.Helper()
	f := &fakePlatform{mux: http.NewServeMux()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := platform.NewClient(config.PlatformConfig{BaseURL: srv.URL, CSRFToken: "test-token"},
		platform.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return f, client
}

func (f *fakePlatform) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, h)
}

// count returns how many calls started with prefix, e.g. "POST /api/".
func (f *fakePlatform) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakePlatform) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type memNotices struct {
	mu      sync.Mutex
	notices map[uint][]model.Notice
}

func (m *memNotices) Add(ctx context.Context, operatorID uint, n model.Notice, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.notices == nil {
		m.notices = map[uint][]model.Notice{}
	}
	m.notices[operatorID] = append(m.notices[operatorID], n)
	return nil
}

func (m *memNotices) List(ctx context.Context, operatorID uint, now time.Time) ([]model.Notice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Notice
	for _, n := range m.notices[operatorID] {
		if n.ExpiresAt.After(now) {
			out = append(out, n)
		}
	}
	return out, nil
}

type memAudit struct {
	mu      sync.Mutex
	entries []model.AuditEntry
}

func (m *memAudit) Create(entry *model.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memAudit) List(operatorID uint, page, limit int) ([]model.AuditEntry, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries, int64(len(m.entries)), nil
}

func (m *memAudit) outcomes() []model.AuditOutcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.AuditOutcome, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Outcome)
	}
	return out
}

type memDrafts struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memDrafts) Save(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = value
	return nil
}

func (m *memDrafts) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, util.ErrSelectionNotFound
	}
	return v, nil
}

func (m *memDrafts) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type testActivity struct {
	*Activity
	notices *memNotices
	audit   *memAudit
}

func newTestActivity() testActivity {
	n, a := &memNotices{}, &memAudit{}
	return testActivity{
		Activity: NewActivity(NewNoticeService(n, time.Minute), NewAuditService(a)),
		notices:  n,
		audit:    a,
	}
}

func operatorCtx(id uint) context.Context {
	return util.WithOperatorID(context.Background(), id)
}

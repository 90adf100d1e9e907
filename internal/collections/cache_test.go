package collections

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"rulesconsole/internal/api"
	"rulesconsole/internal/session"
)

// fakeBackend serves the three read endpoints with switchable payloads
type fakeBackend struct {
	mu          sync.Mutex
	usersBody   string
	devicesBody string
	rulesBody   string
	paths       []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		usersBody:   `{"status":true,"users":[{"_id":"u1","fullName":"Alice"}]}`,
		devicesBody: `{"status":true,"devices":[{"_id":"d1","title":"Camera-1"}]}`,
		rulesBody:   `{"status":true,"rules":[{"_id":"r1","userId":"u1","deviceId":"d1"}]}`,
	}
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		var body string
		switch {
		case r.URL.Path == "/users/all":
			body = f.usersBody
		case r.URL.Path == "/device/all":
			body = f.devicesBody
		default:
			body = f.rulesBody
		}
		f.mu.Unlock()
		w.Write([]byte(body))
	})
}

func (f *fakeBackend) requestedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func newTestCache(t *testing.T, backend *fakeBackend, sess *session.Session) (*Cache, func()) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	client := api.NewClient(server.URL, sess, time.Second)
	return NewCache(client, sess), server.Close
}

func TestLoadPopulatesAllThreeCollections(t *testing.T) {
	backend := newFakeBackend()
	cache, done := newTestCache(t, backend, &session.Session{Token: "tok", UserID: "u9", Role: "Admin"})
	defer done()

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	snap := cache.Snapshot()
	if len(snap.Users) != 1 || len(snap.Devices) != 1 || len(snap.Rules) != 1 {
		t.Fatalf("expected all collections populated, got %d/%d/%d",
			len(snap.Users), len(snap.Devices), len(snap.Rules))
	}
	if snap.Generation != 1 {
		t.Fatalf("expected generation 1, got %d", snap.Generation)
	}
}

func TestSingleFailureLeavesCacheUntouched(t *testing.T) {
	backend := newFakeBackend()
	cache, done := newTestCache(t, backend, &session.Session{Token: "tok", UserID: "u9", Role: "Admin"})
	defer done()

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	before := cache.Snapshot()

	// Exactly one endpoint reports failure on the next load
	backend.mu.Lock()
	backend.devicesBody = `{"status":false}`
	backend.usersBody = `{"status":true,"users":[{"_id":"u2","fullName":"Bob"}]}`
	backend.mu.Unlock()

	if err := cache.Load(context.Background()); err == nil {
		t.Fatal("expected load to fail")
	}

	after := cache.Snapshot()
	if after.Generation != before.Generation {
		t.Fatalf("generation moved on a failed load: %d -> %d", before.Generation, after.Generation)
	}
	if len(after.Users) != 1 || after.Users[0].ID != "u1" {
		t.Fatal("users were partially updated by a failed load")
	}
}

func TestRestrictedRoleUsesScopedRulesQuery(t *testing.T) {
	backend := newFakeBackend()
	cache, done := newTestCache(t, backend, &session.Session{Token: "tok", UserID: "u7", Role: session.RoleCustomer})
	defer done()

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	sawScoped := false
	for _, p := range backend.requestedPaths() {
		if p == "/rules/all" {
			t.Fatal("restricted role issued the unscoped rules query")
		}
		if p == "/rules/all/user/u7" {
			sawScoped = true
		}
	}
	if !sawScoped {
		t.Fatal("restricted role never issued the scoped rules query")
	}
}

func TestReloadReplacesWholesale(t *testing.T) {
	backend := newFakeBackend()
	cache, done := newTestCache(t, backend, &session.Session{Token: "tok", UserID: "u9", Role: "Admin"})
	defer done()

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}

	backend.mu.Lock()
	backend.rulesBody = `{"status":true,"rules":[{"_id":"r2"},{"_id":"r3"}]}`
	backend.mu.Unlock()

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}

	snap := cache.Snapshot()
	if len(snap.Rules) != 2 || snap.Rules[0].ID != "r2" {
		t.Fatal("stale rules survived the reload")
	}
	if snap.Generation != 2 {
		t.Fatalf("expected generation 2, got %d", snap.Generation)
	}
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"freehost/internal/domain"
	"freehost/internal/dto"
	"freehost/internal/idtoken"
	"freehost/internal/observability/metrics"
	"freehost/internal/service/impl"
	"freehost/internal/store"
	transport "freehost/internal/transport/http"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubPublisher resolves instantly so handler tests do not sit through the
// simulated upload delay.
type stubPublisher struct {
	result dto.PublishResult
	gotID  string
}

func (s *stubPublisher) Publish(ctx context.Context, siteID string) (*dto.PublishResult, error) {
	s.gotID = siteID
	r := s.result
	return &r, nil
}

func (s *stubPublisher) UploadDelay(fileCount int) time.Duration { return 0 }

// The collectors curry their service label at registration; the middleware
// depends on that, so register exactly once for the whole test binary.
var registerMetrics sync.Once

func newTestServer(t *testing.T) (*httptest.Server, *stubPublisher) {
	t.Helper()
	registerMetrics.Do(func() { metrics.MustRegister("freehost-test") })
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", domain.NewID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := store.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	st := store.New(db)

	tokens := idtoken.NewEphemeral("https://accounts.google.com")
	pub := &stubPublisher{result: dto.PublishResult{URL: "https://x.freehost.app", Provider: "local", Success: true}}

	router := transport.NewRouter(
		impl.NewAuthServiceImpl(st, tokens),
		impl.NewSiteServiceImpl(st),
		impl.NewFileServiceImpl(st),
		pub,
		nil,
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, pub
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestRegisterLoginFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", dto.RegisterRequest{Name: "Jean", Email: "jean@example.com", Password: "ignored"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	user := decode[domain.User](t, resp)
	if user.ID == "" || user.Email != "jean@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	resp = postJSON(t, srv.URL+"/v1/auth/login", dto.LoginRequest{Email: "jean@example.com"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	back := decode[domain.User](t, resp)
	if back.ID != user.ID {
		t.Fatalf("login returned %q, want %q", back.ID, user.ID)
	}

	resp, err := http.Get(srv.URL + "/v1/auth/me")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d", resp.StatusCode)
	}
	me := decode[domain.User](t, resp)
	if me.ID != user.ID {
		t.Fatalf("session user %q, want %q", me.ID, user.ID)
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/login", dto.LoginRequest{Email: "nobody@example.com"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestSiteLifecycleOverHTTP(t *testing.T) {
	srv, pub := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", dto.RegisterRequest{Name: "Marie", Email: "marie@example.com"})
	owner := decode[domain.User](t, resp)

	resp = postJSON(t, srv.URL+"/v1/sites", dto.CreateSiteRequest{UserID: owner.ID, Name: "Mon Portfolio"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create site status = %d", resp.StatusCode)
	}
	site := decode[domain.Site](t, resp)
	if site.Subdomain == "" {
		t.Fatalf("missing subdomain: %+v", site)
	}

	resp, err := http.Get(srv.URL + "/v1/sites/" + site.ID + "/files")
	if err != nil {
		t.Fatalf("files: %v", err)
	}
	files := decode[[]domain.FileObject](t, resp)
	if len(files) != 1 || files[0].Name != "index.html" {
		t.Fatalf("expected seeded index.html, got %+v", files)
	}

	resp = postJSON(t, srv.URL+"/v1/sites/"+site.ID+"/publish", struct{}{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("publish status = %d", resp.StatusCode)
	}
	result := decode[dto.PublishResult](t, resp)
	if !result.Success || pub.gotID != site.ID {
		t.Fatalf("publish routed wrong: %+v, got id %q", result, pub.gotID)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/v1/sites/"+site.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/v1/sites/" + site.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted site status = %d, want 404", resp.StatusCode)
	}
}

func TestUpdateStorageDriveGate(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", dto.RegisterRequest{Name: "Luc", Email: "luc@example.com"})
	owner := decode[domain.User](t, resp)
	resp = postJSON(t, srv.URL+"/v1/sites", dto.CreateSiteRequest{UserID: owner.ID, Name: "Blog"})
	site := decode[domain.Site](t, resp)

	raw, _ := json.Marshal(dto.UpdateStorageRequest{Provider: "google_drive"})
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/v1/sites/"+site.ID+"/storage", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put storage: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409 while not connected to Google", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/v1/auth/google-connection", dto.GoogleConnectionRequest{UserID: owner.ID, Connect: true})
	resp.Body.Close()

	req, _ = http.NewRequest(http.MethodPut, srv.URL+"/v1/sites/"+site.ID+"/storage", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put storage: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 once connected", resp.StatusCode)
	}
}

func TestCreateSiteValidationMapsTo400(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/sites", dto.CreateSiteRequest{UserID: "", Name: ""})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

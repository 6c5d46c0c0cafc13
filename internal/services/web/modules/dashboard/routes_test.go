package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/carbonledger/internal/emissions"
	module "github.com/louisbranch/carbonledger/internal/services/web/module"
	"github.com/louisbranch/carbonledger/internal/storage/memory"
)

func newTestEnv(t *testing.T, viewer module.Viewer) (*http.ServeMux, *memory.Store) {
	t.Helper()
	store := memory.New()
	deps := module.Dependencies{
		Emissions:     store,
		ResolveViewer: func(*http.Request) module.Viewer { return viewer },
		Now:           func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
	mux := http.NewServeMux()
	if err := New().Register(mux, deps); err != nil {
		t.Fatalf("register dashboard module: %v", err)
	}
	return mux, store
}

func signedInViewer() module.Viewer {
	return module.Viewer{UserID: 1, Email: "doctor@example.com", UserType: "hospital", SignedIn: true}
}

func TestDashboardRequiresSession(t *testing.T) {
	t.Parallel()

	mux, _ := newTestEnv(t, module.Viewer{})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/login" {
		t.Fatalf("location = %q, want /login", got)
	}
}

func TestDashboardRedirectsPendingViewerToIdentify(t *testing.T) {
	t.Parallel()

	viewer := module.Viewer{UserID: 2, Email: "new@example.com", Pending: true, SignedIn: true}
	mux, _ := newTestEnv(t, viewer)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/identify" {
		t.Fatalf("location = %q, want /identify", got)
	}
}

func TestDashboardShowsViewerTotalsOnly(t *testing.T) {
	t.Parallel()

	mux, store := newTestEnv(t, signedInViewer())
	ctx := context.Background()
	seed := []emissions.Record{
		{UserID: 1, Type: "co2", Amount: 5, Unit: "kg"},
		{UserID: 1, Type: "co2", Amount: 1, Unit: "tonnes"},
		{UserID: 1, Type: "ch4", Amount: 500, Unit: "grams"},
		{UserID: 9, Type: "co2", Amount: 999, Unit: "kg"},
	}
	for _, record := range seed {
		if _, err := store.AddEmission(ctx, record); err != nil {
			t.Fatalf("seed emission: %v", err)
		}
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	html := rr.Body.String()
	for _, marker := range []string{"1,005.0", "0.5", "doctor@example.com"} {
		if !strings.Contains(html, marker) {
			t.Fatalf("dashboard missing %q: %q", marker, html)
		}
	}
	if strings.Contains(html, "999") {
		t.Fatal("dashboard must not include another user's totals")
	}
}

func TestAddEmissionAppendsRecordAndRedirects(t *testing.T) {
	t.Parallel()

	mux, store := newTestEnv(t, signedInViewer())
	form := url.Values{"type": {"co2"}, "amount": {"2.5"}, "unit": {"tonnes"}}
	req := httptest.NewRequest(http.MethodPost, "/add_emission", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/dashboard" {
		t.Fatalf("location = %q, want /dashboard", got)
	}

	records, err := store.ListEmissions(context.Background())
	if err != nil {
		t.Fatalf("list emissions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	record := records[0]
	if record.UserID != 1 || record.Type != "co2" || record.Amount != 2.5 || record.Unit != "tonnes" {
		t.Fatalf("record = %+v", record)
	}
	if record.CreatedAt != time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) {
		t.Fatalf("created at = %v, want injected clock value", record.CreatedAt)
	}
}

func TestAddEmissionRejectsBadAmount(t *testing.T) {
	t.Parallel()

	mux, store := newTestEnv(t, signedInViewer())
	form := url.Values{"type": {"co2"}, "amount": {"lots"}, "unit": {"kg"}}
	req := httptest.NewRequest(http.MethodPost, "/add_emission", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rr.Body.String(), "amount must be a number") {
		t.Fatalf("expected validation message, got %q", rr.Body.String())
	}

	records, err := store.ListEmissions(context.Background())
	if err != nil {
		t.Fatalf("list emissions: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records = %d, want none", len(records))
	}
}

func TestAddEmissionRejectsMissingType(t *testing.T) {
	t.Parallel()

	mux, _ := newTestEnv(t, signedInViewer())
	form := url.Values{"type": {"  "}, "amount": {"5"}, "unit": {"kg"}}
	req := httptest.NewRequest(http.MethodPost, "/add_emission", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestAddEmissionGetIsMethodNotAllowed(t *testing.T) {
	t.Parallel()

	mux, _ := newTestEnv(t, signedInViewer())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/add_emission", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	memclock "github.com/Overland-East-Bay/name-sorter/internal/adapters/memory/clock"
	memnamelistrepo "github.com/Overland-East-Bay/name-sorter/internal/adapters/memory/namelistrepo"
	"github.com/Overland-East-Bay/name-sorter/internal/app/namelists"
	"github.com/Overland-East-Bay/name-sorter/internal/platform/metrics"
)

func newTestRouter(t *testing.T) (http.Handler, *Server) {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := namelists.NewService(memnamelistrepo.NewRepo(), clk, nil)
	api := NewServer(svc, metrics.New(), nil)
	return NewRouter(api), api
}

func do(t *testing.T, h http.Handler, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) (code string, hasRequestID bool) {
	t.Helper()
	var raw map[string]map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode error body %q: %v", rr.Body.String(), err)
	}
	code, _ = raw["error"]["code"].(string)
	_, hasRequestID = raw["error"]["requestId"]
	return code, hasRequestID
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)
	rr := do(t, h, http.MethodGet, "/healthz", "", nil)
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestSortNames_TextPlain(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)
	body := "Janet Parsons\r\nVaughn Lewis\n\nAdonis Julius Archer\n \nMarin Alvarez\n"
	rr := do(t, h, http.MethodPost, "/names/sort", "text/plain", []byte(body))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content-type=%q", ct)
	}
	want := "Marin Alvarez\nAdonis Julius Archer\nVaughn Lewis\nJanet Parsons\n"
	if rr.Body.String() != want {
		t.Fatalf("body=%q, want %q", rr.Body.String(), want)
	}

	mrr := do(t, h, http.MethodGet, "/metrics", "", nil)
	if !strings.Contains(mrr.Body.String(), `name_sorter_sort_requests_total{endpoint="sort"} 1`) {
		t.Fatalf("metrics missing sort request:\n%s", mrr.Body.String())
	}
}

func TestSortNames_EmptyBody(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)
	rr := do(t, h, http.MethodPost, "/names/sort", "text/plain", nil)
	if rr.Code != http.StatusOK || rr.Body.Len() != 0 {
		t.Fatalf("status=%d body=%q, want 200 and empty body", rr.Code, rr.Body.String())
	}
}

func TestSortNames_BodyTooLarge(t *testing.T) {
	t.Parallel()

	h, api := newTestRouter(t)
	api.MaxBodyBytes = 16
	rr := do(t, h, http.MethodPost, "/names/sort", "text/plain", []byte("Hunter Uriah Mathew Clarke\nLeo Gardner\n"))
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status=%d, want 413", rr.Code)
	}
	if code, _ := decodeError(t, rr); code != "PAYLOAD_TOO_LARGE" {
		t.Fatalf("code=%q", code)
	}
}

func TestNameLists_CreateGetList(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/name-lists", "application/json",
		[]byte(`{"names":["Janet Parsons","","Hunter Uriah Mathew Clarke","Leo Gardner"],"label":"  Trip   crew "}`))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rr.Code, rr.Body.String())
	}
	var created NameListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if label, err := created.NameList.Label.Get(); err != nil || label != "Trip crew" {
		t.Fatalf("label=%q err=%v", label, err)
	}
	var full []string
	for _, n := range created.NameList.Names {
		full = append(full, n.FullName)
	}
	if diff := cmp.Diff([]string{"Hunter Uriah Mathew Clarke", "Leo Gardner", "Janet Parsons"}, full); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if created.NameList.Names[0].MiddleNames != "Uriah Mathew" {
		t.Fatalf("middleNames=%q", created.NameList.Names[0].MiddleNames)
	}

	id := created.NameList.Id.String()
	rr = do(t, h, http.MethodGet, "/name-lists/"+id, "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get status=%d body=%s", rr.Code, rr.Body.String())
	}
	var got NameListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("get mismatch (-created +got):\n%s", diff)
	}

	rr = do(t, h, http.MethodGet, "/name-lists", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d body=%s", rr.Code, rr.Body.String())
	}
	var listed NameListsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.NameLists) != 1 || listed.NameLists[0].Id.String() != id {
		t.Fatalf("list=%+v", listed)
	}
}

func TestNameLists_CreateWithoutLabelReturnsNullLabel(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)
	rr := do(t, h, http.MethodPost, "/name-lists", "application/json", []byte(`{"names":["Leo Gardner"],"label":null}`))
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"label":null`) {
		t.Fatalf("body=%s, want null label", rr.Body.String())
	}
}

func TestNameLists_Errors(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t)

	cases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"blank names", http.MethodPost, "/name-lists", `{"names":["", "  "]}`, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"malformed json", http.MethodPost, "/name-lists", `{"names":`, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"bad id", http.MethodGet, "/name-lists/not-a-uuid", "", http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unknown id", http.MethodGet, "/name-lists/" + uuid.NewString(), "", http.StatusNotFound, "NAME_LIST_NOT_FOUND"},
	}
	for _, tc := range cases {
		rr := do(t, h, tc.method, tc.path, "application/json", []byte(tc.body))
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s: status=%d, want %d (body=%s)", tc.name, rr.Code, tc.wantStatus, rr.Body.String())
		}
		code, hasRequestID := decodeError(t, rr)
		if code != tc.wantCode {
			t.Fatalf("%s: code=%q, want %q", tc.name, code, tc.wantCode)
		}
		if !hasRequestID {
			t.Fatalf("%s: expected requestId in error body", tc.name)
		}
	}
}

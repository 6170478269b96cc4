package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/runloopai/rlctl/internal/pager"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "rk-test")
}

func TestClient_AuthHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(DevboxList{})
	})

	if _, err := c.ListDevboxes(context.Background(), DevboxListParams{}); err != nil {
		t.Fatalf("ListDevboxes failed: %v", err)
	}
	if gotAuth != "Bearer rk-test" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer rk-test")
	}
}

func TestListDevboxes_QueryParams(t *testing.T) {
	var gotQuery map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/devboxes" {
			t.Errorf("path = %q, want /v1/devboxes", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		json.NewEncoder(w).Encode(DevboxList{
			Devboxes:   []Devbox{{ID: "dbx_1", Status: DevboxRunning}},
			HasMore:    true,
			TotalCount: 41,
		})
	})

	list, err := c.ListDevboxes(context.Background(), DevboxListParams{
		Limit:         20,
		StartingAfter: "dbx_0",
		Status:        DevboxRunning,
	})
	if err != nil {
		t.Fatalf("ListDevboxes failed: %v", err)
	}

	if gotQuery["limit"] != "20" {
		t.Errorf("limit = %q, want 20", gotQuery["limit"])
	}
	if gotQuery["starting_after"] != "dbx_0" {
		t.Errorf("starting_after = %q, want dbx_0", gotQuery["starting_after"])
	}
	if gotQuery["status"] != DevboxRunning {
		t.Errorf("status = %q, want running", gotQuery["status"])
	}

	if len(list.Devboxes) != 1 || list.Devboxes[0].ID != "dbx_1" {
		t.Errorf("unexpected devboxes: %+v", list.Devboxes)
	}
	if !list.HasMore || list.TotalCount != 41 {
		t.Errorf("HasMore/TotalCount = %v/%d, want true/41", list.HasMore, list.TotalCount)
	}
}

func TestClient_ErrorResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "devbox not found"})
	})

	_, err := c.GetDevbox(context.Background(), "dbx_missing")
	if err == nil {
		t.Fatal("expected an error for status 404")
	}

	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *api.Error", err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("IsNotFound() = false, want true (status %d)", apiErr.Status)
	}
	if apiErr.Message != "devbox not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "devbox not found")
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", fmt.Errorf("boom"), false},
		{"api 404", &Error{Status: http.StatusNotFound}, true},
		{"api 500", &Error{Status: http.StatusInternalServerError}, false},
		{"wrapped 404", fmt.Errorf("get devbox: %w", &Error{Status: http.StatusNotFound}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestDevboxPageFunc(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("starting_after"); got != "dbx_2" {
			t.Errorf("starting_after = %q, want dbx_2", got)
		}
		if got := r.URL.Query().Get("status"); got != DevboxStopped {
			t.Errorf("status = %q, want stopped", got)
		}
		json.NewEncoder(w).Encode(DevboxList{
			Devboxes:   []Devbox{{ID: "dbx_3"}, {ID: "dbx_4"}},
			HasMore:    false,
			TotalCount: 4,
		})
	})

	fetch := c.DevboxPageFunc(DevboxStopped)
	page, err := fetch(context.Background(), pager.Request{Limit: 2, Cursor: "dbx_2"})
	if err != nil {
		t.Fatalf("page fetch failed: %v", err)
	}

	if len(page.Items) != 2 || page.Items[1].ID != "dbx_4" {
		t.Errorf("unexpected items: %+v", page.Items)
	}
	if page.HasMore {
		t.Error("HasMore = true, want false")
	}
	if page.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", page.TotalCount)
	}
}

func TestExecuteSync(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/v1/devboxes/dbx_1/execute_sync" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["command"] != "uname -a" {
			t.Errorf("command = %q, want %q", body["command"], "uname -a")
		}
		json.NewEncoder(w).Encode(ExecResult{Stdout: "Linux", ExitCode: 0})
	})

	res, err := c.ExecuteSync(context.Background(), "dbx_1", "uname -a")
	if err != nil {
		t.Fatalf("ExecuteSync failed: %v", err)
	}
	if res.Stdout != "Linux" {
		t.Errorf("Stdout = %q, want Linux", res.Stdout)
	}
}

func TestCreateSSHKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/devboxes/dbx_1/create_ssh_key" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(SSHKey{
			PrivateKey: "-----BEGIN KEY-----",
			URL:        "dbx_1.ssh.runloop.ai",
		})
	})

	key, err := c.CreateSSHKey(context.Background(), "dbx_1")
	if err != nil {
		t.Fatalf("CreateSSHKey failed: %v", err)
	}
	if key.URL != "dbx_1.ssh.runloop.ai" {
		t.Errorf("URL = %q", key.URL)
	}
}

func TestListObjects_PublicEndpoint(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(ObjectList{})
	})

	if _, err := c.ListObjects(context.Background(), ObjectListParams{Public: true}); err != nil {
		t.Fatalf("ListObjects failed: %v", err)
	}
	if gotPath != "/v1/objects/list_public" {
		t.Errorf("path = %q, want /v1/objects/list_public", gotPath)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"bad token"}`, "bad token"},
		{"error field", `{"error":"nope"}`, "nope"},
		{"plain text", "service unavailable", "service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("errorMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/config"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/database"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

var (
	testServerOnce sync.Once
	testEngine     *gin.Engine
)

// setupServer boots one server over an in-memory database shared by
// every test in this package. The migration seeds the default admin.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	testServerOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		database.SetPath(":memory:")
		cfg := &config.Config{}
		cfg.Auth.JWTSecret = "test-secret"
		cfg.Auth.TokenTTLHour = 1
		testEngine = NewHTTPServer(cfg).Engine()
	})
	return testEngine
}

// doJSON performs one request and decodes the response envelope.
func doJSON(t *testing.T, e *gin.Engine, method, path, token string, body any) (int, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, resp
}

// registerAndLogin creates an account over the API and returns a token.
func registerAndLogin(t *testing.T, e *gin.Engine, name, email string, role model.Role) (string, uint) {
	t.Helper()

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": name,
		"email":     email,
		"password":  "secret123",
		"role":      role,
	})
	if code != http.StatusOK {
		t.Fatalf("register %s: status %d, %s", email, code, resp.Message)
	}

	return login(t, e, email, "secret123")
}

func login(t *testing.T, e *gin.Engine, email, password string) (string, uint) {
	t.Helper()

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	if code != http.StatusOK {
		t.Fatalf("login %s: status %d, %s", email, code, resp.Message)
	}

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("remarshal login data: %v", err)
	}
	var lr LoginResponse
	if err := json.Unmarshal(raw, &lr); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return lr.AccessToken, lr.User.ID
}

func TestHealthEndpoint(t *testing.T) {
	e := setupServer(t)
	code, resp := doJSON(t, e, http.MethodGet, "/api/v1/health", "", nil)
	if code != http.StatusOK || resp.Code != 200 {
		t.Errorf("health: status %d, %+v", code, resp)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	e := setupServer(t)
	code, _ := doJSON(t, e, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"full_name": "Sneaky",
		"email":     "sneaky@test.local",
		"password":  "secret123",
		"role":      "admin",
	})
	if code != http.StatusForbidden {
		t.Errorf("admin self-registration status = %d, want 403", code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := setupServer(t)
	registerAndLogin(t, e, "Login Target", "login-target@test.local", model.RoleStudent)

	code, resp := doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "login-target@test.local",
		"password": "wrong",
	})
	if code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", code)
	}
	if resp.Message != "invalid email or password" {
		t.Errorf("message = %q, want the uniform credential error", resp.Message)
	}
}

func TestMessagingRequiresAuth(t *testing.T) {
	e := setupServer(t)
	code, _ := doJSON(t, e, http.MethodGet, "/api/v1/messages/conversations", "", nil)
	if code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", code)
	}
}

func TestMessagingFlow(t *testing.T) {
	e := setupServer(t)

	studentToken, studentID := registerAndLogin(t, e, "Msg Student", "msg-student@test.local", model.RoleStudent)
	adminToken, adminID := login(t, e, "admin@alumniconnect.local", "admin123")

	// Admin opens the thread to the student.
	code, resp := doJSON(t, e, http.MethodPost,
		fmt.Sprintf("/api/v1/messages/thread/%d", studentID), adminToken,
		gin.H{"body": "  welcome to the platform  "})
	if code != http.StatusOK {
		t.Fatalf("send: status %d, %s", code, resp.Message)
	}

	// A whitespace-only body is rejected before anything is stored.
	code, _ = doJSON(t, e, http.MethodPost,
		fmt.Sprintf("/api/v1/messages/thread/%d", studentID), adminToken,
		gin.H{"body": "   "})
	if code != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", code)
	}

	// The student sees one conversation with the unread message.
	code, resp = doJSON(t, e, http.MethodGet, "/api/v1/messages/conversations", studentToken, nil)
	if code != http.StatusOK {
		t.Fatalf("conversations: status %d, %s", code, resp.Message)
	}
	raw, _ := json.Marshal(resp.Data)
	var list struct {
		Conversations []struct {
			Contact struct {
				ID uint `json:"id"`
			} `json:"contact"`
			UnreadCount int64 `json:"unread_count"`
		} `json:"conversations"`
		FailedLookups int `json:"failed_lookups"`
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode conversations: %v", err)
	}
	if len(list.Conversations) != 1 {
		t.Fatalf("got %d conversations, want 1", len(list.Conversations))
	}
	if list.Conversations[0].Contact.ID != adminID || list.Conversations[0].UnreadCount != 1 {
		t.Errorf("conversation = %+v", list.Conversations[0])
	}
	if list.FailedLookups != 0 {
		t.Errorf("FailedLookups = %d, want 0", list.FailedLookups)
	}

	// The thread shows the trimmed body.
	code, resp = doJSON(t, e, http.MethodGet,
		fmt.Sprintf("/api/v1/messages/thread/%d", adminID), studentToken, nil)
	if code != http.StatusOK {
		t.Fatalf("thread: status %d, %s", code, resp.Message)
	}
	raw, _ = json.Marshal(resp.Data)
	var thread struct {
		Items []model.Message `json:"items"`
		Total int64           `json:"total"`
	}
	if err := json.Unmarshal(raw, &thread); err != nil {
		t.Fatalf("decode thread: %v", err)
	}
	if thread.Total != 1 || thread.Items[0].Body != "welcome to the platform" {
		t.Errorf("thread = %+v", thread)
	}

	// Marking read reports one row, then zero on repeat.
	code, resp = doJSON(t, e, http.MethodPost,
		fmt.Sprintf("/api/v1/messages/thread/%d/read", adminID), studentToken, nil)
	if code != http.StatusOK {
		t.Fatalf("mark read: status %d, %s", code, resp.Message)
	}
	raw, _ = json.Marshal(resp.Data)
	var marked struct {
		MarkedRead int64 `json:"marked_read"`
	}
	if err := json.Unmarshal(raw, &marked); err != nil {
		t.Fatalf("decode mark read: %v", err)
	}
	if marked.MarkedRead != 1 {
		t.Errorf("marked_read = %d, want 1", marked.MarkedRead)
	}

	code, resp = doJSON(t, e, http.MethodPost,
		fmt.Sprintf("/api/v1/messages/thread/%d/read", adminID), studentToken, nil)
	raw, _ = json.Marshal(resp.Data)
	marked.MarkedRead = -1
	if err := json.Unmarshal(raw, &marked); err != nil {
		t.Fatalf("decode second mark read: %v", err)
	}
	if code != http.StatusOK || marked.MarkedRead != 0 {
		t.Errorf("second mark read = %d (status %d), want 0", marked.MarkedRead, code)
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	e := setupServer(t)
	studentToken, _ := registerAndLogin(t, e, "Plain Student", "plain-student@test.local", model.RoleStudent)

	code, _ := doJSON(t, e, http.MethodGet, "/api/v1/admin/users", studentToken, nil)
	if code != http.StatusForbidden {
		t.Errorf("student on admin route status = %d, want 403", code)
	}

	adminToken, _ := login(t, e, "admin@alumniconnect.local", "admin123")
	code, _ = doJSON(t, e, http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	if code != http.StatusOK {
		t.Errorf("admin on admin route status = %d, want 200", code)
	}
}

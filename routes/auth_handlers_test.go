package routes_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/navya24shree/Campus-Event-Management-System/models"
)

func TestSignupAndLogin(t *testing.T) {
	d := setupServer(t)

	w := doReq(d.s, http.MethodPost, "/api/auth/register",
		`{"name":"Asha","email":"asha@campus.edu","password":"pw"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("signup got %d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		UserID int64 `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.UserID == 0 {
		t.Fatalf("expect userId in response, got %s", w.Body.String())
	}

	w = doReq(d.s, http.MethodPost, "/api/auth/login",
		`{"email":"asha@campus.edu","password":"pw"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login got %d body=%s", w.Code, w.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if loginResp.Token == "" {
		t.Fatalf("empty token")
	}
	if loginResp.User.Role != models.RoleStudent {
		t.Fatalf("signup should yield student role, got %q", loginResp.User.Role)
	}
}

func TestSignup_DuplicateEmail_400(t *testing.T) {
	d := setupServer(t)
	d.ur.users["taken@campus.edu"] = models.User{ID: 1, Email: "taken@campus.edu", Password: "x", Role: models.RoleStudent}

	w := doReq(d.s, http.MethodPost, "/api/auth/register",
		`{"name":"B","email":"taken@campus.edu","password":"pw"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSignup_MissingFields_400(t *testing.T) {
	d := setupServer(t)

	w := doReq(d.s, http.MethodPost, "/api/auth/register", `{"email":"x@campus.edu"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestLogin_BadPassword_401(t *testing.T) {
	d := setupServer(t)
	d.ur.users["a@campus.edu"] = models.User{ID: 1, Email: "a@campus.edu", Password: "right", Role: models.RoleStudent}

	w := doReq(d.s, http.MethodPost, "/api/auth/login",
		`{"email":"a@campus.edu","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d body=%s", w.Code, w.Body.String())
	}
}

// Bootstrap admin flow: login carries the admin role, which unlocks event
// creation; a student token must get 403 on the same request.
func TestLogin_AdminRole_UnlocksEventCreate(t *testing.T) {
	d := setupServer(t)
	d.ur.users["admin@campus.edu"] = models.User{
		ID: 1, Name: "Admin", Email: "admin@campus.edu", Password: "admin123", Role: models.RoleAdmin,
	}

	w := doReq(d.s, http.MethodPost, "/api/auth/login",
		`{"email":"admin@campus.edu","password":"admin123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("admin login got %d body=%s", w.Code, w.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if loginResp.User.Role != models.RoleAdmin {
		t.Fatalf("want role admin, got %q", loginResp.User.Role)
	}

	body := `{"name":"Tech Summit","club_name":"CS Club","date":"2026-01-10","time":"10:00:00","venue":"Auditorium"}`
	w = doReq(d.s, http.MethodPost, "/api/events", body, loginResp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("admin create event got %d body=%s", w.Code, w.Body.String())
	}

	studentToken := authToken(t, 2, "s@campus.edu", models.RoleStudent)
	w = doReq(d.s, http.MethodPost, "/api/events", body, studentToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("student create event want 403, got %d", w.Code)
	}
}

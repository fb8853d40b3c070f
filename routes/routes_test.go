package routes_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/navya24shree/Campus-Event-Management-System/models"
	"github.com/navya24shree/Campus-Event-Management-System/routes"
	"github.com/navya24shree/Campus-Event-Management-System/utils"
)

type serverDeps struct {
	s  *gin.Engine
	ur *mockUserRepo
	er *mockEventRepo
	rr *mockRegRepo
	fr *mockFeedbackRepo
}

func setupServer(t *testing.T) serverDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	t.Cleanup(func() { mr.Close() })
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	inv := utils.NewCacheInvalidator(rdb)

	ur := &mockUserRepo{users: map[string]models.User{}}
	er := &mockEventRepo{items: map[int64]models.Event{}}
	rr := &mockRegRepo{events: er}
	fr := &mockFeedbackRepo{events: er}
	er.regs = rr
	er.fb = fr

	s := gin.New()
	routes.RegisterRoutes(s, ur, er, rr, fr, rdb, inv)
	return serverDeps{s: s, ur: ur, er: er, rr: rr, fr: fr}
}

func authToken(t *testing.T, uid int64, email, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(uid, email, role)
	if err != nil {
		t.Fatalf("gen token: %v", err)
	}
	return token
}

func doReq(s *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	s.ServeHTTP(w, req)
	return w
}

func seedEvent(d serverDeps, e models.Event) models.Event {
	_ = d.er.Create(&e)
	return e
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateCommentRequiresAuth(t *testing.T) {
	gdb := openTestDB(t)
	blog := seedBlog(t, gdb, "未登录评论")

	router := newTestRouter(newTestAPI(gdb))

	body := strings.NewReader(`{"content":"你好"}`)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/blogs/%d/comments", blog.ID), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCreateAndListComments(t *testing.T) {
	gdb := openTestDB(t)
	user := seedUser(t, gdb, "judy", "user")
	blog := seedBlog(t, gdb, "评论接口")

	router := newTestRouter(newTestAPI(gdb))
	cookie := loginSession(t, router, user.ID, user.Username, user.Role)

	body := strings.NewReader(`{"content":"写得不错"}`)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/blogs/%d/comments", blog.ID), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/blogs/%d/comments", blog.ID), nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listRec.Code)
	}

	var payload struct {
		Comments []struct {
			Username string `json:"username"`
			Content  string `json:"content"`
		} `json:"comments"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(payload.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(payload.Comments))
	}
	if payload.Comments[0].Username != "judy" || payload.Comments[0].Content != "写得不错" {
		t.Fatalf("unexpected comment payload: %+v", payload.Comments[0])
	}
}

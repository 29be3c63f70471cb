package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postReaction(router http.Handler, blogID uint, cookie, reactionType string) *httptest.ResponseRecorder {
	body := strings.NewReader(fmt.Sprintf(`{"reaction_type":%q}`, reactionType))
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/blogs/%d/reactions", blogID), body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload.Status
}

func TestToggleReactionRequiresAuth(t *testing.T) {
	gdb := openTestDB(t)
	blog := seedBlog(t, gdb, "未登录表态")

	router := newTestRouter(newTestAPI(gdb))

	if rec := postReaction(router, blog.ID, "", "like"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestToggleReactionCycle(t *testing.T) {
	gdb := openTestDB(t)
	user := seedUser(t, gdb, "ivan", "user")
	blog := seedBlog(t, gdb, "表态接口")

	router := newTestRouter(newTestAPI(gdb))
	cookie := loginSession(t, router, user.ID, user.Username, user.Role)

	rec := postReaction(router, blog.ID, cookie, "like")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if status := decodeStatus(t, rec); status != "added" {
		t.Fatalf("expected added, got %q", status)
	}

	rec = postReaction(router, blog.ID, cookie, "love")
	if status := decodeStatus(t, rec); status != "updated" {
		t.Fatalf("expected updated, got %q", status)
	}

	rec = postReaction(router, blog.ID, cookie, "love")
	if status := decodeStatus(t, rec); status != "removed" {
		t.Fatalf("expected removed, got %q", status)
	}
}

func TestReactionSummaryEndpoint(t *testing.T) {
	gdb := openTestDB(t)
	alice := seedUser(t, gdb, "alice", "user")
	bob := seedUser(t, gdb, "bob", "user")
	blog := seedBlog(t, gdb, "表态汇总")

	router := newTestRouter(newTestAPI(gdb))

	for _, u := range []struct {
		id           uint
		username     string
		reactionType string
	}{
		{alice.ID, alice.Username, "like"},
		{bob.ID, bob.Username, "like"},
	} {
		cookie := loginSession(t, router, u.id, u.username, "user")
		if rec := postReaction(router, blog.ID, cookie, u.reactionType); rec.Code != http.StatusOK {
			t.Fatalf("toggle failed with %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/blogs/%d/reactions", blog.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Summary map[string]int64 `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Summary["like"] != 2 {
		t.Fatalf("expected 2 likes, got %+v", payload.Summary)
	}
}

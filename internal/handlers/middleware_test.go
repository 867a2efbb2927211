package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studentregistry/internal/models"
	"studentregistry/internal/policy"
	"studentregistry/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service, action policy.Action) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.authMiddleware, h.requireAction(action), func(c *gin.Context) {
		claims := currentClaims(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "username": claims.Username, "role": claims.Role})
	})
	return r
}

func TestAuthMiddleware_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name   string
		header string
		want   want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{code: http.StatusUnauthorized, errMsg: msgMissingAuthHeader},
		},
		{
			name:   "invalid scheme",
			header: "Token abc",
			want:   want{code: http.StatusUnauthorized, errMsg: msgBadAuthHeader},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			want:   want{code: http.StatusUnauthorized, errMsg: msgBadAuthHeader},
		},
		{
			name:   "expired/invalid token",
			header: "Bearer expired",
			want:   want{code: http.StatusUnauthorized, errMsg: msgBadToken},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseClaims: claimsFor(models.RoleAdmin)}
			if tc.name == "expired/invalid token" {
				auth.parseErr = errors.New("expired")
			}
			s := &service.Service{Authorization: auth}
			r := newMiddlewareOnlyRouter(s, policy.ActionListStudents)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}

			var out struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Message != tc.want.errMsg {
				t.Fatalf("message: got %q, want %q", out.Message, tc.want.errMsg)
			}
		})
	}
}

func TestAuthMiddleware_SuccessSetsClaims(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 123, Username: "alice", Role: models.RoleTeacher}}
	s := &service.Service{Authorization: auth}
	r := newMiddlewareOnlyRouter(s, policy.ActionListStudents)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header = authHeader("good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK       bool   `json:"ok"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.Username != "alice" || resp.Role != "teacher" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q, want %q", auth.lastParseToken, "good-token")
	}
}

func TestRequireAction_DeniesByPolicy(t *testing.T) {
	cases := []struct {
		name   string
		role   models.Role
		action policy.Action
		want   int
	}{
		{"student cannot create", models.RoleStudent, policy.ActionCreateStudent, http.StatusForbidden},
		{"teacher cannot delete", models.RoleTeacher, policy.ActionDeleteStudent, http.StatusForbidden},
		{"student cannot delete", models.RoleStudent, policy.ActionDeleteStudent, http.StatusForbidden},
		{"admin can delete", models.RoleAdmin, policy.ActionDeleteStudent, http.StatusOK},
		{"student can list", models.RoleStudent, policy.ActionListStudents, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseClaims: claimsFor(tc.role)}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth}, tc.action)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			req.Header = authHeader("tok")
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusForbidden {
				var out struct {
					Message string `json:"message"`
				}
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out.Message != msgForbidden {
					t.Fatalf("message: got %q, want %q", out.Message, msgForbidden)
				}
			}
		})
	}
}

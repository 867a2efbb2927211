package handlers

import (
	"context"
	"net/http"
	"time"

	"studentregistry/internal/models"
	"studentregistry/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	loginToken  string
	loginRole   models.Role
	loginErr    error
	parseClaims *service.Claims
	parseErr    error

	lastRegisterUsername string
	lastRegisterRole     string
	lastLoginUsername    string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(username, password, role string) (int, error) {
	m.lastRegisterUsername = username
	m.lastRegisterRole = role
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(username, password string) (string, models.Role, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginRole, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}

type mockStudents struct {
	listResp  []models.Student
	listErr   error
	getResp   models.Student
	getErr    error
	createID  int
	createErr error
	updateErr error
	deleteErr error

	lastActor  string
	lastID     int
	lastInput  service.StudentInput
	createReqs int
	updateReqs int
	deleteReqs int
}

func (m *mockStudents) List(ctx context.Context) ([]models.Student, error) {
	return m.listResp, m.listErr
}

func (m *mockStudents) Get(ctx context.Context, id int) (models.Student, error) {
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *mockStudents) Create(ctx context.Context, actor string, in service.StudentInput) (int, error) {
	m.createReqs++
	m.lastActor = actor
	m.lastInput = in
	return m.createID, m.createErr
}

func (m *mockStudents) Update(ctx context.Context, actor string, id int, in service.StudentInput) error {
	m.updateReqs++
	m.lastActor = actor
	m.lastID = id
	m.lastInput = in
	return m.updateErr
}

func (m *mockStudents) Delete(ctx context.Context, actor string, id int) error {
	m.deleteReqs++
	m.lastActor = actor
	m.lastID = id
	return m.deleteErr
}

type mockAuditLog struct {
	resp       []models.AuditEvent
	err        error
	lastFilter service.AuditFilter
}

func (m *mockAuditLog) List(ctx context.Context, f service.AuditFilter) ([]models.AuditEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockRetention struct{}

func (m *mockRetention) Run(ctx context.Context, tick time.Duration) {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// claimsFor builds a parse result for the given role, as authMiddleware
// would receive it from a valid token.
func claimsFor(role models.Role) *service.Claims {
	return &service.Claims{UserID: 1, Username: "tester", Role: role}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

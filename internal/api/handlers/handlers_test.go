package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/api/routes"
	"empoweryouth-api/internal/auth"
	"empoweryouth-api/internal/chat"
	"empoweryouth-api/internal/config"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
)

// testServer wires the full echo stack against the in-memory store.
type testServer struct {
	echo  *echo.Echo
	store *store.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.ReadTimeout = 30 * time.Second
	cfg.Chat.RatePerMinute = 600
	cfg.Chat.Burst = 100

	st := store.NewMemoryStore()
	tokens := auth.NewTokenService("test-secret", 7*24*time.Hour)
	responder := chat.NewResponder(false)
	limiter := chat.NewRateLimiter(cfg.Chat.RatePerMinute, cfg.Chat.Burst)
	t.Cleanup(limiter.Stop)

	e := echo.New()
	routes.SetupRoutes(e, cfg, st, tokens, responder, nil, limiter)

	return &testServer{echo: e, store: st}
}

func (ts *testServer) request(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func (ts *testServer) register(t *testing.T, email string) (userID, token string) {
	t.Helper()

	body := `{"name":"Asha","email":"` + email + `","phone":"9999999999","password":"secret"}`
	rec := ts.request(t, http.MethodPost, "/auth/register", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[models.AuthResponse](t, rec)
	if resp.User == nil || resp.User.ID == "" || resp.Token == "" {
		t.Fatalf("register response missing user or token: %s", rec.Body.String())
	}
	return resp.User.ID, resp.Token
}

func TestRootIsUnauthenticated(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / returned %d", rec.Code)
	}

	resp := decode[models.RootResponse](t, rec)
	if !strings.Contains(resp.Message, "running") {
		t.Errorf("unexpected liveness message %q", resp.Message)
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		rec := ts.request(t, http.MethodGet, path, "", "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s returned %d", path, rec.Code)
		}
	}
}

func TestChatRateLimitExceeded(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.ReadTimeout = 30 * time.Second

	st := store.NewMemoryStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	responder := chat.NewResponder(false)
	limiter := chat.NewRateLimiter(1, 2)
	t.Cleanup(limiter.Stop)

	e := echo.New()
	routes.SetupRoutes(e, cfg, st, tokens, responder, nil, limiter)
	ts := &testServer{echo: e, store: st}

	_, token := ts.register(t, "limited@example.com")

	var limited bool
	for i := 0; i < 5; i++ {
		rec := ts.request(t, http.MethodPost, "/chat", token, `{"message":"hi"}`)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			resp := decode[models.ErrorResponse](t, rec)
			if resp.Error != "Too many chat requests" {
				t.Errorf("error = %q", resp.Error)
			}
			break
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("chat returned %d before the limit: %s", rec.Code, rec.Body.String())
		}
	}
	if !limited {
		t.Error("burst of 2 never produced a 429 within 5 requests")
	}
}

func TestRegisterThenMeRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	userID, token := ts.register(t, "asha@example.com")

	rec := ts.request(t, http.MethodGet, "/auth/me", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /auth/me returned %d: %s", rec.Code, rec.Body.String())
	}

	user := decode[models.User](t, rec)
	if user.ID != userID {
		t.Errorf("me returned id %q, want %q", user.ID, userID)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("me returned email %q", user.Email)
	}
	if user.AssessmentCompleted {
		t.Error("new user has assessmentCompleted set")
	}
}

func TestRegisterResponseCarriesNoPassword(t *testing.T) {
	ts := newTestServer(t)

	body := `{"name":"Asha","email":"a@example.com","phone":"9","password":"secret"}`
	rec := ts.request(t, http.MethodPost, "/auth/register", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("register returned %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") || strings.Contains(rec.Body.String(), "password") {
		t.Errorf("register response leaks credential material: %s", rec.Body.String())
	}
}

func TestRegisterMissingFields(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"name":"A","email":"x@example.com","phone":"9"}`},
		{"missing email", `{"name":"A","phone":"9","password":"p"}`},
		{"missing name", `{"email":"x@example.com","phone":"9","password":"p"}`},
		{"missing phone", `{"name":"A","email":"x@example.com","password":"p"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.request(t, http.MethodPost, "/auth/register", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("register returned %d, want 400", rec.Code)
			}
			resp := decode[models.ErrorResponse](t, rec)
			if resp.Error == "" {
				t.Error("error body missing error field")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)

	ts.register(t, "dup@example.com")

	// Second attempt fails regardless of the other field values
	body := `{"name":"Other","email":"dup@example.com","phone":"1","password":"x"}`
	rec := ts.request(t, http.MethodPost, "/auth/register", "", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register returned %d, want 400", rec.Code)
	}

	resp := decode[models.ErrorResponse](t, rec)
	if resp.Error != "User already exists" {
		t.Errorf("error = %q, want %q", resp.Error, "User already exists")
	}
}

func TestProtectedRoutesRejectWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/assessment/submit"},
		{http.MethodGet, "/dashboard"},
		{http.MethodPost, "/chat"},
		{http.MethodGet, "/jobs"},
		{http.MethodGet, "/courses"},
		{http.MethodPost, "/apply"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			before := ts.store.Ops()

			rec := ts.request(t, route.method, route.path, "", "")
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("returned %d, want 401", rec.Code)
			}

			// No store access may happen on unauthenticated attempts
			if after := ts.store.Ops(); after != before {
				t.Errorf("store was accessed %d times during rejected request", after-before)
			}
		})
	}
}

func TestProtectedRoutesRejectInvalidToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/dashboard", "not-a-valid-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("returned %d, want 401", rec.Code)
	}

	resp := decode[models.ErrorResponse](t, rec)
	if resp.Error != "Invalid token" {
		t.Errorf("error = %q, want %q", resp.Error, "Invalid token")
	}
}

func TestMeReturns404ForDeletedUser(t *testing.T) {
	ts := newTestServer(t)

	// A valid token whose user id has no backing record
	tokens := auth.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue("ghost-user")
	if err != nil {
		t.Fatal(err)
	}

	rec := ts.request(t, http.MethodGet, "/auth/me", token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("returned %d, want 404", rec.Code)
	}
}

func TestAssessmentSubmitDerivesAndReplacesSkills(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "skills@example.com")

	rec := ts.request(t, http.MethodPost, "/assessment/submit", token, `{"skills":["Programming"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit returned %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[models.AssessmentResponse](t, rec)
	if !resp.Success {
		t.Error("success flag not set")
	}
	want := []models.Skill{{Name: "JavaScript", Level: 3}, {Name: "Python", Level: 2}}
	if len(resp.SkillVector) != len(want) {
		t.Fatalf("skill vector = %v, want %v", resp.SkillVector, want)
	}
	for i := range want {
		if resp.SkillVector[i] != want[i] {
			t.Errorf("skill[%d] = %v, want %v", i, resp.SkillVector[i], want[i])
		}
	}

	// Second submission fully replaces the first set
	rec = ts.request(t, http.MethodPost, "/assessment/submit", token, `{"skills":["Sales"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second submit returned %d", rec.Code)
	}

	recMe := ts.request(t, http.MethodGet, "/dashboard", token, "")
	dashboard := decode[models.DashboardResponse](t, recMe)
	if len(dashboard.Skills) != 2 {
		t.Fatalf("dashboard skills = %v, want exactly the second submission", dashboard.Skills)
	}
	if dashboard.Skills[0].Name != "Sales" || dashboard.Skills[1].Name != "Customer Service" {
		t.Errorf("dashboard skills = %v, want Sales/Customer Service", dashboard.Skills)
	}
}

func TestAssessmentMarksUserComplete(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "complete@example.com")

	ts.request(t, http.MethodPost, "/assessment/submit", token, `{}`)

	rec := ts.request(t, http.MethodGet, "/auth/me", token, "")
	user := decode[models.User](t, rec)
	if !user.AssessmentCompleted {
		t.Error("assessmentCompleted not set after submission")
	}
}

func TestDashboardShape(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "dash@example.com")

	rec := ts.request(t, http.MethodGet, "/dashboard", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard returned %d: %s", rec.Code, rec.Body.String())
	}

	dashboard := decode[models.DashboardResponse](t, rec)
	if len(dashboard.Jobs) != 6 {
		t.Errorf("jobs = %d entries, want 6", len(dashboard.Jobs))
	}
	if len(dashboard.Courses) != 6 {
		t.Errorf("courses = %d entries, want 6", len(dashboard.Courses))
	}
	if len(dashboard.RecommendedCourses) == 0 || len(dashboard.RecommendedCourses) > 6 {
		t.Errorf("recommendedCourses = %d entries, want 1..6", len(dashboard.RecommendedCourses))
	}

	// Before assessment the profile sits at 45
	if dashboard.Progress.ProfileCompletion != 45 {
		t.Errorf("profileCompletion = %d, want 45", dashboard.Progress.ProfileCompletion)
	}
	if dashboard.Progress.CoursesCompleted < 1 || dashboard.Progress.CoursesCompleted > 5 {
		t.Errorf("coursesCompleted = %d, want 1..5", dashboard.Progress.CoursesCompleted)
	}
	if dashboard.Progress.JobApplications < 5 || dashboard.Progress.JobApplications > 19 {
		t.Errorf("jobApplications = %d, want 5..19", dashboard.Progress.JobApplications)
	}

	ts.request(t, http.MethodPost, "/assessment/submit", token, `{}`)
	rec = ts.request(t, http.MethodGet, "/dashboard", token, "")
	dashboard = decode[models.DashboardResponse](t, rec)
	if dashboard.Progress.ProfileCompletion != 85 {
		t.Errorf("profileCompletion after assessment = %d, want 85", dashboard.Progress.ProfileCompletion)
	}
}

func TestJobsAndCoursesCatalogs(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "catalog@example.com")

	recJobs := ts.request(t, http.MethodGet, "/jobs", token, "")
	if recJobs.Code != http.StatusOK {
		t.Fatalf("jobs returned %d", recJobs.Code)
	}
	jobs := decode[models.JobsResponse](t, recJobs)
	if len(jobs.Jobs) != 6 {
		t.Fatalf("jobs = %d entries, want 6", len(jobs.Jobs))
	}

	recCourses := ts.request(t, http.MethodGet, "/courses", token, "")
	courses := decode[models.CoursesResponse](t, recCourses)
	if len(courses.Courses) != 6 {
		t.Fatalf("courses = %d entries, want 6", len(courses.Courses))
	}

	// Identifiers are ephemeral but content identity holds across calls
	second := decode[models.JobsResponse](t, ts.request(t, http.MethodGet, "/jobs", token, ""))
	for i := range jobs.Jobs {
		if jobs.Jobs[i].Title != second.Jobs[i].Title {
			t.Errorf("job order changed between calls")
		}
		if jobs.Jobs[i].ID == second.Jobs[i].ID {
			t.Errorf("job %q kept its id across calls", jobs.Jobs[i].Title)
		}
	}
}

func TestChatTurn(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.register(t, "chat@example.com")

	rec := ts.request(t, http.MethodPost, "/chat", token, `{"message":"Tell me about my resume"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat returned %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[models.ChatResponse](t, rec)
	if !strings.Contains(resp.Response, "resume tips") {
		t.Errorf("chat response = %q, want resume tips", resp.Response)
	}
	if resp.SessionID == "" {
		t.Error("chat response missing generated session id")
	}

	turns := ts.store.ChatMessages()
	if len(turns) != 1 {
		t.Fatalf("stored %d chat turns, want 1", len(turns))
	}
	if turns[0].UserID != userID || turns[0].SessionID != resp.SessionID {
		t.Errorf("stored turn = %+v, want user %q session %q", turns[0], userID, resp.SessionID)
	}
	if turns[0].Language != "en" {
		t.Errorf("stored language = %q, want default en", turns[0].Language)
	}
}

func TestChatKeepsSuppliedSessionID(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "session@example.com")

	rec := ts.request(t, http.MethodPost, "/chat", token, `{"message":"hi","sessionId":"session-1"}`)
	resp := decode[models.ChatResponse](t, rec)
	if resp.SessionID != "session-1" {
		t.Errorf("sessionId = %q, want session-1", resp.SessionID)
	}
}

func TestChatMissingMessage(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.register(t, "nomsg@example.com")

	rec := ts.request(t, http.MethodPost, "/chat", token, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("chat returned %d, want 400", rec.Code)
	}

	resp := decode[models.ErrorResponse](t, rec)
	if resp.Error != "Message is required" {
		t.Errorf("error = %q, want %q", resp.Error, "Message is required")
	}

	if len(ts.store.ChatMessages()) != 0 {
		t.Error("rejected chat turn was persisted")
	}
}

func TestApply(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.register(t, "apply@example.com")

	// Missing jobId is rejected and creates no record
	rec := ts.request(t, http.MethodPost, "/apply", token, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("apply returned %d, want 400", rec.Code)
	}
	resp := decode[models.ErrorResponse](t, rec)
	if resp.Error != "Job ID is required" {
		t.Errorf("error = %q, want %q", resp.Error, "Job ID is required")
	}
	if len(ts.store.Applications()) != 0 {
		t.Fatal("rejected apply created an application record")
	}

	// Any non-empty jobId succeeds, valid or not
	rec = ts.request(t, http.MethodPost, "/apply", token, `{"jobId":"no-such-job"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("apply returned %d, want 200", rec.Code)
	}
	ok := decode[models.ApplyResponse](t, rec)
	if !ok.Success {
		t.Error("apply success flag not set")
	}

	apps := ts.store.Applications()
	if len(apps) != 1 {
		t.Fatalf("stored %d applications, want exactly 1", len(apps))
	}
	if apps[0].UserID != userID || apps[0].JobID != "no-such-job" || apps[0].Status != "applied" {
		t.Errorf("stored application = %+v", apps[0])
	}
}

func TestUnmatchedRouteEchoesPath(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/no/such/route", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("returned %d, want 404", rec.Code)
	}

	resp := decode[models.ErrorResponse](t, rec)
	if resp.Error != "Route /no/such/route not found" {
		t.Errorf("error = %q, want path echoed", resp.Error)
	}

	// Wrong method on a known path behaves like an unknown route
	rec = ts.request(t, http.MethodDelete, "/dashboard", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("wrong-method request returned %d, want 404", rec.Code)
	}
}

func TestResponsesCarryCORSHeaders(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.com")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got == "" {
		t.Error("response missing Access-Control-Allow-Origin")
	}
}

func TestPreflightRequest(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent && rec.Code != http.StatusOK {
		t.Errorf("preflight returned %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowOrigin) == "" {
		t.Error("preflight missing Access-Control-Allow-Origin")
	}
}

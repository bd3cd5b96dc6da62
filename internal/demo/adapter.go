package demo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"likebike_backend/internal/model"
	"likebike_backend/internal/util"

	"go.uber.org/zap"
)

// Fixed tokens returned by the demo auth routes. The auth middleware is not
// in front of demo traffic, so the tokens are opaque markers, not JWTs.
const (
	DemoAccessToken    = "mock-access-token-demo"
	DemoRefreshedToken = "mock-refreshed-token-demo"
)

// Request is the inbound descriptor the adapter dispatches on. Body carries
// the raw JSON payload and may be empty.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Result is a resolved demo response: the HTTP status plus the standard
// envelope. The adapter always resolves; unmatched routes and malformed
// bodies come back as 404 and 400 envelopes, never as errors.
type Result struct {
	Status   int
	Envelope util.Response
}

type handlerFunc func(req Request, params []string) Result

// route binds a method and path shape to a handler. Exact paths compare by
// string equality; parameterized paths use a regexp whose capture groups are
// passed to the handler. Dispatch is first-match-wins over the table order.
type route struct {
	method  string
	path    string
	pattern *regexp.Regexp
	handle  handlerFunc
}

// Adapter answers API requests from the in-memory store, emulating the real
// backend's routes and envelope shape so callers need not branch on mode.
type Adapter struct {
	store  *Store
	log    *zap.Logger
	routes []route
}

func NewAdapter(store *Store, log *zap.Logger) *Adapter {
	a := &Adapter{store: store, log: log}
	a.routes = []route{
		{method: http.MethodPost, path: "/users", handle: a.login},
		{method: http.MethodPost, path: "/users/refresh", handle: a.refresh},
		{method: http.MethodPost, path: "/users/logout", handle: a.logout},
		{method: http.MethodGet, path: "/users/profile", handle: a.profile},
		{method: http.MethodGet, pattern: regexp.MustCompile(`^/users/(\d+)/level$`), handle: a.level},
		{method: http.MethodGet, path: "/users/rewards", handle: a.rewards},
		{method: http.MethodPut, path: "/users/score", handle: a.updateScore},
		{method: http.MethodGet, path: "/quizzes", handle: a.quizzes},
		{method: http.MethodGet, path: "/quizzes/today/status", handle: a.quizStatus},
		{method: http.MethodPost, pattern: regexp.MustCompile(`^/quizzes/(\d+)/attempt$`), handle: a.attemptQuiz},
		{method: http.MethodGet, path: "/users/bike-logs", handle: a.bikeLogs},
		{method: http.MethodPost, path: "/users/bike-logs", handle: a.addBikeLog},
		{method: http.MethodGet, path: "/users/bike-logs/today/count", handle: a.bikeLogCount},
		{method: http.MethodGet, path: "/users/course-recommendations", handle: a.courses},
		{method: http.MethodPost, path: "/users/course-recommendations", handle: a.addCourse},
		{method: http.MethodGet, path: "/users/course-recommendations/week/count", handle: a.courseCount},
		{method: http.MethodGet, path: "/news", handle: a.news},
		{method: http.MethodGet, path: "/health", handle: a.health},
	}
	return a
}

// Handle resolves a request against the route table. Unmatched requests
// resolve with a 404 envelope and a diagnostic log line.
func (a *Adapter) Handle(req Request) Result {
	for _, r := range a.routes {
		if r.method != req.Method {
			continue
		}
		if r.pattern != nil {
			if m := r.pattern.FindStringSubmatch(req.Path); m != nil {
				return r.handle(req, m[1:])
			}
			continue
		}
		if r.path == req.Path {
			return r.handle(req, nil)
		}
	}

	a.log.Warn("unhandled demo request",
		zap.String("method", req.Method),
		zap.String("path", req.Path))
	return Result{
		Status:   http.StatusNotFound,
		Envelope: util.Response{Code: http.StatusNotFound, Data: []interface{}{}, Message: "Not found"},
	}
}

func ok(data interface{}) Result {
	return Result{
		Status:   http.StatusOK,
		Envelope: util.Response{Code: http.StatusOK, Data: util.WrapData(data), Message: "success"},
	}
}

func created(data interface{}) Result {
	return Result{
		Status:   http.StatusCreated,
		Envelope: util.Response{Code: http.StatusCreated, Data: util.WrapData(data), Message: "success"},
	}
}

func badRequest() Result {
	return Result{
		Status:   http.StatusBadRequest,
		Envelope: util.Response{Code: http.StatusBadRequest, Data: []interface{}{}, Message: "Bad request"},
	}
}

// parseBody decodes a JSON body into v. An empty body is fine and leaves v
// zero-valued; only malformed JSON is an error.
func parseBody(body []byte, v interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func (a *Adapter) login(Request, []string) Result {
	return created(map[string]string{"access_token": DemoAccessToken})
}

func (a *Adapter) refresh(Request, []string) Result {
	return ok(map[string]string{"accessToken": DemoRefreshedToken})
}

func (a *Adapter) logout(Request, []string) Result {
	return ok(map[string]bool{"success": true})
}

func (a *Adapter) profile(Request, []string) Result {
	return ok(a.store.Profile())
}

// level ignores the path id: the simulation has exactly one user.
func (a *Adapter) level(Request, []string) Result {
	return ok(a.store.Level())
}

func (a *Adapter) rewards(Request, []string) Result {
	return ok(a.store.Rewards())
}

func (a *Adapter) updateScore(req Request, _ []string) Result {
	var body struct {
		ExperiencePoints int    `json:"experience_points"`
		RewardReason     string `json:"reward_reason"`
	}
	if err := parseBody(req.Body, &body); err != nil {
		return badRequest()
	}
	a.store.UpdateScore(body.ExperiencePoints, body.RewardReason)
	return ok(map[string]bool{"success": true})
}

func (a *Adapter) quizzes(Request, []string) Result {
	return ok(a.store.Quizzes())
}

func (a *Adapter) quizStatus(Request, []string) Result {
	return ok(a.store.QuizStatus())
}

func (a *Adapter) attemptQuiz(req Request, params []string) Result {
	quizID, err := strconv.ParseUint(params[0], 10, 32)
	if err != nil {
		return badRequest()
	}
	var body struct {
		Answer string `json:"answer"`
	}
	if err := parseBody(req.Body, &body); err != nil {
		return badRequest()
	}
	return ok(a.store.AttemptQuiz(uint(quizID), body.Answer))
}

func (a *Adapter) bikeLogs(Request, []string) Result {
	return ok(a.store.BikeLogs())
}

func (a *Adapter) addBikeLog(Request, []string) Result {
	return created(a.store.AddBikeLog())
}

func (a *Adapter) bikeLogCount(Request, []string) Result {
	return ok(model.BikeCount{Count: a.store.TodayBikeCount()})
}

func (a *Adapter) courses(Request, []string) Result {
	return ok(a.store.Courses())
}

// addCourse threads the submitted places through to the engine; submissions
// without a body create an empty placeholder course.
func (a *Adapter) addCourse(req Request, _ []string) Result {
	var body struct {
		Places []model.PlaceInput `json:"places"`
	}
	if err := parseBody(req.Body, &body); err != nil {
		return badRequest()
	}
	return created(a.store.AddCourse(body.Places))
}

func (a *Adapter) courseCount(Request, []string) Result {
	return ok(model.CourseCount{Count: a.store.WeekCourseCount()})
}

func (a *Adapter) news(Request, []string) Result {
	return ok(demoNews())
}

func (a *Adapter) health(Request, []string) Result {
	return ok(map[string]string{"status": "ok", "mode": "demo"})
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/alexanderramin/trailmap/internal/scheduler"
	"github.com/alexanderramin/trailmap/internal/service"
	"github.com/alexanderramin/trailmap/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	store  repository.TaskStore
	router http.Handler
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := testutil.NewTestStore(t)
	clock := func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) }
	planner := service.NewPlannerService(store, scheduler.DefaultSchedule(), service.WithClock(clock))
	return &testServer{store: store, router: NewServer(planner, nil).Handler()}
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body=%s", w.Body.String())
	return w.Code, env
}

func TestHealth(t *testing.T) {
	ts := setupServer(t)
	code, env := ts.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestProjects_CreateListToggle(t *testing.T) {
	ts := setupServer(t)

	code, env := ts.do(t, http.MethodGet, "/api/planner/projects", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, env = ts.do(t, http.MethodPost, "/api/planner/create_project", gin.H{"name": "Spanish"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "success", env.Status)

	code, env = ts.do(t, http.MethodPost, "/api/planner/create_project", gin.H{"name": "Spanish"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "error", env.Status)
	assert.NotEmpty(t, env.Message)

	code, env = ts.do(t, http.MethodPost, "/api/planner/toggle_training", gin.H{"project": "Spanish"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.JSONEq(t, `"!Spanish"`, string(env.Data))

	_, env = ts.do(t, http.MethodGet, "/api/planner/projects", nil)
	assert.JSONEq(t, `["!Spanish"]`, string(env.Data))
}

func TestCreateProject_Validation(t *testing.T) {
	ts := setupServer(t)

	code, env := ts.do(t, http.MethodPost, "/api/planner/create_project", gin.H{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)

	code, _ = ts.do(t, http.MethodPost, "/api/planner/create_project", gin.H{"name": "a/b"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestTaskEndpoints(t *testing.T) {
	ts := setupServer(t)
	testutil.SeedProject(t, ts.store, "Release", nil)

	code, env := ts.do(t, http.MethodPost, "/api/planner/task",
		gin.H{"project": "Release", "filename": "Deploy service.txt", "content": "steps"})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = ts.do(t, http.MethodPut, "/api/planner/task",
		gin.H{"project": "Release", "filename": "Deploy service.txt", "content": "new steps", "new_filename": "Deploy.txt"})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = ts.do(t, http.MethodGet, "/api/planner/project/Release", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"filename":"Deploy.txt","content":"new steps","completed":false}]`, string(env.Data))

	code, _ = ts.do(t, http.MethodPut, "/api/planner/task", gin.H{"project": "Release", "filename": "Deploy.txt"})
	assert.Equal(t, http.StatusBadRequest, code, "an update needs a change")

	code, _ = ts.do(t, http.MethodDelete, "/api/planner/task", gin.H{"project": "Release", "filename": "Deploy.txt"})
	require.Equal(t, http.StatusOK, code)

	code, env = ts.do(t, http.MethodDelete, "/api/planner/task", gin.H{"project": "Release", "filename": "Deploy.txt"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
}

func TestUpdateTask_CollidingRenameKeepsContent(t *testing.T) {
	ts := setupServer(t)
	testutil.SeedProject(t, ts.store, "p", []testutil.TaskSeed{
		{Filename: "a.txt", Content: "old"},
		{Filename: "b.txt", Content: "other"},
	})

	code, env := ts.do(t, http.MethodPut, "/api/planner/task",
		gin.H{"project": "p", "filename": "a.txt", "content": "new", "new_filename": "b.txt"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "error", env.Status)

	code, env = ts.do(t, http.MethodGet, "/api/planner/project/p", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[
		{"filename":"a.txt","content":"old","completed":false},
		{"filename":"b.txt","content":"other","completed":false}
	]`, string(env.Data))
}

func TestUpdateTask_InvalidNewName(t *testing.T) {
	ts := setupServer(t)
	testutil.SeedProject(t, ts.store, "p", []testutil.TaskSeed{{Filename: "a.txt", Content: "old"}})

	code, _ := ts.do(t, http.MethodPut, "/api/planner/task",
		gin.H{"project": "p", "filename": "a.txt", "content": "new", "new_filename": "../a.txt"})
	assert.Equal(t, http.StatusBadRequest, code)

	tasks, err := ts.store.ListTasks(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "old", tasks[0].Content)
}

func TestComplete_OrdinaryAndTraining(t *testing.T) {
	ts := setupServer(t)
	testutil.SeedProject(t, ts.store, "Release", testutil.Tasks("Deploy service.txt"))
	testutil.SeedProject(t, ts.store, "!Spanish", testutil.Tasks("Verbs.txt"))

	code, env := ts.do(t, http.MethodPost, "/api/planner/complete", gin.H{"project": "Release", "filename": "Deploy service.txt"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.JSONEq(t, `"Deploy service 2024-01-10 выполнено.txt"`, string(env.Data))

	code, _ = ts.do(t, http.MethodPost, "/api/planner/complete", gin.H{"project": "Release", "filename": "Deploy service 2024-01-10 выполнено.txt"})
	assert.Equal(t, http.StatusConflict, code)

	code, env = ts.do(t, http.MethodPost, "/api/planner/complete", gin.H{"project": "!Spanish", "filename": "Verbs.txt"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.JSONEq(t, `"Verbs x 2024-01-10.txt"`, string(env.Data))
}

func TestRoadmap(t *testing.T) {
	ts := setupServer(t)
	testutil.SeedProject(t, ts.store, "!Spanish", testutil.Tasks("Verbs x 2024-01-10.txt", "Nouns.txt"))

	path := "/api/planner/roadmap/" + url.PathEscape("!Spanish") + "?selected=" + url.QueryEscape("Nouns.txt")
	code, env := ts.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code, env.Message)

	var rm struct {
		Name    string `json:"name"`
		Kind    string `json:"kind"`
		Percent int    `json:"percent"`
		Nodes   []struct {
			Title    string  `json:"title"`
			Status   string  `json:"status"`
			Hint     *string `json:"hint"`
			Selected bool    `json:"selected"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rm))
	assert.Equal(t, "Spanish", rm.Name)
	assert.Equal(t, "training", rm.Kind)
	assert.Equal(t, 17, rm.Percent)
	require.Len(t, rm.Nodes, 2)
	assert.Equal(t, "training_pending", rm.Nodes[0].Status)
	require.NotNil(t, rm.Nodes[0].Hint)
	assert.Equal(t, "Next: 2024-01-11", *rm.Nodes[0].Hint)
	assert.True(t, rm.Nodes[1].Selected)

	code, _ = ts.do(t, http.MethodGet, "/api/planner/roadmap/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDue(t *testing.T) {
	ts := setupServer(t)
	testutil.SeedProject(t, ts.store, "!Spanish", testutil.Tasks("Verbs x 2024-01-09.txt", "Nouns x 2024-01-10.txt"))

	code, env := ts.do(t, http.MethodGet, "/api/planner/due", nil)
	require.Equal(t, http.StatusOK, code)

	var due []service.DueTask
	require.NoError(t, json.Unmarshal(env.Data, &due))
	require.Len(t, due, 1)
	assert.Equal(t, "Verbs x 2024-01-09.txt", due[0].Filename)
}

func TestRun_StopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	planner := service.NewPlannerService(testutil.NewTestStore(t), scheduler.DefaultSchedule())
	srv := NewServer(planner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListTasks_MalformedNameOnDirStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewDirTaskStore(afero.NewMemMapFs(), "/planner")
	ts := &testServer{
		store:  store,
		router: NewServer(service.NewPlannerService(store, scheduler.DefaultSchedule()), nil).Handler(),
	}

	code, env := ts.do(t, http.MethodGet, "/api/planner/project/"+url.PathEscape(" x"), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(repository.ErrNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(service.ErrAlreadyComplete))
	assert.Equal(t, http.StatusBadRequest, statusFor(repository.ErrInvalidName))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}

package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/metrics"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// fakeCompletions serves the chat completions endpoint with a fixed message
// body and records the last request.
type fakeCompletions struct {
	status  int
	content string

	mu   sync.Mutex
	last map[string]interface{}
}

func (f *fakeCompletions) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.last = body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if f.status != 0 && f.status != http.StatusOK {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota","code":"insufficient_quota"}}`))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o",
		"choices": []map[string]interface{}{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]string{"role": "assistant", "content": f.content},
		}},
	})
}

func newTestOpenAI(t *testing.T, f *fakeCompletions) *OpenAI {
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewOpenAI(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini"})
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingObserver) ObserveAI(op, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, op+"/"+outcome)
}

func TestOpenAIRecommendDrills(t *testing.T) {
	f := &fakeCompletions{content: `{"drills":[{"name":"Serve Ladder","description":"d","duration":"10 mins","difficulty":"beginner","equipment":["balls"],"steps":["a","b"]}]}`}
	o := newTestOpenAI(t, f)

	drills, err := o.RecommendDrills(context.Background(), DrillRequest{Query: "second serve", SkillLevel: "beginner"})
	require.NoError(t, err)
	require.Len(t, drills, 1)
	assert.Equal(t, "Serve Ladder", drills[0].Name)
	assert.Equal(t, []string{"a", "b"}, drills[0].Steps)

	assert.Equal(t, "gpt-4o-mini", f.last["model"])
	format, ok := f.last["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
}

func TestOpenAITrainingPlan(t *testing.T) {
	f := &fakeCompletions{content: `{"week":0,"focusAreas":["Serve"],"days":[{"day":"Day 1","drills":[],"notes":"easy"}],"progressGoals":["g"]}`}
	o := newTestOpenAI(t, f)

	plan, err := o.GenerateTrainingPlan(context.Background(), PlanRequest{StudentName: "Emma", Age: 12, SkillLevel: "beginner"})
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Week)
	assert.Equal(t, []string{"Serve"}, plan.FocusAreas)
	require.Len(t, plan.Days, 1)
}

func TestOpenAIMalformedContent(t *testing.T) {
	for name, content := range map[string]string{
		"not json":      "sure, here are some drills",
		"empty drills":  `{"drills":[]}`,
		"missing field": `{"other":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			o := newTestOpenAI(t, &fakeCompletions{content: content})
			_, err := o.RecommendDrills(context.Background(), DrillRequest{Query: "volley"})
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestOpenAIProgressAndRisk(t *testing.T) {
	o := newTestOpenAI(t, &fakeCompletions{content: `{"summary":"Steady week","improvements":["serve"],"concerns":[],"recommendations":["rest"],"nextWeekFocus":["footwork"]}`})
	insight, err := o.GenerateProgressSummary(context.Background(), ProgressRequest{StudentName: "Emma", AttendanceRate: 75})
	require.NoError(t, err)
	assert.Equal(t, "Steady week", insight.Summary)
	assert.Equal(t, []string{"footwork"}, insight.NextWeekFocus)

	o = newTestOpenAI(t, &fakeCompletions{content: `{"riskFactors":["absences"],"interventions":["call parents"],"timeline":"2 weeks","successMetrics":["attends 3 sessions"]}`})
	plan, err := o.AnalyzeDropoutRisk(context.Background(), RiskRequest{StudentName: "Emma", SkillProgression: []int{4, 5}, MissedSessions: 3})
	require.NoError(t, err)
	assert.Equal(t, "2 weeks", plan.Timeline)
	assert.Equal(t, []string{"call parents"}, plan.Interventions)
}

func TestFallbackOnUpstreamError(t *testing.T) {
	obs := &recordingObserver{}
	a := WithFallback(newTestOpenAI(t, &fakeCompletions{status: http.StatusTooManyRequests}), obs, nil)

	drills, err := a.RecommendDrills(context.Background(), DrillRequest{Query: "Serving under pressure", SkillLevel: "advanced"})
	require.NoError(t, err)
	require.Len(t, drills, 2)
	assert.Equal(t, "Target Practice Serves", drills[0].Name)
	assert.Equal(t, "advanced", drills[0].Difficulty)

	plan, err := a.GenerateTrainingPlan(context.Background(), PlanRequest{StudentName: "Emma"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Serve", "Footwork", "Fallback AI Plan"}, plan.FocusAreas)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, "intermediate", plan.Days[0].Drills[0].Difficulty)

	assert.Equal(t, []string{
		OpRecommendDrills + "/" + metrics.OutcomeFallback,
		OpTrainingPlan + "/" + metrics.OutcomeFallback,
	}, obs.calls)
}

func TestFallbackPropagatesAnalysisErrors(t *testing.T) {
	obs := &recordingObserver{}
	a := WithFallback(Offline{}, obs, nil)

	_, err := a.GenerateProgressSummary(context.Background(), ProgressRequest{})
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = a.AnalyzeDropoutRisk(context.Background(), RiskRequest{})
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, []string{
		OpProgressSummary + "/" + metrics.OutcomeError,
		OpDropoutRisk + "/" + metrics.OutcomeError,
	}, obs.calls)
}

func TestFallbackDrillsByKeyword(t *testing.T) {
	cases := []struct {
		query string
		first string
		count int
	}{
		{"work on my SERVE", "Target Practice Serves", 2},
		{"lateral movement", "Ladder Drills", 2},
		{"groundstroke consistency", "Wall Rally Practice", 2},
		{"anything fun", "Mini Tennis", 3},
	}
	for _, tc := range cases {
		drills := FallbackDrills(tc.query, "")
		require.Len(t, drills, tc.count, tc.query)
		assert.Equal(t, tc.first, drills[0].Name, tc.query)
	}
	assert.Equal(t, "beginner", FallbackDrills("anything", "advanced")[0].Difficulty)

	// Callers get their own copies.
	a := FallbackDrills("serve", "beginner")
	a[0].Steps[0] = "changed"
	assert.NotEqual(t, "changed", FallbackDrills("serve", "beginner")[0].Steps[0])
}

// countingAdvisor answers drill requests after an optional gate and counts
// upstream calls.
type countingAdvisor struct {
	Offline
	calls atomic.Int32
	gate  chan struct{}
}

func (c *countingAdvisor) RecommendDrills(ctx context.Context, req DrillRequest) ([]models.Drill, error) {
	c.calls.Add(1)
	if c.gate != nil {
		<-c.gate
	}
	return []models.Drill{{Name: "drill for " + req.Query}}, nil
}

func TestCachedDrillsReusesResult(t *testing.T) {
	clk := testclock.NewClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	up := &countingAdvisor{}
	c := NewCachedDrills(up, cache.NewMemory(clk), time.Hour, 0, nil)
	ctx := context.Background()

	first, err := c.RecommendDrills(ctx, DrillRequest{Query: "Volley  drills"})
	require.NoError(t, err)
	second, err := c.RecommendDrills(ctx, DrillRequest{Query: "volley drills"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, up.calls.Load())

	_, err = c.RecommendDrills(ctx, DrillRequest{Query: "volley drills", SkillLevel: "advanced"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, up.calls.Load())

	clk.Advance(2 * time.Hour)
	_, err = c.RecommendDrills(ctx, DrillRequest{Query: "volley drills"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, up.calls.Load())
}

func TestCachedDrillsCoalescesConcurrentQueries(t *testing.T) {
	up := &countingAdvisor{gate: make(chan struct{})}
	c := NewCachedDrills(up, cache.NewMemory(testclock.NewClock(time.Now())), time.Hour, 0, nil)

	const callers = 8
	var (
		wg      sync.WaitGroup
		results = make([][]models.Drill, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			drills, err := c.RecommendDrills(context.Background(), DrillRequest{Query: "slice"})
			assert.NoError(t, err)
			results[i] = drills
		}(i)
	}
	require.Eventually(t, func() bool { return up.calls.Load() == 1 }, time.Second, time.Millisecond)
	// Give the remaining callers time to join the in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(up.gate)
	wg.Wait()

	assert.EqualValues(t, 1, up.calls.Load())
	for _, r := range results {
		require.Len(t, r, 1)
		assert.Equal(t, "drill for slice", r[0].Name)
	}
}

// blockingAdvisor waits for gate, or for its context to end first.
type blockingAdvisor struct {
	Offline
	started chan struct{}
	gate    chan struct{}
}

func (b *blockingAdvisor) RecommendDrills(ctx context.Context, req DrillRequest) ([]models.Drill, error) {
	close(b.started)
	select {
	case <-b.gate:
		return []models.Drill{{Name: "drill for " + req.Query}}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestCachedDrillsSurviveCancelledLeader(t *testing.T) {
	up := &blockingAdvisor{started: make(chan struct{}), gate: make(chan struct{})}
	c := NewCachedDrills(up, cache.NewMemory(testclock.NewClock(time.Now())), time.Hour, 0, nil)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.RecommendDrills(leaderCtx, DrillRequest{Query: "lob"})
		leaderErr <- err
	}()
	<-up.started

	type result struct {
		drills []models.Drill
		err    error
	}
	follower := make(chan result, 1)
	go func() {
		drills, err := c.RecommendDrills(context.Background(), DrillRequest{Query: "lob"})
		follower <- result{drills, err}
	}()
	// Let the follower join the in-flight call.
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(up.gate)
	got := <-follower
	require.NoError(t, got.err)
	require.Len(t, got.drills, 1)
	assert.Equal(t, "drill for lob", got.drills[0].Name)

	// the shared call still filled the cache
	cached, err := c.RecommendDrills(context.Background(), DrillRequest{Query: "lob"})
	require.NoError(t, err)
	assert.Equal(t, got.drills, cached)
}

func TestCachedDrillsBoundSharedCall(t *testing.T) {
	up := &blockingAdvisor{started: make(chan struct{}), gate: make(chan struct{})}
	c := NewCachedDrills(up, cache.NewMemory(testclock.NewClock(time.Now())), time.Hour, 20*time.Millisecond, nil)

	_, err := c.RecommendDrills(context.Background(), DrillRequest{Query: "lob"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

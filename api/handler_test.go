package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func newTestHandler(t *testing.T) *SchedulerHandlerImpl {
	t.Helper()
	return NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:                  9095,
		LogLevel:              "error",
		RoundRobinTimeQuantum: 2,
	})
}

func post(t *testing.T, path, body string) (int, []byte) {
	t.Helper()
	app := NewApp(newTestHandler(t))
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestFirstComeFirstServe_Jobs(t *testing.T) {
	status, body := post(t, "/api/v1/fcfs", `{"jobs":[{"arrival_time":0,"burst_time":3},{"arrival_time":5,"burst_time":1}]}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "fcfs", got.Algorithm)
	assert.Equal(t, []core.Segment{
		{ProcessIndex: 0, Start: 0, End: 3},
		{ProcessIndex: core.IdleProcessIndex, Start: 3, End: 5, Idle: true},
		{ProcessIndex: 1, Start: 5, End: 6},
	}, got.History)
	assert.Equal(t, 0.0, got.AverageWaitingTime)
}

func TestRoundRobin_SequenceAndQuantumOverride(t *testing.T) {
	status, body := post(t, "/api/v1/rr", `{"sequence":"0,4;2,3","time_quantum":4}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	// quantum 4 covers both bursts: no re-slicing
	assert.Len(t, got.History, 2)
	assert.Equal(t, 1.0, got.AverageWaitingTime)
}

func TestShortestJobFirst_Preset(t *testing.T) {
	status, body := post(t, "/api/v1/sjf", `{"preset":2}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.InDelta(t, 34.0/6.0, got.AverageWaitingTime, 1e-9)
}

func TestAlgorithmParam_CaseInsensitive(t *testing.T) {
	status, body := post(t, "/api/v1/schedule/2XFCFS", `{"sequence":"0,6;1,5;2,1"}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "2xfcfs", got.Algorithm)
	assert.Equal(t, 2, got.History[1].ProcessIndex)
}

func TestAlgorithmParam_Unknown(t *testing.T) {
	status, body := post(t, "/api/v1/schedule/lottery", `{"sequence":"0,1"}`)
	assert.Equal(t, http.StatusNotFound, status)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "unknown_algorithm", got["kind"])
	assert.Equal(t, float64(responses.NotComputed), got["average_waiting_time"])
	assert.Nil(t, got["history"])
}

func TestTwoLevel_ZeroThresholdMeansMeanBurst(t *testing.T) {
	for _, body := range []string{
		`{"sequence":"0,6;1,5;2,1"}`,
		`{"sequence":"0,6;1,5;2,1","burst_threshold":0}`,
	} {
		status, data := post(t, "/api/v1/2xfcfs", body)
		require.Equal(t, http.StatusOK, status, string(data))

		var got responses.ScheduleResponse
		require.NoError(t, json.Unmarshal(data, &got))
		require.Len(t, got.History, 3, body)
		assert.Equal(t, []int{0, 2, 1},
			[]int{got.History[0].ProcessIndex, got.History[1].ProcessIndex, got.History[2].ProcessIndex}, body)
	}
}

type panickingHandler struct {
	*SchedulerHandlerImpl
}

func (panickingHandler) FirstComeFirstServe(*fiber.Ctx) error {
	panic("scheduler bug")
}

func TestNewApp_RecoversFromHandlerPanic(t *testing.T) {
	app := NewApp(panickingHandler{newTestHandler(t)})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fcfs", strings.NewReader(`{"preset":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// the same app keeps serving after the panic
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sjf", strings.NewReader(`{"preset":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAllAlgorithms(t *testing.T) {
	status, body := post(t, "/api/v1/all", `{"preset":1}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var got []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 4)
	assert.Equal(t, []string{"fcfs", "sjf", "rr", "2xfcfs"},
		[]string{got[0].Algorithm, got[1].Algorithm, got[2].Algorithm, got[3].Algorithm})
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		kind   string
	}{
		{name: "malformed json", path: "/api/v1/fcfs", body: `{"jobs":`, status: http.StatusBadRequest},
		{name: "empty input", path: "/api/v1/fcfs", body: `{"jobs":[]}`, status: http.StatusBadRequest, kind: "empty_input"},
		{name: "zero burst", path: "/api/v1/sjf", body: `{"jobs":[{"arrival_time":0,"burst_time":0}]}`, status: http.StatusBadRequest, kind: "non_positive_burst"},
		{name: "bad sequence", path: "/api/v1/rr", body: `{"sequence":"0,1;"}`, status: http.StatusBadRequest, kind: "format"},
		{name: "letters", path: "/api/v1/rr", body: `{"sequence":"a,1"}`, status: http.StatusBadRequest, kind: "letters"},
		{name: "zero quantum", path: "/api/v1/rr", body: `{"sequence":"0,1","time_quantum":0}`, status: http.StatusBadRequest, kind: "invalid_quantum"},
		{name: "unknown preset", path: "/api/v1/all", body: `{"preset":9}`, status: http.StatusBadRequest},
		{name: "number out of range", path: "/api/v1/fcfs", body: `{"sequence":"99999999999999999999,1"}`, status: http.StatusBadRequest, kind: "range"},
		{name: "clock overflow", path: "/api/v1/fcfs", body: `{"sequence":"9223372036854775806,5;9223372036854775806,5"}`, status: http.StatusBadRequest, kind: "time_overflow"},
		{name: "negative threshold", path: "/api/v1/2xfcfs", body: `{"sequence":"0,1","burst_threshold":-1}`, status: http.StatusBadRequest, kind: "invalid_threshold"},
		{name: "all validates", path: "/api/v1/all", body: `{"jobs":[{"arrival_time":-1,"burst_time":1}]}`, status: http.StatusBadRequest, kind: "negative_arrival"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := post(t, tc.path, tc.body)
			assert.Equal(t, tc.status, status, string(body))

			var got responses.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.NotEmpty(t, got.Error)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, float64(responses.NotComputed), got.AverageWaitingTime)
			assert.Nil(t, got.History)
		})
	}
}

func TestCapacityExceeded(t *testing.T) {
	handler := NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port: 9095, LogLevel: "error", RoundRobinTimeQuantum: 2, QueueCapacity: 1,
	})
	app := NewApp(handler)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fcfs", strings.NewReader(`{"sequence":"0,1;0,1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestPresets(t *testing.T) {
	app := NewApp(newTestHandler(t))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []presetResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.Equal(t, "0,7;1,5;2,3;3,1;4,2;5,1", got[1].Sequence)
	assert.Len(t, got[1].Jobs, 6)
}

func TestMetricsEndpoint(t *testing.T) {
	post(t, "/api/v1/fcfs", `{"preset":3}`)

	app := NewApp(newTestHandler(t))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), `scheduler_simulations_total{algorithm="fcfs",outcome="success"}`)
}

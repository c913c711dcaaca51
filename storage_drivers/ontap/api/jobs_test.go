// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/ontap-client/utils/errors"
)

const (
	testJobUUID = "493e64d1-99e2-11eb-9fc4-080027c8f2a7"
	testJobURL  = "https://10.0.0.1/api/cluster/jobs/" + testJobUUID
)

var testJob = JobHandle{UUID: testJobUUID, Href: "/api/cluster/jobs/" + testJobUUID}

// registerJobStates serves the given states in order, repeating the last one.
func registerJobStates(states ...string) {
	polls := 0
	httpmock.RegisterResponder("GET", testJobURL, func(req *http.Request) (*http.Response, error) {
		state := states[len(states)-1]
		if polls < len(states) {
			state = states[polls]
		}
		polls++
		body := fmt.Sprintf(`{"uuid": %q, "state": %q, "message": "%s message", "code": 0,
			"start_time": "2021-04-10T09:51:13+00:00"}`, testJobUUID, state, state)
		return httpmock.NewStringResponse(http.StatusOK, body), nil
	})
}

func TestJobFromResponse(t *testing.T) {
	result := &CallResult{Body: map[string]interface{}{
		"job": map[string]interface{}{
			"uuid": testJobUUID,
			"_links": map[string]interface{}{
				"self": map[string]interface{}{"href": "/api/cluster/jobs/" + testJobUUID},
			},
		},
	}}
	handle, err := JobFromResponse(result)
	require.NoError(t, err)
	assert.Equal(t, testJob, handle)

	_, err = JobFromResponse(&CallResult{Body: map[string]interface{}{"records": []interface{}{}}})
	assert.Error(t, err)
	_, err = JobFromResponse(nil)
	assert.Error(t, err)
	_, err = JobFromResponse(&CallResult{Body: map[string]interface{}{"job": map[string]interface{}{}}})
	assert.Error(t, err)
}

func TestJobHandleResourcePath(t *testing.T) {
	path, query, err := testJob.resourcePath()
	require.NoError(t, err)
	assert.Equal(t, "cluster/jobs/"+testJobUUID, path)
	assert.Empty(t, query)

	path, _, err = JobHandle{UUID: testJobUUID}.resourcePath()
	require.NoError(t, err)
	assert.Equal(t, "cluster/jobs/"+testJobUUID, path)

	path, query, err = JobHandle{Href: "/api/cluster/jobs/" + testJobUUID + "?fields=state&return_timeout=15"}.
		resourcePath()
	require.NoError(t, err)
	assert.Equal(t, "cluster/jobs/"+testJobUUID, path)
	assert.Equal(t, "15", query.Get("return_timeout"))

	_, _, err = JobHandle{Href: "/cluster/jobs/1"}.resourcePath()
	assert.Error(t, err)
	_, _, err = JobHandle{Href: "/api/?fields=state"}.resourcePath()
	assert.Error(t, err)
	_, _, err = JobHandle{}.resourcePath()
	assert.Error(t, err)
}

func TestGetJob_HrefWithQuery(t *testing.T) {
	env := newTestClient(t, basicConfig())

	var rawQuery string
	httpmock.RegisterResponder("GET", testJobURL, func(req *http.Request) (*http.Response, error) {
		rawQuery = req.URL.RawQuery
		return httpmock.NewStringResponse(http.StatusOK, `{"state": "success", "message": "done"}`), nil
	})

	href := "/api/cluster/jobs/" + testJobUUID + "?fields=uuid&return_timeout=15"
	job, err := env.client.GetJob(ctx, JobHandle{Href: href})
	require.NoError(t, err)
	assert.Equal(t, JobStateSuccess, job.State)

	assert.Equal(t, 1, strings.Count(rawQuery, "fields="), "fields appears once: %s", rawQuery)
	query, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	assert.Equal(t, "15", query.Get("return_timeout"))
	assert.Equal(t, strings.Join(jobFields, ","), query.Get("fields"))
}

func TestGetJob(t *testing.T) {
	env := newTestClient(t, basicConfig())
	httpmock.RegisterResponder("GET", testJobURL, httpmock.NewStringResponder(http.StatusOK,
		`{"uuid": "`+testJobUUID+`", "description": "PATCH /api/storage/volumes/7d2f", "state": "failure",
		"message": "entry doesn't exist", "code": 4, "start_time": "2021-04-10T09:51:13+00:00",
		"end_time": "2021-04-10T09:51:14+00:00"}`))

	job, err := env.client.GetJob(ctx, testJob)
	require.NoError(t, err)
	assert.Equal(t, JobStateFailure, job.State)
	assert.Equal(t, "entry doesn't exist", job.Message)
	assert.Equal(t, int64(4), job.Code)
	assert.Equal(t, time.Second, time.Time(job.EndTime).Sub(time.Time(job.StartTime)))
}

func TestWaitOnJob_CompletesAfterFourPolls(t *testing.T) {
	env := newTestClient(t, basicConfig())
	registerJobStates("queued", "running", "running", "success")
	start := env.clock.Now()

	message, err := env.client.WaitOnJob(ctx, testJob, 600*time.Second, 0)
	assert.NoError(t, err)
	assert.Equal(t, "success message", message)
	assert.Equal(t, 4, httpmock.GetTotalCallCount())
	assert.Equal(t, start, env.clock.Now())
}

func TestWaitOnJob_TerminalStateReturnsWithoutSleeping(t *testing.T) {
	for _, state := range []string{"success", "paused"} {
		t.Run(state, func(t *testing.T) {
			env := newTestClient(t, basicConfig())
			registerJobStates(state)
			start := env.clock.Now()

			for i := 0; i < 2; i++ {
				_, err := env.client.WaitOnJob(ctx, testJob, 600*time.Second, 60*time.Second)
				assert.NoError(t, err)
			}
			assert.Equal(t, 2, httpmock.GetTotalCallCount())
			assert.Equal(t, start, env.clock.Now())
		})
	}
}

func TestWaitOnJob_Failure(t *testing.T) {
	env := newTestClient(t, basicConfig())
	httpmock.RegisterResponder("GET", testJobURL, httpmock.NewStringResponder(http.StatusOK,
		`{"state": "failure", "message": "Snapshot copy is locked", "code": 1638555}`))

	message, err := env.client.WaitOnJob(ctx, testJob, 600*time.Second, 60*time.Second)
	assert.Empty(t, message)
	require.Error(t, err)
	assert.True(t, errors.IsEndpointError(err))
	assert.False(t, errors.IsTimeoutError(err))
	assert.Contains(t, err.Error(), "Snapshot copy is locked")

	_, code, _, _ := errors.EndpointErrorDetails(err)
	assert.Equal(t, "1638555", code)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestWaitOnJob_ZeroTimeout(t *testing.T) {
	env := newTestClient(t, basicConfig())
	registerJobStates("running")
	start := env.clock.Now()

	_, err := env.client.WaitOnJob(ctx, testJob, 0, 60*time.Second)
	require.Error(t, err)
	assert.True(t, errors.IsTimeoutError(err))
	assert.Contains(t, err.Error(), "0 seconds")
	assert.Equal(t, "Timeout error: Process still running after 0 seconds", err.Error())
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Equal(t, start, env.clock.Now())
}

func TestWaitOnJob_TimeoutAfterOneMorePoll(t *testing.T) {
	env := newTestClient(t, basicConfig())
	registerJobStates("running")
	start := env.clock.Now()

	_, err := env.client.WaitOnJob(ctx, testJob, 10*time.Second, 10*time.Second)
	require.Error(t, err)
	assert.True(t, errors.IsTimeoutError(err))
	assert.Equal(t, "Timeout error: Process still running after 10 seconds", err.Error())
	assert.Equal(t, 2, httpmock.GetTotalCallCount(), "initial check plus exactly one more poll")
	assert.Equal(t, 10*time.Second, env.clock.Since(start))
}

func TestWaitOnJob_PollRetries(t *testing.T) {
	t.Run("recovers", func(t *testing.T) {
		env := newTestClient(t, basicConfig())
		polls := 0
		httpmock.RegisterResponder("GET", testJobURL, func(req *http.Request) (*http.Response, error) {
			polls++
			if polls <= 3 {
				return httpmock.NewStringResponse(http.StatusServiceUnavailable, ""), nil
			}
			return httpmock.NewStringResponse(http.StatusOK, `{"state": "success", "message": "done"}`), nil
		})

		message, err := env.client.WaitOnJob(ctx, testJob, 600*time.Second, time.Second)
		assert.NoError(t, err)
		assert.Equal(t, "done", message)
		assert.Equal(t, 4, polls)
	})

	t.Run("counter resets after a good poll", func(t *testing.T) {
		env := newTestClient(t, basicConfig())
		polls := 0
		httpmock.RegisterResponder("GET", testJobURL, func(req *http.Request) (*http.Response, error) {
			polls++
			switch {
			case polls == 4:
				return httpmock.NewStringResponse(http.StatusOK, `{"state": "running"}`), nil
			case polls == 8:
				return httpmock.NewStringResponse(http.StatusOK, `{"state": "success"}`), nil
			}
			return httpmock.NewStringResponse(http.StatusServiceUnavailable, ""), nil
		})

		_, err := env.client.WaitOnJob(ctx, testJob, 600*time.Second, time.Second)
		assert.NoError(t, err)
		assert.Equal(t, 8, polls)
	})

	t.Run("gives up", func(t *testing.T) {
		env := newTestClient(t, basicConfig())
		httpmock.RegisterResponder("GET", testJobURL,
			httpmock.NewStringResponder(http.StatusServiceUnavailable, ""))

		_, err := env.client.WaitOnJob(ctx, testJob, 600*time.Second, time.Second)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reached max retries")
		assert.Equal(t, errors.TransportHTTP, errors.GetTransportCategory(err))
		assert.Equal(t, 4, httpmock.GetTotalCallCount())
		assert.Contains(t, env.client.Errors(), "Job error: Reach max retries.")
	})
}

func TestWaitOnJob_BadHandle(t *testing.T) {
	env := newTestClient(t, basicConfig())

	_, err := env.client.WaitOnJob(ctx, JobHandle{Href: "cluster/jobs/1"}, time.Second, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL incorrect format")
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestWaitOnJob_Canceled(t *testing.T) {
	env := newTestClient(t, basicConfig())
	registerJobStates("running")

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	_, err := env.client.WaitOnJob(canceled, testJob, 600*time.Second, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestWaitOnJob_CanceledWhileWaiting(t *testing.T) {
	env := newTestClient(t, basicConfig())

	canceled, cancel := context.WithCancel(ctx)
	defer cancel()
	httpmock.RegisterResponder("GET", testJobURL, func(req *http.Request) (*http.Response, error) {
		cancel()
		return httpmock.NewStringResponse(http.StatusOK, `{"state": "running"}`), nil
	})

	_, err := env.client.WaitOnJob(canceled, testJob, 600*time.Second, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-openapi/strfmt"
	"k8s.io/utils/clock"

	"github.com/netapp/ontap-client/config"
	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/utils/errors"
)

var jobFields = []string{"state", "message", "code", "start_time", "end_time"}

// JobFromResponse extracts the job handle from an asynchronous REST response:
// {"job": {"uuid": "...", "_links": {"self": {"href": "/api/cluster/jobs/..."}}}}
func JobFromResponse(result *CallResult) (JobHandle, error) {
	if result == nil || result.Body == nil {
		return JobHandle{}, fmt.Errorf("response has no body")
	}
	job, ok := result.Body["job"].(map[string]interface{})
	if !ok {
		return JobHandle{}, fmt.Errorf("response has no job")
	}

	handle := JobHandle{}
	if uuid, ok := job["uuid"].(string); ok {
		handle.UUID = strfmt.UUID(uuid)
	}
	if links, ok := job["_links"].(map[string]interface{}); ok {
		if self, ok := links["self"].(map[string]interface{}); ok {
			handle.Href, _ = self["href"].(string)
		}
	}
	if handle.Href == "" && handle.UUID == "" {
		return JobHandle{}, fmt.Errorf("job has neither a UUID nor a link")
	}
	return handle, nil
}

// resourcePath returns the job path relative to /api/ and any query the Href carried.
func (j JobHandle) resourcePath() (string, url.Values, error) {
	if j.Href != "" {
		_, rest, found := strings.Cut(j.Href, config.RESTAPIRoot)
		path, rawQuery, _ := strings.Cut(rest, "?")
		if !found || path == "" {
			return "", nil, fmt.Errorf("URL incorrect format: %s", j.Href)
		}
		query, err := url.ParseQuery(rawQuery)
		if err != nil {
			return "", nil, fmt.Errorf("URL incorrect format: %s; %v", j.Href, err)
		}
		return path, query, nil
	}
	if j.UUID != "" {
		return "cluster/jobs/" + j.UUID.String(), url.Values{}, nil
	}
	return "", nil, fmt.Errorf("job handle is empty")
}

// GetJob polls the job once.
func (c *Client) GetJob(ctx context.Context, handle JobHandle) (*Job, error) {
	ctx = WithWorkflow(ctx, WorkflowJobGet, LogLayerOntapREST)

	path, params, err := handle.resourcePath()
	if err != nil {
		c.logError(ctx, 0, err.Error())
		return nil, err
	}
	params.Set("fields", strings.Join(jobFields, ","))

	result, err := c.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	job := &Job{}
	if err = json.Unmarshal(result.Raw, job); err != nil {
		return nil, c.recordError(ctx, result.StatusCode, errors.WrapWithTransportError(err,
			errors.TransportMalformed, result.StatusCode, "could not decode job"))
	}
	if job.UUID == "" {
		job.UUID = handle.UUID
	}
	return job, nil
}

// WaitOnJob polls a job at a fixed interval until it leaves the queued and running states.  A failed job
// returns an EndpointError carrying the job's message and code.  If the job is still active once the elapsed
// time reaches timeout, a TimeoutError is returned; the job itself may still succeed.  Poll failures are
// retried up to three consecutive times.
func (c *Client) WaitOnJob(
	ctx context.Context, handle JobHandle, timeout, interval time.Duration,
) (string, error) {
	ctx = WithWorkflow(ctx, WorkflowJobWait, LogLayerOntapREST)
	logFields := LogFields{"job": handle.UUID, "href": handle.Href, "timeout": timeout, "interval": interval}

	if _, _, err := handle.resourcePath(); err != nil {
		c.logError(ctx, 0, err.Error())
		return "", err
	}

	var elapsed time.Duration
	var message string
	retries := 0

	pollJob := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}

		job, err := c.GetJob(ctx, handle)
		if err != nil {
			retries++
			if retries > config.MaxJobPollRetries {
				c.logError(ctx, 0, "Job error: Reach max retries.")
				return backoff.Permanent(fmt.Errorf("job error: reached max retries; %w", err))
			}
			if elapsed >= timeout {
				return backoff.Permanent(fmt.Errorf("job error: %w", err))
			}
			Logc(ctx).WithFields(logFields).WithError(err).Debug("Job poll failed, will retry.")
			return err
		}
		retries = 0

		Logc(ctx).WithFields(logFields).WithField("state", job.State).Debug("Job polled.")

		if job.State == JobStateFailure {
			return backoff.Permanent(errors.EndpointError(errors.EndpointOther, codeString(job.Code), 0, "%s",
				job.Message))
		}
		if !job.State.IsActive() {
			message = job.Message
			return nil
		}
		if elapsed >= timeout {
			msg := fmt.Sprintf("Timeout error: Process still running after %d seconds", int64(timeout.Seconds()))
			c.logError(ctx, 0, msg)
			return backoff.Permanent(errors.TimeoutError("%s", msg))
		}
		return fmt.Errorf("job %s is %s", handle.UUID, job.State)
	}
	pollNotify := func(err error, next time.Duration) {
		elapsed += next
		Logc(ctx).WithFields(logFields).WithField("increment", next).Debug("Job not yet done, waiting.")
	}

	pollPolicy := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)
	if err := backoff.RetryNotifyWithTimer(pollJob, pollPolicy, pollNotify, newClockTimer(c.clock)); err != nil {
		return "", err
	}
	return message, nil
}

// clockTimer adapts a clock.Clock to backoff.Timer.  Each wait sleeps on the clock in its own goroutine so the
// poll loop still observes context cancellation, and a fake clock advances as soon as the wait starts.
type clockTimer struct {
	clock clock.Clock
	c     chan time.Time
}

func newClockTimer(clk clock.Clock) *clockTimer {
	return &clockTimer{clock: clk}
}

func (t *clockTimer) Start(duration time.Duration) {
	fired := make(chan time.Time, 1)
	t.c = fired
	go func() {
		if duration > 0 {
			t.clock.Sleep(duration)
		}
		fired <- t.clock.Now()
	}()
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}

func codeString(code int64) string {
	if code == 0 {
		return ""
	}
	return strconv.FormatInt(code, 10)
}

package autodraw_test

import (
	"context"
	"sync"
	"testing"
)

const startPayload = `{
	"project_attributes": {"name": "Marina cover", "client": "Copelands"},
	"products": [{"item_index": 0, "label": "Sail A", "attributes": {"width": 5}}],
	"autodraw_config": {
		"stepCount": 2,
		"steps": [
			{
				"key": "structure",
				"label": "Structure",
				"show": [{"query": "ad_layer", "value": "AD_STRUCTURE"}],
				"substeps": [
					{"key": "posts", "label": "Posts", "method": "auto_posts", "automated": true},
					{"key": "cables", "label": "Cables", "method": "manual", "automated": false}
				]
			},
			{
				"key": "panels",
				"label": "Panels",
				"show": [{"query": "ad_layer", "value": "AD_PANEL"}],
				"substeps": []
			}
		]
	},
	"autodraw_meta": {"current_step": 0, "current_substep": 1, "is_complete": false, "last_updated": "t0"},
	"autodraw_record": {
		"created_at": "t0",
		"geometry": [
			{"id": "l1", "key": "edge", "ad_layer": "AD_STRUCTURE", "product_index": 0, "tags": ["edge"],
				"type": "geo_line", "attributes": {"start": [0, 0], "end": [10, 0]}}
		]
	}
}`

const continuePayload = `{"data": {
	"project_attributes": {"name": "Marina cover v2"},
	"autodraw_config": {"stepCount": 0, "steps": []},
	"autodraw_meta": {"current_step": 1, "current_substep": 0, "is_complete": true, "last_updated": "t1"},
	"autodraw_record": {
		"created_at": "t1",
		"geometry": [
			{"id": "l1", "ad_layer": "AD_STRUCTURE", "type": "geo_line", "attributes": {"start": [0, 0], "end": [10, 0]}},
			{"id": "p1", "ad_layer": "AD_PANEL", "type": "geo_line", "attributes": {"start": [0, 0], "end": [0, 10]}}
		]
	}
}}`

type fetchResult struct {
	body []byte
	err  error
}

// fakeFetcher answers from canned results and counts calls.
type fakeFetcher struct {
	mu            sync.Mutex
	start         fetchResult
	cont          fetchResult
	startCalls    int
	continueCalls int
	lastToken     string
}

func newFakeFetcher(t *testing.T) *fakeFetcher {
	t.Helper()

	return &fakeFetcher{
		start: fetchResult{body: []byte(startPayload)},
		cont:  fetchResult{body: []byte(continuePayload)},
	}
}

func (f *fakeFetcher) StartAutomation(ctx context.Context, token string, _ int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls++
	f.lastToken = token

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return f.start.body, f.start.err
}

func (f *fakeFetcher) ContinueAutomation(ctx context.Context, token string, _ int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.continueCalls++
	f.lastToken = token

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return f.cont.body, f.cont.err
}

func (f *fakeFetcher) setContinue(body string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cont = fetchResult{body: []byte(body), err: err}
}

func (f *fakeFetcher) setStart(body string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.start = fetchResult{body: []byte(body), err: err}
}

type staticTokens string

func (s staticTokens) Token() (string, bool) {
	return string(s), s != ""
}

// interleavingFetcher runs beforeContinue while a continue fetch is in flight.
type interleavingFetcher struct {
	*fakeFetcher
	beforeContinue func()
}

func (f *interleavingFetcher) ContinueAutomation(ctx context.Context, token string, projectID int) ([]byte, error) {
	if f.beforeContinue != nil {
		f.beforeContinue()
	}

	return f.fakeFetcher.ContinueAutomation(ctx, token, projectID)
}

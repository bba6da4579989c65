package services

import (
	"context"
	"encoding/json"
	"net/url"
)

/*************
 * Fake API client
 *************/

type call struct {
	method string
	path   string
	query  url.Values
	body   any
	key    string
}

type fakeClient struct {
	calls []call

	// outputs preset
	data any
	err  error

	abortedAll  bool
	abortedKeys []string
}

func (f *fakeClient) record(method, path string, query url.Values, body any, key string) {
	f.calls = append(f.calls, call{method: method, path: path, query: query, body: body, key: key})
}

func (f *fakeClient) fill(out any) error {
	if f.err != nil {
		return f.err
	}
	if out == nil || f.data == nil {
		return nil
	}
	b, err := json.Marshal(f.data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (f *fakeClient) Get(ctx context.Context, path string, query url.Values, out any, abortKey string) error {
	f.record("GET", path, query, nil, abortKey)
	return f.fill(out)
}

func (f *fakeClient) Post(ctx context.Context, path string, body, out any, abortKey string) error {
	f.record("POST", path, nil, body, abortKey)
	return f.fill(out)
}

func (f *fakeClient) Patch(ctx context.Context, path string, body, out any, abortKey string) error {
	f.record("PATCH", path, nil, body, abortKey)
	return f.fill(out)
}

func (f *fakeClient) Delete(ctx context.Context, path string, out any, abortKey string) error {
	f.record("DELETE", path, nil, nil, abortKey)
	return f.fill(out)
}

func (f *fakeClient) AbortRequest(key string) {
	f.abortedKeys = append(f.abortedKeys, key)
}

func (f *fakeClient) AbortAllRequests() {
	f.abortedAll = true
}

func (f *fakeClient) lastCall() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

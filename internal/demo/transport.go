package demo

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that answers every request from the
// adapter after a fixed simulated latency, so an http.Client pointed at it
// behaves like a real backend without any network. RoundTrip never returns
// an error: unmatched routes come back as a 404 response, matching the
// always-resolve contract of the adapter.
type Transport struct {
	adapter *Adapter
	latency time.Duration
}

func NewTransport(adapter *Adapter, latency time.Duration) *Transport {
	return &Transport{adapter: adapter, latency: latency}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	if t.latency > 0 {
		timer := time.NewTimer(t.latency)
		select {
		case <-timer.C:
		case <-req.Context().Done():
			timer.Stop()
			// The caller gave up; resolve immediately rather than fail.
		}
	}

	result := t.adapter.Handle(Request{
		Method: req.Method,
		Path:   req.URL.Path,
		Body:   body,
	})

	payload, err := json.Marshal(result.Envelope)
	if err != nil {
		payload = []byte(`{"code":500,"data":[],"message":"Internal server error"}`)
		result.Status = http.StatusInternalServerError
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		Status:        http.StatusText(result.Status),
		StatusCode:    result.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(payload)),
		ContentLength: int64(len(payload)),
		Request:       req,
	}, nil
}

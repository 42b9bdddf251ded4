package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/midirect/config"
	"github.com/jsphweid/midirect/model"
	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func midiBody(t *testing.T) io.Reader {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 80))
	tr.Add(0, gomidi.NoteOn(0, 64, 80))
	tr.Add(480, gomidi.NoteOff(0, 60))
	tr.Add(0, gomidi.NoteOff(0, 64))
	tr.Close(0)
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func router() http.Handler {
	return NewRouter(config.Default(), charmlog.New(io.Discard))
}

func TestConvertEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert?layout=narrow", midiBody(t))
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(respBody)), "\n")

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("text/csv", resp.Header.Get("Content-Type"))
	assert.Len(lines, 7)
	assert.Equal("note,0,480,60:80,C5,C5,0.0913,3", lines[5])
	assert.Equal("note,0,480,64:80,E5,E5,0.0913,", lines[6])
}

func TestConvertEndpointRejectsBadLayout(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert?layout=tall", midiBody(t))
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	var errResp model.ErrorResponse
	err := json.NewDecoder(w.Result().Body).Decode(&errResp)

	assert := assert.New(t)
	assert.Equal(400, w.Result().StatusCode)
	assert.Nil(err)
	assert.Contains(errResp.Error, "tall")
}

func TestConvertEndpointRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader("not midi"))
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	assert.New(t).Equal(400, w.Result().StatusCode)
}

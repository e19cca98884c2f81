package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleNotam = `B0025/22 NOTAMR B0528/21
Q) EGTT/QMRLC/IV/NBO/A/000/999/5129N00028W005
A) EGLL
B) 2201010700 C) 2203311500
E) RWY 09R/27L CLSD DUE WIP
CREATED: 24 Dec 2021 09:04:00
SOURCE: EUECYIYN`

func TestHandleHealth(t *testing.T) {
	srv := NewServer(nil, Config{})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestHandleParse(t *testing.T) {
	srv := NewServer(nil, Config{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(sampleNotam))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var resp ParseResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data["id"] != "B0025/22" {
		t.Errorf("id = %v", resp.Data["id"])
	}
	if resp.Data["subject"] != "runway" {
		t.Errorf("subject = %v", resp.Data["subject"])
	}
}

func TestHandleParseJSONBody(t *testing.T) {
	srv := NewServer(nil, Config{})
	payload, _ := json.Marshal(map[string]string{"text": sampleNotam})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(string(payload)))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	// A JSON body without the text field is a client error.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(`{"message": "x"}`))
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandleParseInvalid(t *testing.T) {
	srv := NewServer(nil, Config{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader("NOT A NOTAM"))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] == "" {
		t.Error("error message missing")
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv := NewServer(nil, Config{AuthEnabled: true, APIKeys: []string{"secret"}})
	router := srv.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-API-Key", "wrong")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d", rec.Code)
	}

	for _, set := range []func(*http.Request){
		func(r *http.Request) { r.Header.Set("X-API-Key", "secret") },
		func(r *http.Request) { r.Header.Set("Authorization", "Bearer secret") },
	} {
		rec = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/health", nil)
		set(req)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("valid key: status = %d", rec.Code)
		}
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health?api_key=secret", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("query key: status = %d", rec.Code)
	}
}

func TestURLNotamID(t *testing.T) {
	if got := urlNotamID("a0135-20"); got != "A0135/20" {
		t.Errorf("urlNotamID = %s", got)
	}
	if got := urlNotamID("A0135/20"); got != "A0135/20" {
		t.Errorf("urlNotamID = %s", got)
	}
}

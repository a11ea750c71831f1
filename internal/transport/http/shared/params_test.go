package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLimitParam(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want int
	}{
		{"absent", "/activities/recent", 10},
		{"valid", "/activities/recent?limit=3", 3},
		{"zero", "/activities/recent?limit=0", 0},
		{"negative", "/activities/recent?limit=-1", 10},
		{"garbage", "/activities/recent?limit=lots", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if got := LimitParam(req, 10); got != tc.want {
				t.Fatalf("LimitParam(%q) = %d, want %d", tc.url, got, tc.want)
			}
		})
	}
}

func TestDecodeBodyRejectsNonObjects(t *testing.T) {
	for _, body := range []string{"", "not json", "null"} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if _, err := DecodeBody(req); err == nil {
			t.Fatalf("expected error for body %q", body)
		}
	}
}

func TestDecodeBodyAcceptsObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
	values, err := DecodeBody(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["title"] != "x" {
		t.Fatalf("unexpected values: %v", values)
	}
}

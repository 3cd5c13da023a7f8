package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"john@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"no-at-sign.example.com", false},
		{"john@example", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Passw0rd!", true},
		{"abcDEF1", true},
		{"abcdef", false},
		{"Ab1!", false},
		{"ABCDEF!!", false},
	}
	for _, tt := range tests {
		if got := IsValidPassword(tt.password); got != tt.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\n\t "} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	if IsBlank(" x ") {
		t.Error(`IsBlank(" x ") = true`)
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 10},
		{"page=3&limit=25", 3, 25},
		{"page=0&limit=-4", 1, 10},
		{"page=abc&limit=x", 1, 10},
		{"limit=1000", 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/comments?"+tt.query, nil)

			page, limit := ParsePagination(c)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("ParsePagination(%q) = %d/%d, want %d/%d", tt.query, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestSendPaginatedMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendPaginated(c, "ok", []string{"a"}, 2, 10, 25)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body PaginatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != StatusSuccess || body.StatusCode != http.StatusOK {
		t.Errorf("envelope = %+v", body.SuccessResponse)
	}
	if body.Meta.TotalPages != 3 || !body.Meta.HasMore {
		t.Errorf("meta = %+v, want 3 pages with more", body.Meta)
	}
}

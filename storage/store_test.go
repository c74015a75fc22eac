package storage

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"poster.png", "poster.png"},
		{"barangay fiesta (final).png", "barangay_fiesta_final_.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\clerk\photo.jpg`, "photo.jpg"},
		{"..hidden..", "hidden"},
		{"résumé.pdf", "r_sum_.pdf"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeObjectName(t *testing.T) {
	before := time.Now().Unix()
	name := MakeObjectName("notice board.png")
	after := time.Now().Unix()

	i := strings.IndexByte(name, '_')
	if i < 0 {
		t.Fatalf("object name %q missing timestamp prefix", name)
	}
	ts, err := strconv.ParseInt(name[:i], 10, 64)
	if err != nil || ts < before || ts > after {
		t.Errorf("timestamp prefix %q not in [%d, %d]", name[:i], before, after)
	}
	if name[i+1:] != "notice_board.png" {
		t.Errorf("suffix = %q, want sanitized filename", name[i+1:])
	}
}

func TestObjectNameFromURL(t *testing.T) {
	cases := []struct {
		url, bucket, want string
	}{
		{"https://cdn.example.com/bulletin-images/1700_a.png", "bulletin-images", "1700_a.png"},
		{"https://cdn.example.com/bulletin-images/1700_a.png?download=1", "bulletin-images", "1700_a.png"},
		{"https://cdn.example.com/news-and-events-images/1700_a.png", "bulletin-images", ""},
		{"https://cdn.example.com/bulletin-images/", "bulletin-images", ""},
		{"", "bulletin-images", ""},
	}
	for _, c := range cases {
		if got := ObjectNameFromURL(c.url, c.bucket); got != c.want {
			t.Errorf("ObjectNameFromURL(%q, %q) = %q, want %q", c.url, c.bucket, got, c.want)
		}
	}
}

func TestRemoveOK(t *testing.T) {
	msg := "denied"
	cases := []struct {
		name    string
		results []RemoveResult
		want    bool
	}{
		// empty result sequence counts as success
		{"empty", nil, true},
		{"all-clean", []RemoveResult{{Name: "a"}, {Name: "b"}}, true},
		{"one-error", []RemoveResult{{Name: "a"}, {Name: "b", Error: &msg}}, false},
		{"only-error", []RemoveResult{{Name: "a", Error: &msg}}, false},
	}
	for _, c := range cases {
		if got := RemoveOK(c.results); got != c.want {
			t.Errorf("%s: RemoveOK = %v, want %v", c.name, got, c.want)
		}
	}
}

func ExampleObjectNameFromURL() {
	url := "https://cdn.example.com/bulletin-images/1700000000_notice.png"
	fmt.Println(ObjectNameFromURL(url, "bulletin-images"))
	// Output: 1700000000_notice.png
}

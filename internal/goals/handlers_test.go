package goals

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// pageTitle returns the text of the first <title> element in body.
func pageTitle(t *testing.T, body io.Reader) string {
	t.Helper()
	doc, err := html.Parse(body)
	if err != nil {
		t.Fatalf("Failed to parse page: %v", err)
	}
	var title string
	var found bool
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			found = true
			if n.FirstChild != nil {
				title = n.FirstChild.Data
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if !found {
		t.Fatal("page has no <title>")
	}
	return title
}

func get(t *testing.T, store *Store, logger *zerolog.Logger) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	IndexHandler(store, logger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func post(t *testing.T, store *Store, logger *zerolog.Logger, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/goal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	UpdateGoalHandler(store, logger).ServeHTTP(rec, req)
	return rec
}

func TestIndexDefaultGoal(t *testing.T) {
	logger := zerolog.Nop()
	rec := get(t, NewStore("Learn DevOps"), &logger)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if got := pageTitle(t, rec.Body); got != "Learn DevOps" {
		t.Errorf("title = %q, want %q", got, "Learn DevOps")
	}
}

func TestIndexFixedContent(t *testing.T) {
	logger := zerolog.Nop()
	body := get(t, NewStore("anything"), &logger).Body.String()

	for _, want := range []string{
		"Learning DevOps From Scratch",
		"Learn how to containerize applications",
		"Learn how to orchestrate containers",
		"Learn how to automate the deployment process",
		"href='style.css'",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestUpdateThenIndex(t *testing.T) {
	logger := zerolog.Nop()
	store := NewStore("Learn DevOps")

	rec := post(t, store, &logger, "goal=Learn+Rust")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}

	if got := pageTitle(t, get(t, store, &logger).Body); got != "Learn Rust" {
		t.Errorf("title = %q, want %q", got, "Learn Rust")
	}
}

func TestUpdateEmptyBody(t *testing.T) {
	logger := zerolog.Nop()
	store := NewStore("Learn DevOps")

	rec := post(t, store, &logger, "")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := store.Get(); got != "" {
		t.Errorf("goal = %q, want empty", got)
	}
	if got := pageTitle(t, get(t, store, &logger).Body); got != "" {
		t.Errorf("title = %q, want empty", got)
	}
}

func TestUpdateMalformedBody(t *testing.T) {
	logger := zerolog.Nop()
	store := NewStore("Learn DevOps")

	rec := post(t, store, &logger, "goal=%zz")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := store.Get(); got != "" {
		t.Errorf("goal = %q, want empty", got)
	}
}

func TestIndexEscapesGoal(t *testing.T) {
	logger := zerolog.Nop()
	store := NewStore("</title><script>alert(1)</script>")

	body := get(t, store, &logger).Body.String()
	if strings.Contains(body, "<script>") {
		t.Errorf("goal was rendered unescaped: %s", body)
	}
	if got := pageTitle(t, strings.NewReader(body)); got != store.Get() {
		t.Errorf("title = %q, want %q", got, store.Get())
	}
}

func TestUpdateLogsEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	store := NewStore("Learn DevOps")

	post(t, store, &logger, "goal=Learn+Go")

	out := buf.String()
	if !strings.Contains(out, `"event":"goal_updated"`) {
		t.Errorf("missing goal_updated event in %s", out)
	}
	if !strings.Contains(out, `"changed":true`) {
		t.Errorf("missing changed flag in %s", out)
	}
}

func TestConcurrentUpdates(t *testing.T) {
	logger := zerolog.Nop()
	store := NewStore("Learn DevOps")

	values := []string{"Learn Rust", "Learn Go", "Learn Kubernetes", "Learn Terraform"}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, v := range values {
			wg.Add(1)
			go func(v string) {
				defer wg.Done()
				post(t, store, &logger, "goal="+strings.ReplaceAll(v, " ", "+"))
			}(v)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			get(t, store, &logger)
		}()
	}
	wg.Wait()

	got := store.Get()
	for _, v := range values {
		if got == v {
			return
		}
	}
	t.Errorf("goal = %q, want one of %v", got, values)
}

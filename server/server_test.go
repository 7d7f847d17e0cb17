package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ashisht1812/Fotush-Web/internal/config"
	"github.com/ashisht1812/Fotush-Web/internal/content"
	"github.com/ashisht1812/Fotush-Web/internal/database"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"
	"github.com/ashisht1812/Fotush-Web/internal/ui"
)

type MockDatabase struct {
	database.Database
	getErr    error
	updateErr error
}

func (m *MockDatabase) GetVisitor(ctx context.Context, id string) (ui.State, error) {
	if m.getErr != nil {
		return ui.State{}, m.getErr
	}
	return m.Database.GetVisitor(ctx, id)
}

func (m *MockDatabase) UpdateVisitor(ctx context.Context, id string, fn func(*ui.State) error) (ui.State, error) {
	if m.updateErr != nil {
		return ui.State{}, m.updateErr
	}
	return m.Database.UpdateVisitor(ctx, id, fn)
}

func testConfig() config.Config {
	return config.Config{
		Port:           "8080",
		SessionTTL:     time.Hour,
		RateLimit:      10000,
		RequestTimeout: 5 * time.Second,
		PurgeInterval:  time.Minute,
	}
}

func newTestServer(db database.Database) *Server {
	site := content.Site()
	if db == nil {
		db = database.NewMemory(time.Hour, len(site.Testimonials))
	}
	assets := fstest.MapFS{
		"static/robots.txt": {Data: []byte("User-agent: *\n")},
		"static/site.css":   {Data: []byte("body{}")},
	}
	return NewServer("test", testConfig(), http.FS(assets), site, db)
}

type client struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func newClient(t *testing.T, s *Server) *client {
	return &client{t: t, handler: s.Routes()}
}

func (c *client) do(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == visitorCookie {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) page() *goquery.Document {
	c.t.Helper()
	w := c.do("GET", "/", nil, false)
	if w.Code != http.StatusOK {
		c.t.Fatalf("expected status 200, got %d", w.Code)
	}
	return parse(c.t, w)
}

func parse(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	return doc
}

func TestFormatBuildVersion(t *testing.T) {
	version := FormatBuildVersion("1.0.0")
	if !strings.Contains(version, "1.0.0") {
		t.Errorf("expected version string to contain '1.0.0', got %q", version)
	}
	if !strings.Contains(version, "Go Version:") {
		t.Errorf("expected version string to contain 'Go Version:', got %q", version)
	}
}

func TestCreateVisitor(t *testing.T) {
	s := newTestServer(nil)

	token := s.createVisitor()
	if len(token) != 64 { // 32 bytes hex encoded = 64 chars
		t.Errorf("expected token length 64, got %d", len(token))
	}
	if !validVisitor(token) {
		t.Error("expected generated token to be valid")
	}
	if token == s.createVisitor() {
		t.Error("expected distinct tokens")
	}
	if validVisitor("invalid-token") {
		t.Error("expected invalid token to fail validation")
	}
	if validVisitor(strings.Repeat("z", 64)) {
		t.Error("expected non-hex token to fail validation")
	}
}

func TestGetVisitorFromRequest(t *testing.T) {
	s := newTestServer(nil)

	// No cookie
	req := httptest.NewRequest("GET", "/", nil)
	if token := s.getVisitorFromRequest(req); token != "" {
		t.Errorf("expected empty token, got %q", token)
	}

	// Malformed cookie
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: visitorCookie, Value: "test-token"})
	if token := s.getVisitorFromRequest(req); token != "" {
		t.Errorf("expected malformed token to be ignored, got %q", token)
	}

	// Valid cookie
	valid := s.createVisitor()
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: visitorCookie, Value: valid})
	if token := s.getVisitorFromRequest(req); token != valid {
		t.Errorf("expected %q, got %q", valid, token)
	}
}

func TestRequireVisitorMiddleware(t *testing.T) {
	s := newTestServer(nil)

	var seen string
	handler := s.RequireVisitor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = visitorFromContext(r.Context())
	}))

	// Without cookie a token is issued
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !validVisitor(seen) {
		t.Fatalf("expected a valid visitor in context, got %q", seen)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != seen || !cookies[0].HttpOnly {
		t.Errorf("expected HttpOnly visitor cookie %q, got %+v", seen, cookies)
	}

	// With cookie the same token is kept
	first := seen
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: visitorCookie, Value: first})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != first {
		t.Errorf("expected visitor %q to be kept, got %q", first, seen)
	}
}

func TestHandleIndex(t *testing.T) {
	c := newClient(t, newTestServer(nil))
	doc := c.page()

	if c.cookie == nil {
		t.Fatal("expected visitor cookie to be set")
	}
	if doc.Find("#"+routepath.HeaderID).Length() != 1 {
		t.Error("expected header to be rendered")
	}
	if doc.Find("#mobile-menu").Length() != 0 {
		t.Error("expected menu to start collapsed")
	}
	if v := doc.Find("input#location").AttrOr("value", "missing"); v != "" {
		t.Errorf("expected empty location, got %q", v)
	}
	if name := doc.Find(".testimonial .author").Text(); name != "Sarah Johnson" {
		t.Errorf("expected first testimonial, got %q", name)
	}
}

func TestHandleIndexStoreError(t *testing.T) {
	site := content.Site()
	db := &MockDatabase{
		Database: database.NewMemory(time.Hour, len(site.Testimonials)),
		getErr:   errors.New("db down"),
	}
	c := newClient(t, newTestServer(db))

	w := c.do("GET", "/", nil, false)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestToggleMenu(t *testing.T) {
	c := newClient(t, newTestServer(nil))
	c.page()

	w := c.do("POST", routepath.Menu, url.Values{}, false)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect status 303, got %d", w.Code)
	}
	if doc := c.page(); doc.Find("#mobile-menu").Length() != 1 {
		t.Error("expected menu to be expanded after one toggle")
	}

	w = c.do("POST", routepath.Menu, url.Values{}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for htmx, got %d", w.Code)
	}
	frag := parse(t, w)
	if frag.Find("#"+routepath.HeaderID).Length() != 1 {
		t.Error("expected header fragment")
	}
	if frag.Find("#mobile-menu").Length() != 0 {
		t.Error("expected menu to be collapsed after two toggles")
	}
}

func TestBindLocation(t *testing.T) {
	c := newClient(t, newTestServer(nil))
	c.page()

	for _, v := range []string{"a", "ab", "abc"} {
		w := c.do("POST", routepath.Location, url.Values{"location": {v}}, true)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", w.Code)
		}
	}

	if v := c.page().Find("input#location").AttrOr("value", ""); v != "abc" {
		t.Errorf("expected location 'abc', got %q", v)
	}

	w := c.do("POST", routepath.Location, url.Values{"location": {""}}, false)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect status 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/#hero" {
		t.Errorf("expected redirect to /#hero, got %q", loc)
	}
	if v := c.page().Find("input#location").AttrOr("value", "missing"); v != "" {
		t.Errorf("expected location to be cleared, got %q", v)
	}
}

func TestVisitorsAreIndependent(t *testing.T) {
	s := newTestServer(nil)
	a := newClient(t, s)
	b := newClient(t, s)
	a.page()
	b.page()

	a.do("POST", routepath.Menu, url.Values{}, false)
	a.do("POST", routepath.TestimonialsNext, url.Values{}, false)

	doc := b.page()
	if doc.Find("#mobile-menu").Length() != 0 {
		t.Error("expected other visitor's menu to stay collapsed")
	}
	if name := doc.Find(".testimonial .author").Text(); name != "Sarah Johnson" {
		t.Errorf("expected other visitor's carousel to stay at 0, got %q", name)
	}
}

func TestCarouselScenario(t *testing.T) {
	site := content.Site()
	c := newClient(t, newTestServer(nil))
	c.page()

	check := func(doc *goquery.Document, want int) {
		t.Helper()
		rec := site.Testimonials[want]
		card := doc.Find("#" + routepath.CarouselID + " .testimonial")
		if card.Length() != 1 {
			t.Fatalf("expected one testimonial card, got %d", card.Length())
		}
		if got := card.Find(".author").Text(); got != rec.Name {
			t.Errorf("cursor %d: expected author %q, got %q", want, rec.Name, got)
		}
		if got := card.Find(".star-filled").Length(); got != rec.Rating {
			t.Errorf("cursor %d: expected %d stars, got %d", want, rec.Rating, got)
		}
		if !strings.Contains(card.Find(".quote").Text(), rec.Quote) {
			t.Errorf("cursor %d: quote does not match %q", want, rec.Name)
		}
		if got := card.Find("img.avatar").AttrOr("src", ""); got != rec.AvatarURL {
			t.Errorf("cursor %d: avatar mismatch", want)
		}
		if got := card.Find("img.sample").AttrOr("src", ""); got != rec.SampleImageURL {
			t.Errorf("cursor %d: sample image mismatch", want)
		}
	}

	check(c.page(), 0)

	wantNames := []string{"Michael Chen", "Emily Rodriguez", "Sarah Johnson"}
	wantRatings := []int{5, 4, 5}
	for i, want := range []int{1, 2, 0} {
		w := c.do("POST", routepath.TestimonialsNext, url.Values{}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		frag := parse(t, w)
		check(frag, want)
		if got := frag.Find(".author").Text(); got != wantNames[i] {
			t.Errorf("step %d: expected %q, got %q", i, wantNames[i], got)
		}
		if got := frag.Find(".star-filled").Length(); got != wantRatings[i] {
			t.Errorf("step %d: expected rating %d, got %d", i, wantRatings[i], got)
		}
	}
}

func TestPrevTestimonialWrapsFromFirst(t *testing.T) {
	c := newClient(t, newTestServer(nil))
	c.page()

	w := c.do("POST", routepath.TestimonialsPrev, url.Values{}, false)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect status 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/#testimonials" {
		t.Errorf("expected redirect to /#testimonials, got %q", loc)
	}
	if name := c.page().Find(".testimonial .author").Text(); name != "Emily Rodriguez" {
		t.Errorf("expected last testimonial, got %q", name)
	}
}

func TestJumpTestimonial(t *testing.T) {
	c := newClient(t, newTestServer(nil))
	c.page()

	for _, k := range []string{"2", "0", "1"} {
		w := c.do("POST", routepath.TestimonialsJump, url.Values{"index": {k}}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if got := parse(t, w).Find("#" + routepath.CarouselID).AttrOr("data-cursor", ""); got != k {
			t.Errorf("expected cursor %s, got %s", k, got)
		}
	}
}

func TestJumpTestimonialRejectsBadIndex(t *testing.T) {
	c := newClient(t, newTestServer(nil))
	c.page()
	c.do("POST", routepath.TestimonialsJump, url.Values{"index": {"1"}}, false)

	for _, k := range []string{"3", "-1", "x", ""} {
		w := c.do("POST", routepath.TestimonialsJump, url.Values{"index": {k}}, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("index %q: expected status 400, got %d", k, w.Code)
		}
	}

	if got := c.page().Find("#" + routepath.CarouselID).AttrOr("data-cursor", ""); got != "1" {
		t.Errorf("expected cursor to stay at 1, got %s", got)
	}
}

func TestUpdateStoreError(t *testing.T) {
	site := content.Site()
	db := &MockDatabase{
		Database:  database.NewMemory(time.Hour, len(site.Testimonials)),
		updateErr: errors.New("db down"),
	}
	c := newClient(t, newTestServer(db))

	w := c.do("POST", routepath.TestimonialsNext, url.Values{}, false)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestUIRoutesRequirePost(t *testing.T) {
	c := newClient(t, newTestServer(nil))

	w := c.do("GET", routepath.Menu, nil, false)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestNotFoundRedirectsHome(t *testing.T) {
	c := newClient(t, newTestServer(nil))

	w := c.do("GET", "/admin", nil, false)
	if w.Code != http.StatusMovedPermanently {
		t.Errorf("expected status 301, got %d", w.Code)
	}
}

func TestHealthAndAssets(t *testing.T) {
	c := newClient(t, newTestServer(nil))

	if w := c.do("GET", routepath.Health, nil, false); w.Code != http.StatusOK {
		t.Errorf("expected health 200, got %d", w.Code)
	}

	w := c.do("GET", routepath.Robots, nil, false)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "User-agent") {
		t.Errorf("expected robots.txt, got %d %q", w.Code, w.Body.String())
	}

	w = c.do("GET", routepath.Static+"/site.css", nil, false)
	if w.Code != http.StatusOK {
		t.Errorf("expected stylesheet 200, got %d", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=86400") {
		t.Errorf("expected long cache for static files, got %q", cc)
	}

	if w := c.do("GET", routepath.Favicon, nil, false); w.Code != http.StatusNotFound {
		t.Errorf("expected missing favicon to 404, got %d", w.Code)
	}
}

func TestCacheControlMiddleware(t *testing.T) {
	s := newTestServer(nil)

	handler := s.cacheControl(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Static file request
	req := httptest.NewRequest("GET", "/static/site.css", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cacheHeader := w.Header().Get("Cache-Control")
	if !strings.Contains(cacheHeader, "max-age=86400") {
		t.Errorf("expected cache header for static files, got %q", cacheHeader)
	}

	// Non-static request
	req = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cacheHeader = w.Header().Get("Cache-Control")
	if !strings.Contains(cacheHeader, "no-cache") {
		t.Errorf("expected no-cache for non-static, got %q", cacheHeader)
	}
}

func TestPurgeLoopStopsWithContext(t *testing.T) {
	s := newTestServer(nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.PurgeLoop(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PurgeLoop did not stop after cancel")
	}
}

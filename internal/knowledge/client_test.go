package knowledge

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"atlas/pkg/platform/sentinel"
	"atlas/pkg/testutil"
)

type ClientSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

// fakeWiki serves the three MediaWiki query shapes the client issues.
type fakeWiki struct {
	title    string
	intro    string
	fullText string
	wikitext string

	searchCalls  atomic.Int64
	extractCalls atomic.Int64
}

func (f *fakeWiki) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("list") == "search":
			f.searchCalls.Add(1)
			if f.title == "" {
				fmt.Fprint(w, `{"query":{"search":[]}}`)
				return
			}
			fmt.Fprintf(w, `{"query":{"search":[{"title":%q}]}}`, f.title)
		case q.Get("prop") == "extracts":
			f.extractCalls.Add(1)
			extract := f.fullText
			if q.Get("exintro") != "" {
				extract = f.intro
			}
			fmt.Fprintf(w, `{"query":{"pages":{"1":{"extract":%q}}}}`, extract)
		case q.Get("prop") == "revisions":
			fmt.Fprintf(w, `{"query":{"pages":{"1":{"revisions":[{"slots":{"main":{"content":%q}}}]}}}}`, f.wikitext)
		default:
			http.Error(w, "unexpected query", http.StatusBadRequest)
		}
	}
}

func (s *ClientSuite) TestLookup() {
	wiki := &fakeWiki{
		title:    "Tycho (lunar crater)",
		intro:    "Tycho is a prominent lunar impact crater.",
		fullText: "Tycho is a prominent lunar impact crater. It formed about 108 million years ago.",
		wikitext: "{{Infobox lunar crater\n| diameter = 85 km\n}}",
	}
	srv := httptest.NewServer(wiki.handler())
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.Lookup(testutil.Context(s.T()), "Tycho")
	s.Require().NoError(err)

	s.Equal("Tycho (lunar crater)", page.Title)
	s.Equal(wiki.intro, page.Intro)
	s.Equal(wiki.fullText, page.FullText)
	s.Equal("85 km", page.Infobox["diameter"])
	s.Contains(page.URL, "Tycho")

	s.Run("one search, two extract requests", func() {
		s.Equal(int64(1), wiki.searchCalls.Load())
		s.Equal(int64(2), wiki.extractCalls.Load())
	})
}

func (s *ClientSuite) TestLookupMisses() {
	s.Run("no search result is not found", func() {
		wiki := &fakeWiki{}
		srv := httptest.NewServer(wiki.handler())
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.Lookup(testutil.Context(s.T()), "Nonexistent Feature")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("server error is unavailable", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.Lookup(testutil.Context(s.T()), "Tycho")
		s.ErrorIs(err, sentinel.ErrUnavailable)
	})

	s.Run("malformed payload", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "<html>not json</html>")
		}))
		defer srv.Close()

		c := NewClient(srv.URL)
		_, err := c.Lookup(testutil.Context(s.T()), "Tycho")
		s.ErrorIs(err, sentinel.ErrMalformed)
	})

	s.Run("missing infobox degrades, lookup still succeeds", func() {
		wiki := &fakeWiki{title: "Gale (crater)", intro: "Gale is a crater on Mars."}
		srv := httptest.NewServer(wiki.handler())
		defer srv.Close()

		c := NewClient(srv.URL)
		page, err := c.Lookup(testutil.Context(s.T()), "Gale")
		s.Require().NoError(err)
		s.Empty(page.Infobox)
	})
}

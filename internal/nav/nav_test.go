package nav

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	links := Default().Links()
	assert.Equal(t, []Link{
		{Href: "/", Label: "Home"},
		{Href: "/publications-research-projects", Label: "Publications & Projects"},
		{Href: "/art", Label: "Art"},
		{Href: "/experience", Label: "Experience"},
	}, links)
}

func TestLinks_ReturnsCopy(t *testing.T) {
	m := Default()
	links := m.Links()
	links[0].Label = "Changed"
	assert.Equal(t, "Home", m.Links()[0].Label)
}

func TestNew_DerivesLabels(t *testing.T) {
	m, err := New([]Link{
		{Href: "/"},
		{Href: "/publications-research-projects"},
		{Href: "/art/", Label: "Gallery"},
		{Href: "https://github.com/someone"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{Href: "/", Label: "Home"},
		{Href: "/publications-research-projects", Label: "Publications Research Projects"},
		{Href: "/art/", Label: "Gallery"},
		{Href: "https://github.com/someone", Label: "Someone"},
	}, m.Links())
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		links []Link
	}{
		{"empty href", []Link{{Label: "x"}}},
		{"relative href", []Link{{Href: "art"}}},
		{"protocol relative", []Link{{Href: "//cdn.example.com"}}},
		{"duplicate", []Link{{Href: "/art"}, {Href: "/art", Label: "Again"}}},
		{"scheme without host", []Link{{Href: "mailto:me@example.com"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.links)
			assert.Error(t, err)
		})
	}
}

func TestActive(t *testing.T) {
	m, err := New([]Link{
		{Href: "/", Label: "Home"},
		{Href: "/art", Label: "Art"},
		{Href: "/art/digital", Label: "Digital"},
		{Href: "https://example.com/art", Label: "External"},
	})
	require.NoError(t, err)

	tests := []struct {
		path  string
		label string
		ok    bool
	}{
		{"/", "Home", true},
		{"", "Home", true},
		{"/art", "Art", true},
		{"/art/", "Art", true},
		{"/art/sunset", "Art", true},
		{"/art/digital/glitch", "Digital", true},
		{"/artists", "", false},
		{"/experience", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, ok := m.Active(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, l.Label)
		})
	}
}

func TestDeriveLabel(t *testing.T) {
	assert.Equal(t, "Home", DeriveLabel("/"))
	assert.Equal(t, "Experience", DeriveLabel("/experience"))
	assert.Equal(t, "Art History", DeriveLabel("/about/art_history/"))
	assert.Equal(t, "example.com", DeriveLabel("https://example.com"))
}

func TestDeriveLabel_Concurrent(t *testing.T) {
	hrefs := map[string]string{
		"/publications-research-projects": "Publications Research Projects",
		"/art_history":                    "Art History",
		"/experience":                     "Experience",
	}
	var wg sync.WaitGroup
	for range 8 {
		for href, want := range hrefs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					if got := DeriveLabel(href); got != want {
						t.Errorf("DeriveLabel(%q) = %q, want %q", href, got, want)
						return
					}
				}
			}()
		}
	}
	wg.Wait()
}

package authpages

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority,omitempty"`
}

// CollectSitemap runs the sitemap generators of all plugins concurrently and
// returns their entries in plugin order.
func CollectSitemap(ctx context.Context, plugins ...*Plugin) ([]SitemapEntry, error) {
	results := make([][]SitemapEntry, len(plugins))
	g, ctx := errgroup.WithContext(ctx)
	for i, pl := range plugins {
		g.Go(func() error {
			entries, err := pl.Sitemap(ctx)
			if err != nil {
				return fmt.Errorf("sitemap %s: %w", pl.Name, err)
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

// WriteSitemap writes entries as a sitemaps.org urlset document.
func WriteSitemap(w io.Writer, entries []SitemapEntry) error {
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, e := range entries {
		u := sitemapURL{
			Loc:      e.URL,
			Priority: formatPriority(e.Priority),
		}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, u)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(set)
}

// formatPriority writes p with the fewest digits that parse back to p, and
// always at least one decimal.
func formatPriority(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// SitemapHandler serves the combined sitemap of plugins as XML.
func (p *Pages) SitemapHandler(plugins ...*Plugin) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := CollectSitemap(r.Context(), plugins...)
		if err != nil {
			p.onError(w, r, err)
			return
		}
		buf := getBuffer()
		defer releaseBuffer(buf)
		if err := WriteSitemap(buf, entries); err != nil {
			p.onError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})
}

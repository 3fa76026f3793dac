// Package imageurl rewrites CMS asset URLs into the image service's
// processing dialect (resize, format, quality, focal point). All
// functions are pure: no I/O, no state.
package imageurl

import (
	"fmt"
	"strings"
)

// DefaultAssetHost is the image service host whose URLs are transformable.
// URLs on any other host pass through unchanged.
const DefaultAssetHost = "a.storyblok.com"

// vectorExtensions never go through the raster pipeline.
var vectorExtensions = []string{".svg"}

// Options selects the transformations to apply. The zero value requests
// nothing and leaves the URL untouched.
type Options struct {
	Width   int
	Height  int
	FitIn   bool   // fit within bounds instead of cropping
	Format  string // webp, avif, png, jpeg
	Quality int    // 1-100
	Focal   string // "LxT:RxB" focal point from the asset
}

func (o Options) empty() bool {
	return o.Width == 0 && o.Height == 0 && o.Format == "" && o.Quality == 0
}

// Transformer builds processing URLs for one asset host.
type Transformer struct {
	host string
}

// New returns a Transformer for host. An empty host selects DefaultAssetHost.
func New(host string) *Transformer {
	if host == "" {
		host = DefaultAssetHost
	}
	return &Transformer{host: host}
}

// Transform rewrites raw into a processing URL per opt. It returns raw
// unchanged when the URL is off-host, points at a vector image, or opt
// requests nothing.
func (t *Transformer) Transform(raw string, opt Options) string {
	if raw == "" || opt.empty() {
		return raw
	}
	if !hostMatches(raw, t.host) {
		return raw
	}
	if isVector(raw) {
		return raw
	}

	base := raw
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimRight(base, "/")

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/m/")
	if opt.FitIn {
		b.WriteString("fit-in/")
	}
	fmt.Fprintf(&b, "%dx%d", opt.Width, opt.Height)

	// Filter order is fixed so identical inputs always yield identical
	// URLs: format, then quality, then focal point.
	var filters []string
	if opt.Format != "" {
		filters = append(filters, fmt.Sprintf("format(%s)", opt.Format))
	}
	if opt.Quality > 0 {
		filters = append(filters, fmt.Sprintf("quality(%d)", opt.Quality))
	}
	if opt.Focal != "" {
		filters = append(filters, fmt.Sprintf("focal(%s)", opt.Focal))
	}
	if len(filters) > 0 {
		b.WriteString("/filters:")
		b.WriteString(strings.Join(filters, ":"))
	}
	return b.String()
}

// Transform rewrites raw using the default asset host.
func Transform(raw string, opt Options) string {
	return defaultTransformer.Transform(raw, opt)
}

var defaultTransformer = New(DefaultAssetHost)

func hostMatches(raw, host string) bool {
	rest, ok := strings.CutPrefix(raw, "https://")
	if !ok {
		rest, ok = strings.CutPrefix(raw, "http://")
		if !ok {
			// Protocol-relative URLs occur in older asset records.
			rest, ok = strings.CutPrefix(raw, "//")
			if !ok {
				return false
			}
		}
	}
	return rest == host || strings.HasPrefix(rest, host+"/")
}

func isVector(raw string) bool {
	path := raw
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.ToLower(path)
	for _, ext := range vectorExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

package storyblok

import (
	"net/url"
	"strconv"
	"strings"
)

// Content versions exposed by the delivery API.
const (
	VersionDraft     = "draft"
	VersionPublished = "published"
)

// Params is the optional parameter bag for delivery API requests.
// The zero value requests the published version with no filters.
type Params struct {
	Version          string   // "draft" or "published"
	ResolveRelations []string // component.field references to resolve inline
	ResolveLinks     string   // "url", "story" or "link"
	StartsWith       string   // full_slug prefix filter (listings)
	SearchTerm       string   // full-text filter (listings)
	SortBy           string   // e.g. "position:asc" (listings)
	Page             int      // pagination (listings)
	PerPage          int      // pagination (listings)
	FallbackLang     string   // language fallback
	Language         string   // requested language
}

// Merge overlays non-zero fields of other onto a copy of p.
// Caller-supplied params win over layer defaults.
func (p Params) Merge(other Params) Params {
	merged := p
	if other.Version != "" {
		merged.Version = other.Version
	}
	if len(other.ResolveRelations) > 0 {
		merged.ResolveRelations = other.ResolveRelations
	}
	if other.ResolveLinks != "" {
		merged.ResolveLinks = other.ResolveLinks
	}
	if other.StartsWith != "" {
		merged.StartsWith = other.StartsWith
	}
	if other.SearchTerm != "" {
		merged.SearchTerm = other.SearchTerm
	}
	if other.SortBy != "" {
		merged.SortBy = other.SortBy
	}
	if other.Page > 0 {
		merged.Page = other.Page
	}
	if other.PerPage > 0 {
		merged.PerPage = other.PerPage
	}
	if other.FallbackLang != "" {
		merged.FallbackLang = other.FallbackLang
	}
	if other.Language != "" {
		merged.Language = other.Language
	}
	return merged
}

// values encodes the params as url.Values. url.Values.Encode sorts keys, so
// identical params always produce identical query strings; the response cache
// keys on the full URL and relies on that.
func (p Params) values(token string, cv int64) url.Values {
	v := url.Values{}
	v.Set("token", token)

	version := p.Version
	if version == "" {
		version = VersionPublished
	}
	v.Set("version", version)

	if cv > 0 {
		v.Set("cv", strconv.FormatInt(cv, 10))
	}
	if len(p.ResolveRelations) > 0 {
		v.Set("resolve_relations", strings.Join(p.ResolveRelations, ","))
	}
	if p.ResolveLinks != "" {
		v.Set("resolve_links", p.ResolveLinks)
	}
	if p.StartsWith != "" {
		v.Set("starts_with", p.StartsWith)
	}
	if p.SearchTerm != "" {
		v.Set("search_term", p.SearchTerm)
	}
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.FallbackLang != "" {
		v.Set("fallback_lang", p.FallbackLang)
	}
	if p.Language != "" {
		v.Set("language", p.Language)
	}
	return v
}

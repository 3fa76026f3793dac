package storyblok

// Story is one CMS content record: a page or a reusable content unit.
// The client treats a fetched story as an immutable value; Content is the
// polymorphic block tree keyed by the "component" discriminator.
type Story struct {
	ID               int64          `json:"id"`
	UUID             string         `json:"uuid"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	FullSlug         string         `json:"full_slug"`
	Content          map[string]any `json:"content"`
	CreatedAt        string         `json:"created_at,omitempty"`
	PublishedAt      string         `json:"published_at,omitempty"`
	FirstPublishedAt string         `json:"first_published_at,omitempty"`
	SortByDate       string         `json:"sort_by_date,omitempty"`
	TagList          []string       `json:"tag_list,omitempty"`
	IsStartpage      bool           `json:"is_startpage,omitempty"`
	ParentID         *int64         `json:"parent_id,omitempty"`
	GroupID          string         `json:"group_id,omitempty"`
	Lang             string         `json:"lang,omitempty"`
	Position         int            `json:"position,omitempty"`
	Alternates       []Alternate    `json:"alternates,omitempty"`
}

// Alternate references a translated or linked variant of a story.
type Alternate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	FullSlug string `json:"full_slug"`
	Lang     string `json:"lang,omitempty"`
}

// Asset is an uploaded file reference inside a content tree.
type Asset struct {
	ID         int64  `json:"id,omitempty"`
	Filename   string `json:"filename"`
	Alt        string `json:"alt,omitempty"`
	Title      string `json:"title,omitempty"`
	Copyright  string `json:"copyright,omitempty"`
	FocalPoint string `json:"focus,omitempty"`
	Fieldtype  string `json:"fieldtype,omitempty"`
}

// Link is a multilink field value pointing at a story, URL or email.
type Link struct {
	ID        string `json:"id,omitempty"`
	URL       string `json:"url,omitempty"`
	Linktype  string `json:"linktype,omitempty"`
	Fieldtype string `json:"fieldtype,omitempty"`
	CachedURL string `json:"cached_url,omitempty"`
}

// StoryResponse is the delivery API envelope for a single story.
type StoryResponse struct {
	Story *Story `json:"story"`
	CV    int64  `json:"cv,omitempty"`
}

// StoriesResponse is the delivery API envelope for a story listing.
// Total is populated from the Total response header.
type StoriesResponse struct {
	Stories []Story `json:"stories"`
	CV      int64   `json:"cv,omitempty"`
	Total   int     `json:"-"`
}

// apiError is the delivery API error body shape.
type apiError struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"-"`
}

package content

import (
	"github.com/mlehtin/storykit/internal/storyblok"
)

// StoryResult is the safe-fetch envelope for a single story. On any
// terminal return exactly one of Story and Err is populated, except the
// offline/no-fixture case which carries Err with a 404 Status. Callers
// cannot tell fixture-backed results from live ones; that opacity is the
// point of the layer.
type StoryResult struct {
	Story  *storyblok.Story
	Err    error
	Status int
}

// OK reports whether the result carries a story.
func (r StoryResult) OK() bool {
	return r.Story != nil && r.Err == nil
}

// StoriesResult is the safe-fetch envelope for a story listing. Stories is
// never nil; failures yield an empty slice plus the captured error.
type StoriesResult struct {
	Stories []storyblok.Story
	Err     error
	Total   int
}

// OK reports whether the listing succeeded.
func (r StoriesResult) OK() bool {
	return r.Err == nil
}

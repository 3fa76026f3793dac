package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderCarriesMetadata(t *testing.T) {
	t.Parallel()

	err := Newf("upstream returned status %d", 502).
		Category(CategoryNetwork).
		Component("storyblok").
		Context("operation", "get_story").
		StatusCode(502).
		Build()

	assert.Equal(t, "upstream returned status 502", err.Error())
	assert.Equal(t, CategoryNetwork, err.Category)
	assert.Equal(t, "storyblok", err.GetComponent())
	assert.Equal(t, "get_story", err.GetContext()["operation"])
	assert.Equal(t, 502, err.GetContext()["status_code"])
	assert.False(t, err.GetTimestamp().IsZero())
}

func TestBuilderDefaultsToGenericCategory(t *testing.T) {
	t.Parallel()

	err := Newf("something broke").Build()
	assert.Equal(t, CategoryGeneric, err.Category)
}

func TestGetContextReturnsCopy(t *testing.T) {
	t.Parallel()

	err := Newf("boom").Context("key", "value").Build()
	ctx := err.GetContext()
	ctx["key"] = "mutated"
	assert.Equal(t, "value", err.GetContext()["key"])
}

func TestUnwrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := NewStd("root cause")
	err := New(fmt.Errorf("fetch failed: %w", cause)).
		Category(CategoryNetwork).
		Build()

	assert.True(t, Is(err, cause))
}

func TestCategoryForStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   ErrorCategory
	}{
		{http.StatusUnauthorized, CategoryConfiguration},
		{http.StatusForbidden, CategoryConfiguration},
		{http.StatusNotFound, CategoryNotFound},
		{http.StatusTooManyRequests, CategoryLimit},
		{http.StatusInternalServerError, CategoryNetwork},
		{http.StatusBadGateway, CategoryNetwork},
		{http.StatusServiceUnavailable, CategoryNetwork},
		{http.StatusBadRequest, CategoryHTTP},
		{http.StatusConflict, CategoryHTTP},
	}
	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, CategoryForStatus(tt.status), "status %d", tt.status)
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unclassified error",
			err:  NewStd("connection reset"),
			want: true,
		},
		{
			name: "network category",
			err:  Newf("bad gateway").Category(CategoryNetwork).StatusCode(502).Build(),
			want: true,
		},
		{
			name: "rate limit",
			err:  Newf("slow down").Category(CategoryLimit).StatusCode(429).Build(),
			want: true,
		},
		{
			name: "configuration",
			err:  Newf("bad token").Category(CategoryConfiguration).StatusCode(401).Build(),
			want: false,
		},
		{
			name: "not found",
			err:  Newf("missing").Category(CategoryNotFound).StatusCode(404).Build(),
			want: false,
		},
		{
			name: "validation",
			err:  Newf("bad shape").Category(CategoryValidation).Build(),
			want: false,
		},
		{
			name: "client error without category",
			err:  Newf("bad request").Category(CategoryHTTP).StatusCode(400).Build(),
			want: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	withStatus := Newf("bad gateway").Category(CategoryNetwork).StatusCode(502).Build()
	assert.Equal(t, 502, HTTPStatus(withStatus, 500))

	notFound := Newf("missing").Category(CategoryNotFound).Build()
	assert.Equal(t, http.StatusNotFound, HTTPStatus(notFound, 500))

	bare := NewStd("no metadata")
	assert.Equal(t, 500, HTTPStatus(bare, 500))

	wrapped := fmt.Errorf("outer: %w", withStatus)
	assert.Equal(t, 502, HTTPStatus(wrapped, 500))
}

func TestIsCategoryHelpers(t *testing.T) {
	t.Parallel()

	notFound := Newf("missing").Category(CategoryNotFound).Build()
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsCategory(notFound, CategoryNotFound))
	assert.False(t, IsCategory(notFound, CategoryNetwork))
	assert.False(t, IsNotFound(NewStd("plain")))

	wrapped := fmt.Errorf("outer: %w", notFound)
	assert.True(t, IsNotFound(wrapped), "category checks see through wrapping")
}

func TestComponentAutoDetection(t *testing.T) {
	t.Parallel()

	err := Newf("no component set").Build()
	component := err.GetComponent()
	require.NotEmpty(t, component)
	// Repeated calls are stable once detected.
	assert.Equal(t, component, err.GetComponent())
}

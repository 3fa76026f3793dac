package schema

import (
	"encoding/json"
	"fmt"
)

// DefaultSiteSettings returns the hardcoded settings used when neither the
// CMS nor any cache can provide a value. The values are deliberately bland:
// they keep a page renderable, nothing more.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Component: string(ComponentSiteSettings),
		SiteName:  "Storykit",
		Tagline:   "Content without downtime",
		Copyright: "© Storykit",
	}
}

// SiteSettingsFromContent decodes a validated site_settings content tree
// into the typed declaration.
func SiteSettingsFromContent(content map[string]any) (SiteSettings, error) {
	var settings SiteSettings

	raw, err := json.Marshal(content)
	if err != nil {
		return settings, fmt.Errorf("encoding settings content: %w", err)
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return settings, fmt.Errorf("decoding settings content: %w", err)
	}

	if settings.SiteName == "" {
		return settings, fmt.Errorf("settings content has no site_name")
	}
	return settings, nil
}

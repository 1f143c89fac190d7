package model

const maxRecentLayouts = 10

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// Room new sessions and "New Layout" start with
	DefaultRoom RoomDimensions `json:"default_room"`

	// Application preferences
	ShowBoundingBoxes bool     `json:"show_bounding_boxes"`
	HistoryDepth      int      `json:"history_depth"` // undo steps kept
	RecentLayouts     []string `json:"recent_layouts"`
	Theme             string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the built-in defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultRoom:       DefaultRoom(),
		ShowBoundingBoxes: false,
		HistoryDepth:      50,
		RecentLayouts:     []string{},
		Theme:             "system",
	}
}

// Normalize replaces missing or non-positive values with defaults.
func (c *AppConfig) Normalize() {
	defaults := DefaultAppConfig()
	if c.DefaultRoom.Width <= 0 || c.DefaultRoom.Length <= 0 || c.DefaultRoom.Height <= 0 {
		c.DefaultRoom = defaults.DefaultRoom
	}
	if c.HistoryDepth <= 0 {
		c.HistoryDepth = defaults.HistoryDepth
	}
	if c.RecentLayouts == nil {
		c.RecentLayouts = []string{}
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// AddRecentLayout moves path to the front of the recent list, dropping
// duplicates and keeping at most ten entries.
func (c *AppConfig) AddRecentLayout(path string) {
	recent := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path && len(recent) < maxRecentLayouts {
			recent = append(recent, p)
		}
	}
	c.RecentLayouts = recent
}

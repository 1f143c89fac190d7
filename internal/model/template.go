package model

import (
	"time"

	"github.com/google/uuid"
)

// LayoutTemplate is a saved room + furniture arrangement that can be
// re-used as the starting point of a new layout.
type LayoutTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Layout      Layout `json:"layout"`
}

// NewLayoutTemplate creates a new template from a copy of layout.
func NewLayoutTemplate(name, description string, layout Layout) LayoutTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return LayoutTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Layout:      layout.Clone(),
	}
}

// ToLayout creates a new Layout from this template. Items get fresh IDs
// derived from now so they never collide with the template's own IDs.
func (t LayoutTemplate) ToLayout(now time.Time) Layout {
	layout := t.Layout.Clone()
	for i := range layout.FurnitureItems {
		stamp := now.Add(time.Duration(i) * time.Millisecond)
		layout.FurnitureItems[i].ID = NewItemID(layout.FurnitureItems[i].Type, stamp)
	}
	return layout
}

// TemplateStore holds a collection of layout templates.
type TemplateStore struct {
	Templates []LayoutTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []LayoutTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t LayoutTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

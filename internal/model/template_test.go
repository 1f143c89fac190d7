package model

import (
	"strings"
	"testing"
	"time"
)

func TestNewLayoutTemplate(t *testing.T) {
	layout := DefaultLayout()

	tmpl := NewLayoutTemplate("Dining", "Dining room starter", layout)

	if tmpl.Name != "Dining" {
		t.Errorf("expected name 'Dining', got %q", tmpl.Name)
	}
	if tmpl.Description != "Dining room starter" {
		t.Errorf("expected description 'Dining room starter', got %q", tmpl.Description)
	}
	if len(tmpl.ID) != 8 {
		t.Errorf("expected 8 character ID, got %q", tmpl.ID)
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if len(tmpl.Layout.FurnitureItems) != len(layout.FurnitureItems) {
		t.Errorf("expected %d items, got %d", len(layout.FurnitureItems), len(tmpl.Layout.FurnitureItems))
	}
}

func TestNewLayoutTemplateCopiesItems(t *testing.T) {
	layout := DefaultLayout()
	tmpl := NewLayoutTemplate("Copy", "", layout)

	layout.FurnitureItems[0].Position[0] = 99
	layout.FurnitureItems[0].Scale[0] = 5

	if tmpl.Layout.FurnitureItems[0].Position[0] == 99 {
		t.Error("template position should not share storage with the source layout")
	}
	if (*tmpl.Layout.FurnitureItems[0].Scale)[0] == 5 {
		t.Error("template scale should not share storage with the source layout")
	}
}

func TestLayoutTemplate_ToLayout(t *testing.T) {
	tmpl := NewLayoutTemplate("Test", "desc", DefaultLayout())
	now := time.UnixMilli(1700000000000)

	layout := tmpl.ToLayout(now)

	if len(layout.FurnitureItems) != len(tmpl.Layout.FurnitureItems) {
		t.Fatalf("expected %d items, got %d", len(tmpl.Layout.FurnitureItems), len(layout.FurnitureItems))
	}
	seen := map[string]bool{}
	for i, it := range layout.FurnitureItems {
		if it.ID == tmpl.Layout.FurnitureItems[i].ID {
			t.Errorf("item %d should get a fresh ID", i)
		}
		if !strings.HasPrefix(it.ID, it.Type+"-") {
			t.Errorf("expected ID prefixed with type, got %q", it.ID)
		}
		if seen[it.ID] {
			t.Errorf("duplicate ID %q", it.ID)
		}
		seen[it.ID] = true
	}
	if layout.FurnitureItems[0].ID != "table-1700000000000" {
		t.Errorf("unexpected first ID %q", layout.FurnitureItems[0].ID)
	}
}

func TestTemplateStore_AddRemoveFind(t *testing.T) {
	store := NewTemplateStore()

	t1 := NewLayoutTemplate("T1", "first", DefaultLayout())
	t2 := NewLayoutTemplate("T2", "second", Layout{RoomDimensions: DefaultRoom()})

	store.Add(t1)
	store.Add(t2)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}

	found := store.FindByID(t1.ID)
	if found == nil || found.Name != "T1" {
		t.Errorf("expected to find T1 by ID")
	}
	if store.FindByName("T2") == nil {
		t.Error("expected to find T2 by name")
	}
	if store.FindByName("missing") != nil {
		t.Error("expected nil for unknown name")
	}

	names := store.Names()
	if len(names) != 2 || names[0] != "T1" || names[1] != "T2" {
		t.Errorf("unexpected names %v", names)
	}

	if !store.Remove(t1.ID) {
		t.Error("expected Remove to return true")
	}
	if store.Remove("nope") {
		t.Error("expected Remove of unknown ID to return false")
	}
	if len(store.Templates) != 1 {
		t.Errorf("expected 1 template after removal, got %d", len(store.Templates))
	}
}

package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/RoomFit/internal/model"
)

const backupVersion = "1.0.0"

// BackupData bundles preferences and saved templates into one file.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Config    model.AppConfig     `json:"config"`
	Templates model.TemplateStore `json:"templates"`
}

// ExportAllData writes config and templates to a single JSON file.
func ExportAllData(exportPath string, config model.AppConfig, templates model.TemplateStore) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Templates: templates,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file. The caller applies the contents.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	backup.Config.Normalize()
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.LayoutTemplate{}
	}
	return backup, nil
}

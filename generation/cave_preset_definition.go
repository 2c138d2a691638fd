package generation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// CavePreset is a named set of generation settings loaded from JSON
type CavePreset struct {
	ID          string `json:"id"`          // Unique identifier for the preset
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Short description shown in the viewer

	FillPercent         int  `json:"fill_percent"`          // Wall chance (0-100)
	SmoothIterations    int  `json:"smooth_iterations"`     // Cellular automaton passes
	WallRegionThreshold int  `json:"wall_region_threshold"` // Smallest wall region kept
	RoomRegionThreshold int  `json:"room_region_threshold"` // Smallest room kept
	PassageRadius       int  `json:"passage_radius"`        // Passage brush radius
	Upscale             bool `json:"upscale"`               // Double the resolution
}

// Apply overlays the non-zero fields of the preset onto a config
func (p *CavePreset) Apply(config CaveConfig) CaveConfig {
	if p.FillPercent > 0 {
		config.FillPercent = p.FillPercent
	}
	if p.SmoothIterations > 0 {
		config.SmoothIterations = p.SmoothIterations
	}
	if p.WallRegionThreshold > 0 {
		config.WallRegionThreshold = p.WallRegionThreshold
	}
	if p.RoomRegionThreshold > 0 {
		config.RoomRegionThreshold = p.RoomRegionThreshold
	}
	if p.PassageRadius > 0 {
		config.PassageRadius = p.PassageRadius
	}
	if p.Upscale {
		config.Upscale = true
	}
	return config
}

// CavePresetManager handles loading and looking up cave presets
type CavePresetManager struct {
	presets map[string]*CavePreset
}

// NewCavePresetManager creates an empty preset manager
func NewCavePresetManager() *CavePresetManager {
	return &CavePresetManager{
		presets: make(map[string]*CavePreset),
	}
}

// LoadPresetsFromDirectory loads every *.json preset in a directory
func (m *CavePresetManager) LoadPresetsFromDirectory(directory string) error {
	files, err := filepath.Glob(filepath.Join(directory, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to read preset directory: %w", err)
	}

	for _, file := range files {
		if err := m.LoadPresetFromFile(file); err != nil {
			return fmt.Errorf("failed to load preset from %s: %w", filepath.Base(file), err)
		}
	}

	return nil
}

// LoadPresetFromFile loads a single preset
func (m *CavePresetManager) LoadPresetFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset CavePreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return fmt.Errorf("failed to parse preset JSON: %w", err)
	}

	if preset.ID == "" {
		return fmt.Errorf("preset is missing ID")
	}
	if preset.FillPercent < 0 || preset.FillPercent > 100 {
		return fmt.Errorf("preset %s: fill percent %d outside 0-100", preset.ID, preset.FillPercent)
	}

	m.presets[preset.ID] = &preset
	return nil
}

// GetPreset retrieves a preset by ID, or nil
func (m *CavePresetManager) GetPreset(id string) *CavePreset {
	return m.presets[id]
}

// GetAllPresets returns every loaded preset sorted by ID
func (m *CavePresetManager) GetAllPresets() []*CavePreset {
	result := make([]*CavePreset, 0, len(m.presets))
	for _, preset := range m.presets {
		result = append(result, preset)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// EmbedProfile describes how notation lines are marked up in one kind
// of host file.
type EmbedProfile struct {
	Line  string `yaml:"line,omitempty"`
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// builtinProfiles maps file extensions to the comment conventions of
// the corresponding languages.
var builtinProfiles = map[string]*EmbedProfile{
	".sh":   {Line: "#:"},
	".py":   {Line: "#:"},
	".rb":   {Line: "#:"},
	".yaml": {Line: "#:"},
	".yml":  {Line: "#:"},
	".go":   {Line: "//:"},
	".js":   {Line: "//:"},
	".ts":   {Line: "//:"},
	".java": {Line: "//:"},
	".rs":   {Line: "//:"},
	".c":    {Line: "//:", Start: "/*:", End: ":*/"},
	".h":    {Line: "//:", Start: "/*:", End: ":*/"},
	".cc":   {Line: "//:", Start: "/*:", End: ":*/"},
	".cpp":  {Line: "//:", Start: "/*:", End: ":*/"},
	".css":  {Start: "/*:", End: ":*/"},
	".html": {Start: "<!--:", End: ":-->"},
	".xml":  {Start: "<!--:", End: ":-->"},
	".sql":  {Line: "--:"},
	".lua":  {Line: "--:"},
}

// profileFor selects the embed profile for path, consulting the
// profile file named by -profiles before the builtin table.
func (cfg *MainConfig) profileFor(path string) (*EmbedProfile, error) {
	ext := filepath.Ext(path)
	if cfg.Profiles != "" {
		loaded, err := loadProfiles(cfg.Profiles)
		if err != nil {
			return nil, err
		}
		if prof, ok := loaded[ext]; ok {
			return prof, nil
		}
	}
	return builtinProfiles[ext], nil
}

func loadProfiles(path string) (map[string]*EmbedProfile, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	profiles := map[string]*EmbedProfile{}
	if err := yaml.Unmarshal(d, &profiles); err != nil {
		return nil, fmt.Errorf("error loading profiles from %s: %w", path, err)
	}
	return profiles, nil
}

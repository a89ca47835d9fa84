package config

import (
	"slices"

	"github.com/ItsNotGoodName/webdesk/internal/geom"
)

var defaultConfig = Config{
	Desktop: Desktop{
		Breakpoint: 600,
		ZBase:      10,
		Window:     geom.Size{W: 520, H: 360},
		Cascade:    geom.DefaultCascade,
	},
	About: `Welcome to webdesk.

This desktop is a Linux-styled UI rendered in the browser and driven by a Go
window manager. It stays keyboard operable: Tab moves between icons, Enter
opens them and Escape closes the topmost window.

- Source: https://github.com/ItsNotGoodName/webdesk`,
	Projects: []Project{
		{
			ID:          "upp461",
			Title:       "UPP 461: Introduction to GIS",
			Year:        "2026",
			Description: "Online support modules for an introductory GIS course.",
			Links: []Link{
				{Label: "Repo", Href: "https://github.com/mistersig/upp-461-hub"},
				{Label: "Live Demo", Href: "https://mistersig.github.io/upp-461-hub/index.html"},
			},
			Tech: []string{"Vanilla JS", "DOM", "Events"},
		},
		{
			ID:          "proj-map",
			Title:       "Mini Map Explorer",
			Year:        "2026",
			Description: "Small map and data explorer.",
			Links: []Link{
				{Label: "Repo", Href: "https://github.com/your-username/mini-map-explorer"},
			},
			Tech: []string{"JS", "Data", "Maps"},
		},
		{
			ID:          "proj-toolkit",
			Title:       "UI Toolkit Notes",
			Year:        "2026",
			Description: "Reusable UI helpers: windows, dialogs, patterns.",
			Links: []Link{
				{Label: "Repo", Href: "https://github.com/your-username/ui-toolkit-notes"},
			},
			Tech: []string{"Go", "UI"},
		},
	},
}

// Default returns a copy of the config written on first run.
func Default() Config {
	cfg := defaultConfig
	cfg.Projects = make([]Project, len(defaultConfig.Projects))
	for i, p := range defaultConfig.Projects {
		p.Links = slices.Clone(p.Links)
		p.Tech = slices.Clone(p.Tech)
		cfg.Projects[i] = p
	}
	return cfg
}

type Config struct {
	Desktop  Desktop   `json:"desktop" yaml:"desktop"`
	About    string    `json:"about" yaml:"about"`
	Projects []Project `json:"projects" yaml:"projects"`
}

type Desktop struct {
	// Breakpoint is the viewport width in pixels below which the desktop is
	// laid out for small screens.
	Breakpoint int              `json:"breakpoint" yaml:"breakpoint"`
	ZBase      int              `json:"z_base" yaml:"z_base"`
	Window     geom.Size        `json:"window" yaml:"window"`
	Cascade    geom.CascadeSpec `json:"cascade" yaml:"cascade"`
}

type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Year        string   `json:"year" yaml:"year"`
	Description string   `json:"description" yaml:"description"`
	Links       []Link   `json:"links" yaml:"links"`
	Tech        []string `json:"tech" yaml:"tech"`
}

type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

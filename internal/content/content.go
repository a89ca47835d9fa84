// Package content builds the static panels shown inside desktop windows.
package content

import (
	"fmt"
	"strings"

	"github.com/ItsNotGoodName/webdesk/internal/config"
	"github.com/ItsNotGoodName/webdesk/internal/wm"
)

const (
	KeyAbout = "about"

	FileReadme = "README.txt"
	FileLinks  = "LINKS.txt"
)

type Kind string

const (
	KindText  Kind = "text"
	KindLinks Kind = "links"
	KindFiles Kind = "files"
)

// Node is the payload of a window. The client renders it.
type Node struct {
	Kind        Kind          `json:"kind"`
	Text        string        `json:"text,omitempty"`
	Linkify     bool          `json:"linkify,omitempty"`
	Heading     string        `json:"heading,omitempty"`
	Description string        `json:"description,omitempty"`
	Links       []config.Link `json:"links,omitempty"`
	Files       []File        `json:"files,omitempty"`
	Hint        string        `json:"hint,omitempty"`
}

// File is a row in a project folder that opens its own window.
type File struct {
	Name  string `json:"name"`
	Meta  string `json:"meta"`
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Icon is a desktop icon that opens a project folder.
type Icon struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Provider serves content for the about window, project folders and their
// files.
type Provider struct {
	about    string
	projects []config.Project
}

var _ wm.Provider[Node] = Provider{}

func NewProvider(cfg config.Config) Provider {
	return Provider{
		about:    cfg.About,
		projects: cfg.Projects,
	}
}

func (p Provider) Icons() []Icon {
	icons := make([]Icon, 0, len(p.projects))
	for _, project := range p.projects {
		icons = append(icons, Icon{Key: project.ID, Label: project.Title})
	}
	return icons
}

// Content implements wm.Provider.
func (p Provider) Content(key string) (wm.Content[Node], bool) {
	if key == KeyAbout {
		return wm.Content[Node]{
			Title: "About",
			Node: Node{
				Kind:    KindText,
				Text:    strings.TrimSpace(p.about),
				Linkify: true,
			},
		}, true
	}

	id, file, _ := strings.Cut(key, ":")
	project, ok := p.project(id)
	if !ok {
		return wm.Content[Node]{}, false
	}

	switch file {
	case "":
		return wm.Content[Node]{
			Title: project.Title,
			Node:  folder(project),
		}, true
	case FileReadme:
		return wm.Content[Node]{
			Title: fileTitle(project, file),
			Node: Node{
				Kind: KindText,
				Text: readme(project),
			},
		}, true
	case FileLinks:
		return wm.Content[Node]{
			Title: fileTitle(project, file),
			Node: Node{
				Kind:  KindLinks,
				Links: project.Links,
			},
		}, true
	default:
		return wm.Content[Node]{}, false
	}
}

func (p Provider) project(id string) (config.Project, bool) {
	for _, project := range p.projects {
		if project.ID == id {
			return project, true
		}
	}
	return config.Project{}, false
}

func folder(project config.Project) Node {
	return Node{
		Kind:        KindFiles,
		Heading:     project.Title,
		Description: project.Description,
		Files: []File{
			{
				Name:  FileReadme,
				Meta:  project.Year,
				Key:   project.ID + ":" + FileReadme,
				Title: fileTitle(project, FileReadme),
			},
			{
				Name:  FileLinks,
				Meta:  fmt.Sprintf("%d items", len(project.Links)),
				Key:   project.ID + ":" + FileLinks,
				Title: fileTitle(project, FileLinks),
			},
		},
		Hint: "Tip: Select a file row and press Enter (or click) to open it.",
	}
}

func fileTitle(project config.Project, file string) string {
	return project.Title + " — " + file
}

func readme(project config.Project) string {
	var b strings.Builder
	b.WriteString(project.Title)
	b.WriteString("\n\n")
	b.WriteString(project.Description)
	if len(project.Tech) > 0 {
		b.WriteString("\n\nTech:\n- ")
		b.WriteString(strings.Join(project.Tech, "\n- "))
	}
	return b.String()
}

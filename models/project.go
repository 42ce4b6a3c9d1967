package models

import (
	"strings"

	"github.com/venoxy/portfolio-backend/errs"
)

// Category is the fixed set of project categories shown in the gallery filter.
type Category string

const (
	CategoryApplications  Category = "Applications"
	CategoryPhotography   Category = "Photography"
	CategoryVideoEditing  Category = "Video Editing"
	CategoryGraphicDesign Category = "Graphic Design"
	CategoryArt           Category = "Art"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryApplications,
		CategoryPhotography,
		CategoryVideoEditing,
		CategoryGraphicDesign,
		CategoryArt,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// CustomSlide is one open-ended pitch-deck slide attached to an AI showcase
// project's detail view.
type CustomSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// Project represents one portfolio project. The id is either a seed id
// carried in from the bundled dataset (e.g. "p-librowse") or a UUID assigned
// by the document store on creation; both formats are valid identities.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"` // tagline
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	DemoURL      string   `json:"demoUrl,omitempty"`
	RepoURL      string   `json:"repoUrl,omitempty"`
	Category     Category `json:"category,omitempty"`

	// AI showcase extension. A project belongs to the AI showcase when
	// AIToolsUsed is non-empty.
	AIToolsUsed     []string      `json:"aiToolsUsed,omitempty"`
	Features        []string      `json:"features,omitempty"`
	AIDescription   string        `json:"aiDescription,omitempty"` // the solution
	Challenge       string        `json:"challenge,omitempty"`     // the problem
	DevelopmentTime string        `json:"developmentTime,omitempty"`
	Gallery         []string      `json:"gallery,omitempty"`
	CustomSlides    []CustomSlide `json:"customSlides,omitempty"`
}

// InAIShowcase reports whether the project belongs in the AI showcase gallery.
func (p Project) InAIShowcase() bool {
	return len(p.AIToolsUsed) > 0
}

// Validate checks the invariants every published project must satisfy.
func (p Project) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return errs.NewMissingRequiredFieldError("id")
	case strings.TrimSpace(p.Title) == "":
		return errs.NewMissingRequiredFieldError("title")
	case strings.TrimSpace(p.Description) == "":
		return errs.NewMissingRequiredFieldError("description")
	case strings.TrimSpace(p.ImageURL) == "":
		return errs.NewMissingRequiredFieldError("imageUrl")
	}
	if p.Category != "" && !p.Category.Valid() {
		return errs.NewInvalidFieldError("category", "unknown category "+string(p.Category))
	}
	return nil
}

// Clone returns a deep copy of the project. The store hands copies to
// callers so nobody can mutate its in-memory list from outside.
func (p Project) Clone() Project {
	out := p
	out.Technologies = cloneStrings(p.Technologies)
	out.AIToolsUsed = cloneStrings(p.AIToolsUsed)
	out.Features = cloneStrings(p.Features)
	out.Gallery = cloneStrings(p.Gallery)
	if p.CustomSlides != nil {
		out.CustomSlides = make([]CustomSlide, len(p.CustomSlides))
		copy(out.CustomSlides, p.CustomSlides)
	}
	return out
}

// CloneProjects deep-copies a project list.
func CloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// ParseList splits free-text, comma-separated input (as typed into the CMS
// form) into an ordered list, trimming whitespace and dropping empties.
func ParseList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ProjectDetails is the candidate patch produced by the AI project-detail
// generator. The presentation layer merges it into the edit form; nothing is
// validated here beyond the Project invariants enforced at save time.
type ProjectDetails struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Challenge       string   `json:"challenge"`
	AIDescription   string   `json:"aiDescription"`
	Technologies    []string `json:"technologies"`
	AIToolsUsed     []string `json:"aiToolsUsed"`
	Features        []string `json:"features"`
	DevelopmentTime string   `json:"developmentTime"`
	DemoURL         string   `json:"demoUrl"`
	RepoURL         string   `json:"repoUrl"`
}

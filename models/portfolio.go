package models

// SkillCategory groups skills in the tech-stack section.
type SkillCategory string

const (
	SkillFrontend SkillCategory = "Frontend"
	SkillBackend  SkillCategory = "Backend"
	SkillCreative SkillCategory = "Creative"
	SkillTools    SkillCategory = "Tools"
	SkillAI       SkillCategory = "AI"
)

// Service is one high-level service offering shown on the landing page.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
}

// Skill is one entry in the tech stack grid.
type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	IconName string        `json:"iconName"`
}

// Experience is one work-history entry.
type Experience struct {
	ID          string   `json:"id"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
}

// Education is one education-history entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Period      string `json:"period"`
	Description string `json:"description,omitempty"`
}

// SocialLink is one external profile link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IconName string `json:"iconName"`
}

// Philosophy is the personal statement block on the AI showcase page.
type Philosophy struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PortfolioData is the aggregate the presentation layer consumes. Every
// section except Projects is sourced unconditionally from the bundled
// default dataset; Projects is the live, store-backed list.
type PortfolioData struct {
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Bio        string       `json:"bio"`
	Email      string       `json:"email"`
	Location   string       `json:"location"`
	Services   []Service    `json:"services"`
	Skills     []Skill      `json:"skills"`
	Projects   []Project    `json:"projects"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Socials    []SocialLink `json:"socials"`
	Philosophy Philosophy   `json:"philosophy"`
}

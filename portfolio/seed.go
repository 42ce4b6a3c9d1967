package portfolio

import (
	"github.com/venoxy/portfolio-backend/models"
)

// defaultData is the bundled snapshot of portfolio content. It is the seed
// for the remote store and the fallback whenever the remote store is empty
// or unreachable. Never hand this value out directly; use Seed or
// SeedProjects, which deep-copy.
var defaultData = models.PortfolioData{
	Name:     "Venoxy",
	Title:    "Creative Developer & Multimedia Artist",
	Bio:      "I am a multidisciplinary creator blurring the lines between technology and art. I specialize in AI-augmented workflows to accelerate development and unlock new creative possibilities. From immersive web experiences to indie games, I believe in mastering both the code and the canvas.",
	Email:    "venoxyarts@gmail.com",
	Location: "Philippines",
	Services: []models.Service{
		{ID: "s0", Title: "AI Workflow Integration", Description: "Leveraging LLMs and automation to accelerate development cycles and build adaptive systems.", IconName: "Sparkles"},
		{ID: "s1", Title: "Web Development", Description: "Building responsive, interactive, and performant frontend applications.", IconName: "Code"},
		{ID: "s2", Title: "Graphic Design", Description: "Creating visual identities, UI assets, and branding materials.", IconName: "Palette"},
		{ID: "s3", Title: "Video Editing", Description: "Post-production, color grading, and motion graphics for film and social.", IconName: "Film"},
		{ID: "s4", Title: "Game Development", Description: "Designing and programming interactive 2D/3D gaming experiences.", IconName: "Gamepad2"},
		{ID: "s5", Title: "Filmmaking", Description: "Directing and producing narrative and documentary short films.", IconName: "Clapperboard"},
	},
	Skills: []models.Skill{
		{Name: "Gemini API", Category: models.SkillAI, IconName: "Sparkles"},
		{Name: "OpenAI API", Category: models.SkillAI, IconName: "Bot"},
		{Name: "Generative AI", Category: models.SkillAI, IconName: "Brain"},
		{Name: "Prompt Eng.", Category: models.SkillAI, IconName: "MessageSquare"},
		{Name: "Stable Diffusion", Category: models.SkillAI, IconName: "Cpu"},
		{Name: "HTML5", Category: models.SkillFrontend, IconName: "Layout"},
		{Name: "CSS3", Category: models.SkillFrontend, IconName: "Palette"},
		{Name: "JavaScript", Category: models.SkillFrontend, IconName: "Code"},
		{Name: "React", Category: models.SkillFrontend, IconName: "Code"},
		{Name: "TypeScript", Category: models.SkillFrontend, IconName: "Code"},
		{Name: "Tailwind CSS", Category: models.SkillFrontend, IconName: "Layout"},
		{Name: "Flutter", Category: models.SkillFrontend, IconName: "Smartphone"},
		{Name: "Node.js", Category: models.SkillBackend, IconName: "Server"},
		{Name: "Java", Category: models.SkillBackend, IconName: "Coffee"},
		{Name: "C#", Category: models.SkillBackend, IconName: "Code"},
		{Name: "Photoshop", Category: models.SkillCreative, IconName: "Image"},
		{Name: "Illustrator", Category: models.SkillCreative, IconName: "PenTool"},
		{Name: "After Effects", Category: models.SkillCreative, IconName: "Film"},
		{Name: "Figma", Category: models.SkillCreative, IconName: "PenTool"},
		{Name: "IbisPaint X", Category: models.SkillCreative, IconName: "Brush"},
		{Name: "Canva", Category: models.SkillCreative, IconName: "Layout"},
		{Name: "Unity", Category: models.SkillTools, IconName: "Gamepad2"},
		{Name: "VS Code", Category: models.SkillTools, IconName: "Terminal"},
		{Name: "Visual Studio", Category: models.SkillTools, IconName: "Monitor"},
		{Name: "Vite", Category: models.SkillTools, IconName: "Zap"},
		{Name: "GitHub", Category: models.SkillTools, IconName: "Github"},
		{Name: "Office Suites", Category: models.SkillTools, IconName: "FileText"},
	},
	Experience: []models.Experience{
		{
			ID:      "exp-1",
			Role:    "Multimedia Specialist",
			Company: "Visionary Studios",
			Period:  "2022 - Present",
			Description: []string{
				"Spearhead the frontend development of interactive web experiences using React and WebGL.",
				"Produce and edit promotional video content for client campaigns, increasing engagement by 150%.",
				"Design assets and UI elements for internal game prototypes.",
			},
		},
		{
			ID:      "exp-2",
			Role:    "Freelance Creative Developer",
			Company: "Self-Employed",
			Period:  "2019 - 2022",
			Description: []string{
				"Delivered bespoke websites for artists and musicians, focusing on unique visual identities.",
				"Directed and edited short films and music videos featured in local festivals.",
				"Collaborated with indie game developers on level design and environmental art.",
			},
		},
	},
	Education: []models.Education{
		{
			ID:          "edu-1",
			Degree:      "Bachelor of Science in Information Technology",
			School:      "Pamantasan ng Lungsod ng Valenzuela",
			Period:      "Current",
			Description: "Focusing on software engineering, system architecture, and multimedia computing.",
		},
	},
	Projects: []models.Project{
		{
			ID:              "p-librowse",
			Title:           "Librowse",
			Description:     "A comprehensive book lending and borrowing platform for PLV, featuring real-time availability tracking, smart recommendations, and an integrated AI chat assistant.",
			Technologies:    []string{"React", "Node.js", "MongoDB", "Socket.io"},
			ImageURL:        "/projects/librowse/Librowse_Home_Page.png",
			DemoURL:         "https://librowse.onrender.com",
			RepoURL:         "#",
			Category:        models.CategoryApplications,
			DevelopmentTime: "3 Months",
			AIToolsUsed:     []string{"ChatGPT", "GitHub Copilot"},
			Features: []string{
				"Real-time book availability tracking",
				"Integrated AI Chat Assistant",
				"Daily check-in & gamification system",
				"Automated violation monitoring & reporting",
			},
			AIDescription: "AI was utilized to generate the initial database schema and API endpoints. The chat assistant logic was refined using LLMs to provide accurate book recommendations based on user history.",
			Challenge:     "Implementing a real-time notification system for due dates and chat messages that scales efficiently with a large user base.",
			Gallery: []string{
				"/projects/librowse/Librowse_Home_Page.png",
				"/projects/librowse/Librowse_Books_Page.png",
				"/projects/librowse/Librowse_Chat_Modal.png",
				"/projects/librowse/Librowse_Chats_Page.png",
				"/projects/librowse/Librowse_Daily_Check-in_Modal.png",
				"/projects/librowse/Librowse_Modal.png",
				"/projects/librowse/Librowse_Monitoring_Page.png",
				"/projects/librowse/Librowse_My_Books_Tab.png",
				"/projects/librowse/Librowse_Notification_Modal.png",
				"/projects/librowse/Librowse_Profile_Page.png",
				"/projects/librowse/Librowse_Request_Page.png",
				"/projects/librowse/Librowse_Reviews_Tab.png",
				"/projects/librowse/Librowse_Settings_Tab.png",
				"/projects/librowse/Librowse_Verification_Tab.png",
				"/projects/librowse/Librowse_Violations_Tab.png",
			},
		},
	},
	Socials: []models.SocialLink{
		{Platform: "ArtStation", URL: "https://artstation.com", IconName: "Palette"},
		{Platform: "GitHub", URL: "https://github.com", IconName: "Github"},
		{Platform: "Instagram", URL: "https://instagram.com", IconName: "Camera"},
		{Platform: "YouTube", URL: "https://youtube.com", IconName: "Youtube"},
	},
	Philosophy: models.Philosophy{
		Title:   "Why I'm Not Your Average 'Vibe Coder'",
		Content: "I try to use AI thoughtfully, not as a shortcut, but as a tool to help bring my ideas to life. I don't expect a fully functional app to appear from a single prompt. Instead, I focus on giving clear instructions, breaking tasks into smaller steps, and guiding AI with the concepts I want to explore. In this process, AI becomes more of a collaborator than just a tool, it helps me experiment, refine, and realize ideas that might otherwise take much longer to develop. I see it as a way to enhance my own abilities, learn in the process, and slowly turn my plans into something tangible. Using AI this way has taught me patience, careful thinking, and the importance of guiding technology with intention rather than relying on it blindly.",
	},
}

// Seed returns a deep copy of the bundled default dataset.
func Seed() models.PortfolioData {
	data := defaultData
	data.Services = append([]models.Service(nil), defaultData.Services...)
	data.Skills = append([]models.Skill(nil), defaultData.Skills...)
	data.Projects = models.CloneProjects(defaultData.Projects)
	data.Experience = make([]models.Experience, len(defaultData.Experience))
	for i, exp := range defaultData.Experience {
		data.Experience[i] = exp
		data.Experience[i].Description = append([]string(nil), exp.Description...)
	}
	data.Education = append([]models.Education(nil), defaultData.Education...)
	data.Socials = append([]models.SocialLink(nil), defaultData.Socials...)
	return data
}

// SeedProjects returns a deep copy of the bundled seed project list.
func SeedProjects() []models.Project {
	return models.CloneProjects(defaultData.Projects)
}

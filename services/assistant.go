package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/venoxy/portfolio-backend/config"
	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
)

// ChatTurn is one prior exchange in the chat widget's history.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Assistant wraps the LLM behind the chat widget and the project-detail
// generator. The model is an interface so tests can substitute a fake.
type Assistant struct {
	llm               llms.Model
	systemInstruction string
}

// NewAssistant builds an assistant backed by the Gemini API. The system
// framing is built once from the bundled profile data.
func NewAssistant(ctx context.Context, cfg map[string]string, data models.PortfolioData) (*Assistant, error) {
	apiKey := config.GetString(cfg, "GEMINI_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	model := config.GetString(cfg, "GEMINI_MODEL", "gemini-2.0-flash")
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing gemini client: %w", err)
	}

	return &Assistant{
		llm:               llm,
		systemInstruction: SystemInstruction(data),
	}, nil
}

// SystemInstruction renders the fixed chat framing from the bundled
// portfolio data.
func SystemInstruction(data models.PortfolioData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI assistant for %s's portfolio website.\n", data.Name)
	fmt.Fprintf(&b, "Your goal is to answer questions about %s based on the provided resume data.\n\n", data.Name)
	fmt.Fprintf(&b, "Here is the context about %s:\n", data.Name)
	fmt.Fprintf(&b, "Title: %s\nBio: %s\nLocation: %s\nEmail: %s\n", data.Title, data.Bio, data.Location, data.Email)

	b.WriteString("\nGeneral Expertise (Services):\n")
	for _, s := range data.Services {
		fmt.Fprintf(&b, "- %s: %s\n", s.Title, s.Description)
	}

	b.WriteString("\nTechnical Skills & Tools:\n")
	for _, s := range data.Skills {
		fmt.Fprintf(&b, "- %s (%s)\n", s.Name, s.Category)
	}

	b.WriteString("\nExperience:\n")
	for _, e := range data.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s):\n  %s\n", e.Role, e.Company, e.Period, strings.Join(e.Description, "\n  "))
	}

	b.WriteString("\nEducation:\n")
	for _, e := range data.Education {
		fmt.Fprintf(&b, "- %s at %s (%s)\n", e.Degree, e.School, e.Period)
	}

	b.WriteString("\nProjects:\n")
	for _, p := range data.Projects {
		fmt.Fprintf(&b, "- %s: %s (Tech: %s)\n", p.Title, p.Description, strings.Join(p.Technologies, ", "))
	}

	b.WriteString("\nGuidelines:\n")
	b.WriteString("- Be professional, polite, and enthusiastic.\n")
	b.WriteString("- Keep answers concise but informative.\n")
	b.WriteString("- If asked about contact info, provide the email.\n")
	fmt.Fprintf(&b, "- If asked about something not in the data, politely say you don't have that information but suggest contacting %s directly.\n", data.Name)
	b.WriteString("- Do not make up facts.\n")
	return b.String()
}

// Chat sends one user message, with the widget's prior turns, and returns
// the model's free-form reply.
func (a *Assistant) Chat(ctx context.Context, message string, history []ChatTurn) (string, error) {
	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, a.systemInstruction))
	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == "model" {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.Text))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))

	resp, err := a.llm.GenerateContent(ctx, messages)
	if err != nil {
		log.Error().Err(err).Msg("chat completion failed")
		return "", errs.NewGenerationError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "I'm sorry, I couldn't generate a response.", nil
	}
	return resp.Choices[0].Content, nil
}

// GenerateProjectDetails asks the model for a structured project-detail
// patch for the given working title and category. A non-JSON completion is
// a caught failure, surfaced to the caller.
func (a *Assistant) GenerateProjectDetails(ctx context.Context, title string, category models.Category) (models.ProjectDetails, error) {
	if category == "" {
		category = models.CategoryApplications
	}

	prompt := detailPrompt(title, category)
	resp, err := a.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
	if err != nil {
		log.Error().Err(err).Str("category", string(category)).Msg("project-detail generation failed")
		return models.ProjectDetails{}, errs.NewGenerationError(err)
	}
	if len(resp.Choices) == 0 {
		return models.ProjectDetails{}, errs.NewGenerationError(fmt.Errorf("no completion returned"))
	}

	return ParseProjectDetails(resp.Choices[0].Content)
}

// ParseProjectDetails decodes the generation output, tolerating the fenced
// markdown blocks models wrap JSON in despite instructions.
func ParseProjectDetails(raw string) (models.ProjectDetails, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var details models.ProjectDetails
	if err := json.Unmarshal([]byte(cleaned), &details); err != nil {
		return models.ProjectDetails{}, errs.NewMalformedResponseError(err)
	}
	return details, nil
}

func detailPrompt(title string, category models.Category) string {
	var b strings.Builder
	b.WriteString("You are an expert creative director and technical lead.\n")
	b.WriteString("Generate a creative and realistic project idea and its details for a portfolio.\n\n")
	fmt.Fprintf(&b, "Project Category: %q\n", category)
	if title != "" {
		fmt.Fprintf(&b, "Project Title: %q\n", title)
	} else {
		b.WriteString("Create a random, impressive title.\n")
	}
	b.WriteString(`
Context based on category:
- If 'Applications': Focus on tech stack, features, and user problem/solution.
- If 'Photography'/'Art'/'Graphic Design': Focus on visual style, composition, tools (Camera, Photoshop, etc.), and artistic concept.
- If 'Video Editing': Focus on narrative, pacing, software (Premiere, After Effects), and visual effects.

Provide the output as a valid JSON object with the following fields:
- title: string (The project title)
- description: string (A catchy tagline or short summary, max 100 chars)
- challenge: string (The creative or technical challenge faced, max 300 chars)
- aiDescription: string (The solution/approach. For Art/Photo, describe the artistic intent. For Apps, the technical solution. Max 400 chars)
- technologies: string[] (List of 3-5 tools/technologies used. e.g., "React, Node" or "Sony A7III, Lightroom" or "Adobe Illustrator")
- aiToolsUsed: string[] (List of 2-4 AI tools if applicable, or just standard tools if not. e.g., "Midjourney" or "Photoshop AI")
- features: string[] (List of 3-4 key features or visual elements)
- developmentTime: string (e.g., "2 Weeks", "3 Days")
- demoUrl: string (Use a placeholder like "https://demo.example.com" or portfolio link)
- repoUrl: string (Use a placeholder like "https://github.com/username/project" or leave empty for non-code)

Ensure the content is professional and sounds like a high-quality portfolio entry.
Do not include markdown formatting, just the raw JSON string.
`)
	return b.String()
}

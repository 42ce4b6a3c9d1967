package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
	"github.com/venoxy/portfolio-backend/portfolio"
)

// fakeModel records the messages it receives and plays back a scripted
// completion.
type fakeModel struct {
	messages []llms.MessageContent
	reply    string
	err      error
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return f.reply, f.err
}

func testAssistant(model llms.Model) *Assistant {
	return &Assistant{
		llm:               model,
		systemInstruction: SystemInstruction(portfolio.Seed()),
	}
}

func TestChatSendsSystemHistoryAndMessage(t *testing.T) {
	model := &fakeModel{reply: "Happy to help."}
	assistant := testAssistant(model)

	history := []ChatTurn{
		{Role: "user", Text: "Hi"},
		{Role: "model", Text: "Hello! How can I help?"},
	}
	reply, err := assistant.Chat(context.Background(), "What does Venoxy do?", history)
	require.NoError(t, err)
	assert.Equal(t, "Happy to help.", reply)

	require.Len(t, model.messages, 4)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, model.messages[2].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[3].Role)
}

func TestChatEmptyCompletionGetsFallbackText(t *testing.T) {
	model := &fakeModel{reply: ""}
	assistant := testAssistant(model)

	reply, err := assistant.Chat(context.Background(), "Hello?", nil)
	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, I couldn't generate a response.", reply)
}

func TestChatModelFailure(t *testing.T) {
	model := &fakeModel{err: errors.New("quota exceeded")}
	assistant := testAssistant(model)

	_, err := assistant.Chat(context.Background(), "Hello?", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrGenerationFailed))
}

func TestGenerateProjectDetailsParsesFencedJSON(t *testing.T) {
	model := &fakeModel{reply: "```json\n" + `{
		"title": "Aurora Atlas",
		"description": "Chasing lights across three countries",
		"technologies": ["Sony A7III", "Lightroom"],
		"aiToolsUsed": ["Photoshop AI"],
		"features": ["Long exposure set", "Print series"],
		"developmentTime": "2 Weeks"
	}` + "\n```"}
	assistant := testAssistant(model)

	details, err := assistant.GenerateProjectDetails(context.Background(), "Aurora Atlas", models.CategoryPhotography)
	require.NoError(t, err)
	assert.Equal(t, "Aurora Atlas", details.Title)
	assert.Equal(t, []string{"Sony A7III", "Lightroom"}, details.Technologies)
	assert.Equal(t, "2 Weeks", details.DevelopmentTime)
}

func TestGenerateProjectDetailsPromptMentionsTitleAndCategory(t *testing.T) {
	model := &fakeModel{reply: "{}"}
	assistant := testAssistant(model)

	_, err := assistant.GenerateProjectDetails(context.Background(), "Neon Horizon", models.CategoryArt)
	require.NoError(t, err)

	require.Len(t, model.messages, 1)
	require.Len(t, model.messages[0].Parts, 1)
	prompt := model.messages[0].Parts[0].(llms.TextContent).Text
	assert.Contains(t, prompt, `"Neon Horizon"`)
	assert.Contains(t, prompt, `"Art"`)
}

func TestParseProjectDetails(t *testing.T) {
	t.Run("bare json", func(t *testing.T) {
		details, err := ParseProjectDetails(`{"title":"X","developmentTime":"3 Days"}`)
		require.NoError(t, err)
		assert.Equal(t, "X", details.Title)
		assert.Equal(t, "3 Days", details.DevelopmentTime)
	})

	t.Run("fenced with padding", func(t *testing.T) {
		details, err := ParseProjectDetails("  ```json\n{\"title\":\"Y\"}\n```  ")
		require.NoError(t, err)
		assert.Equal(t, "Y", details.Title)
	})

	t.Run("prose instead of json", func(t *testing.T) {
		_, err := ParseProjectDetails("Sure! Here is a project idea for you.")
		require.Error(t, err)
		assert.True(t, errs.IsMalformedResponse(err))
	})
}

func TestSystemInstructionCoversProfile(t *testing.T) {
	data := portfolio.Seed()
	instruction := SystemInstruction(data)

	assert.Contains(t, instruction, data.Name)
	assert.Contains(t, instruction, data.Email)
	for _, s := range data.Services {
		assert.Contains(t, instruction, s.Title)
	}
	for _, p := range data.Projects {
		assert.Contains(t, instruction, p.Title)
	}
	assert.Contains(t, instruction, "Do not make up facts.")
}

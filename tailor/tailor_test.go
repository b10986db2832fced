package tailor

import (
	"context"
	"errors"
	"testing"

	"github.com/rickchristie/vitae"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// ----------------------------------------------------------------------------
// Mock model
// ----------------------------------------------------------------------------

type mockModel struct {
	response   string
	err        error
	lastPrompt string
}

func (m *mockModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				m.lastPrompt = tc.Text
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *mockModel) Call(
	ctx context.Context,
	prompt string,
	options ...llms.CallOption,
) (string, error) {
	m.lastPrompt = prompt
	return m.response, m.err
}

var _ llms.Model = (*mockModel)(nil)

// ----------------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------------

func exp() vitae.WorkExperience {
	return vitae.WorkExperience{
		Position: vitae.Text("Owner"),
		Company:  vitae.Text("Lemonade Stand LLC"),
		Body:     vitae.Str{Value: "I sold a lot of lemonade to people."},
	}
}

func TestRewriter_Rewrite(t *testing.T) {
	model := &mockModel{response: "Sold 400 cups of lemonade per week."}

	got, err := New(model).Rewrite(context.Background(), exp(), "")
	require.NoError(t, err)
	assert.Equal(t, vitae.Str{Value: "Sold 400 cups of lemonade per week."}, got)

	assert.Contains(t, model.lastPrompt, "ROLE: Owner")
	assert.Contains(t, model.lastPrompt, "COMPANY: Lemonade Stand LLC")
	assert.Contains(t, model.lastPrompt, "I sold a lot of lemonade to people.")
	assert.NotContains(t, model.lastPrompt, "TARGET JOB DESCRIPTION")
}

func TestRewriter_Rewrite_WithJobDescription(t *testing.T) {
	model := &mockModel{response: "ok"}

	_, err := New(model).Rewrite(context.Background(), exp(), "Street vendor wanted.")
	require.NoError(t, err)
	assert.Contains(t, model.lastPrompt, "TARGET JOB DESCRIPTION")
	assert.Contains(t, model.lastPrompt, "Street vendor wanted.")
}

func TestRewriter_Rewrite_WithInstructions(t *testing.T) {
	model := &mockModel{response: "ok"}

	_, err := New(model).
		WithInstructions("Keep certifications verbatim.").
		Rewrite(context.Background(), exp(), "")
	require.NoError(t, err)
	assert.Contains(t, model.lastPrompt, "Keep certifications verbatim.")
}

func TestRewriter_Rewrite_StripsCodeFence(t *testing.T) {
	model := &mockModel{response: "```text\nSold lemonade.\n```"}

	got, err := New(model).Rewrite(context.Background(), exp(), "")
	require.NoError(t, err)
	assert.Equal(t, vitae.Str{Value: "Sold lemonade."}, got)
}

func TestRewriter_Rewrite_EmptyBody(t *testing.T) {
	e := exp()
	e.Body = vitae.Str{Value: "   "}

	_, err := New(&mockModel{response: "ok"}).Rewrite(context.Background(), e, "")
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestRewriter_Rewrite_EmptyResponse(t *testing.T) {
	_, err := New(&mockModel{response: "  \n "}).Rewrite(context.Background(), exp(), "")
	assert.ErrorIs(t, err, ErrEmptyRewrite)
}

func TestRewriter_Rewrite_ModelError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(&mockModel{err: boom}).Rewrite(context.Background(), exp(), "")
	assert.ErrorIs(t, err, boom)
}

func TestRewriter_DoesNotMutateInput(t *testing.T) {
	e := exp()
	before := e
	_, err := New(&mockModel{response: "new body"}).Rewrite(context.Background(), e, "")
	require.NoError(t, err)
	assert.Equal(t, before, e)
}

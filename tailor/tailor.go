package tailor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rickchristie/vitae"
	"github.com/rickchristie/vitae/render"
	"github.com/tmc/langchaingo/llms"
)

// Rewrite errors
var (
	// ErrEmptyBody reports an experience with nothing to rewrite.
	ErrEmptyBody = errors.New("experience body is empty")
	// ErrEmptyRewrite reports a model response with no usable text.
	ErrEmptyRewrite = errors.New("model returned an empty rewrite")
)

// Rewriter polishes experience bodies through an LLM.
type Rewriter struct {
	model        llms.Model
	instructions string
}

// New creates a Rewriter backed by the given model.
func New(model llms.Model) *Rewriter {
	return &Rewriter{model: model}
}

// WithInstructions appends extra guidance to the rewrite prompt, e.g. house
// style rules or content that must be kept verbatim.
func (r *Rewriter) WithInstructions(instructions string) *Rewriter {
	r.instructions = instructions
	return r
}

// Rewrite asks the model to tighten the body of exp, tailored toward
// jobDescription when non-empty. It returns the rewritten body as content;
// the input record is not modified.
func (r *Rewriter) Rewrite(
	ctx context.Context,
	exp vitae.WorkExperience,
	jobDescription string,
) (vitae.Content, error) {
	prompt, err := r.buildPrompt(exp, jobDescription)
	if err != nil {
		return nil, err
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, r.model, prompt)
	if err != nil {
		return nil, fmt.Errorf("rewrite call failed: %w", err)
	}

	text := cleanResponse(response)
	if text == "" {
		return nil, ErrEmptyRewrite
	}
	return vitae.Str{Value: text}, nil
}

// buildPrompt assembles the rewrite prompt from the entry's header context
// and body text.
func (r *Rewriter) buildPrompt(
	exp vitae.WorkExperience,
	jobDescription string,
) (string, error) {
	plain := render.NewPlain()
	body, err := plain.Render(exp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render body: %w", err)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ErrEmptyBody
	}

	var sb strings.Builder
	sb.WriteString("You are an expert resume writer. Rewrite the experience ")
	sb.WriteString("description below so that it:\n")
	sb.WriteString("- leads with a strong action verb\n")
	sb.WriteString("- quantifies impact where the original gives numbers\n")
	sb.WriteString("- avoids first person and filler\n")
	sb.WriteString("- stays under two lines\n")
	sb.WriteString("Invent nothing: only rephrase what is already there.\n")

	if role := fieldText(exp.Position); role != "" {
		fmt.Fprintf(&sb, "\nROLE: %s\n", role)
	}
	if company := fieldText(exp.Company); company != "" {
		fmt.Fprintf(&sb, "COMPANY: %s\n", company)
	}
	if jobDescription != "" {
		fmt.Fprintf(&sb, "\nTARGET JOB DESCRIPTION:\n%s\n", jobDescription)
	}
	if r.instructions != "" {
		fmt.Fprintf(&sb, "\nADDITIONAL INSTRUCTIONS:\n%s\n", r.instructions)
	}

	fmt.Fprintf(&sb, "\nDESCRIPTION:\n%s\n", body)
	sb.WriteString("\nReturn only the rewritten description, no commentary.")
	return sb.String(), nil
}

// fieldText extracts plain text from a field for prompt context. Rich and
// date fields contribute nothing; the model does not need them.
func fieldText(f vitae.Field) string {
	if f.Kind() == vitae.FieldText {
		return f.Text()
	}
	return ""
}

// cleanResponse strips whitespace and a surrounding code fence, which some
// models add despite instructions.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// Drop an optional language hint on the fence line.
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

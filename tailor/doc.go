// Package tailor rewrites work-experience bodies with an LLM.
//
// The rewriter takes a record's body, optionally a job description to tailor
// toward, and asks the model for a tightened version: leading action verb,
// quantified impact, no first person. The result comes back as vitae content
// ready to drop into the record's place in a section.
//
//	rewriter := tailor.New(llm).
//	    WithInstructions("Keep certifications verbatim.")
//
//	body, err := rewriter.Rewrite(ctx, exp, jobDescription)
//	if err != nil {
//	    return err
//	}
//	exp.Body = body
//
// The model is an injected langchaingo llms.Model, so tests run against a
// mock and callers choose the provider.
package tailor

package screens

import (
	"strings"

	"github.com/spigell/hr-assistant/internal/ai"
)

const (
	FeatureJobPosting = "job_posting"

	jobPostingFailure = "Falha ao gerar descrição da vaga. Verifique sua chave de API ou tente novamente."
	jobPostingMissing = "Por favor, preencha o título, o departamento, os requisitos e o tom da vaga."
	jobPostingBadTone = "Tom inválido. Escolha Formal, Casual ou Inspirador."
)

func NewJobPosting(assistant ai.Assistant, deps Deps) *JobPostingFeature {
	validate := func(req ai.JobPostingRequest) error {
		return ValidateJobPosting(req, deps.Limits)
	}
	return newFeature(FeatureJobPosting, jobPostingFailure, validate, assistant.GenerateJobPosting, deps)
}

// DefaultJobPostingRequest is the form state of a freshly mounted screen.
func DefaultJobPostingRequest() ai.JobPostingRequest {
	return ai.JobPostingRequest{Tone: ai.ToneFormal}
}

func ValidateJobPosting(req ai.JobPostingRequest, limits Limits) error {
	switch {
	case blank(req.Title):
		return &ValidationError{Field: "title", Message: jobPostingMissing}
	case blank(req.Department):
		return &ValidationError{Field: "department", Message: jobPostingMissing}
	case blank(req.Requirements):
		return &ValidationError{Field: "requirements", Message: jobPostingMissing}
	case blank(string(req.Tone)):
		return &ValidationError{Field: "tone", Message: jobPostingMissing}
	case !oneOf(req.Tone, ai.Tones()):
		return &ValidationError{Field: "tone", Message: jobPostingBadTone}
	}

	if err := checkLength(limits, "title", "título", req.Title); err != nil {
		return err
	}
	if err := checkLength(limits, "department", "departamento", req.Department); err != nil {
		return err
	}
	return checkLength(limits, "requirements", "requisitos", req.Requirements)
}

// ExportJobPosting renders a posting as the plain text copied to the clipboard.
func ExportJobPosting(result *ai.JobPostingResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(result.Title)
	b.WriteString("\n\nResumo:\n")
	b.WriteString(result.Summary)
	writeSection(&b, "Responsabilidades", result.Responsibilities)
	writeSection(&b, "Requisitos", result.Requirements)
	writeSection(&b, "Benefícios", result.Benefits)

	return strings.TrimSpace(b.String())
}

// writeSection writes the label line, then one "- item" line per item. An empty
// list still leaves its blank line.
func writeSection(b *strings.Builder, label string, items []string) {
	b.WriteString("\n\n")
	b.WriteString(label)
	b.WriteString(":\n")
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
}

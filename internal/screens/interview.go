package screens

import (
	"github.com/spigell/hr-assistant/internal/ai"
)

const (
	FeatureInterview = "interview_script"

	interviewFailure  = "Erro ao gerar roteiro. Tente novamente."
	interviewMissing  = "Por favor, preencha o cargo e o foco da entrevista."
	interviewBadLevel = "Nível inválido. Escolha Júnior, Pleno, Sênior, Especialista ou Gestão."
)

func NewInterview(assistant ai.Assistant, deps Deps) *InterviewFeature {
	validate := func(req ai.InterviewPrepRequest) error {
		return ValidateInterview(req, deps.Limits)
	}
	return newFeature(FeatureInterview, interviewFailure, validate, assistant.GenerateInterviewScript, deps)
}

func DefaultInterviewRequest() ai.InterviewPrepRequest {
	return ai.InterviewPrepRequest{Level: ai.LevelMid}
}

func ValidateInterview(req ai.InterviewPrepRequest, limits Limits) error {
	switch {
	case blank(req.Role):
		return &ValidationError{Field: "role", Message: interviewMissing}
	case blank(req.Focus):
		return &ValidationError{Field: "focus", Message: interviewMissing}
	case !oneOf(req.Level, ai.Levels()):
		return &ValidationError{Field: "level", Message: interviewBadLevel}
	}

	if err := checkLength(limits, "role", "cargo", req.Role); err != nil {
		return err
	}
	return checkLength(limits, "focus", "foco", req.Focus)
}

// QuestionKind is the badge shown next to an interview question.
type QuestionKind string

const (
	KindTechnical   QuestionKind = "technical"
	KindBehavioral  QuestionKind = "behavioral"
	KindSituational QuestionKind = "situational"
)

// QuestionTone maps a question type to its badge. Values outside the schema
// enum are shown as situational.
func QuestionTone(t ai.QuestionType) QuestionKind {
	switch t {
	case ai.QuestionTechnical:
		return KindTechnical
	case ai.QuestionBehavioral:
		return KindBehavioral
	default:
		return KindSituational
	}
}

const collapsed = -1

// Accordion tracks which interview question is expanded. At most one is open
// and a fresh accordion opens the first question.
type Accordion struct {
	open int
}

func NewAccordion() Accordion {
	return Accordion{open: 0}
}

// AccordionAt restores an accordion from a rendered index; negative means none.
func AccordionAt(index int) Accordion {
	if index < 0 {
		return Accordion{open: collapsed}
	}
	return Accordion{open: index}
}

// Toggle collapses question i when it is open, otherwise opens it and closes any other.
func (a *Accordion) Toggle(i int) {
	if a.open == i {
		a.open = collapsed
		return
	}
	a.open = i
}

func (a Accordion) IsOpen(i int) bool {
	return a.open != collapsed && a.open == i
}

// Open returns the expanded index, if any.
func (a Accordion) Open() (int, bool) {
	if a.open == collapsed {
		return 0, false
	}
	return a.open, true
}

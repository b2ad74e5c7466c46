package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spigell/hr-assistant/internal/ai"
	"github.com/spigell/hr-assistant/internal/ai/mocks"
)

func TestInterviewSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	assistant := mocks.NewMockAssistant(ctrl)

	req := ai.InterviewPrepRequest{Role: "Product Manager", Level: ai.LevelMid, Focus: "Discovery"}
	assistant.EXPECT().
		GenerateInterviewScript(gomock.Any(), req).
		Return(&ai.InterviewScriptResult{
			Introduction: "Olá",
			Questions: []ai.InterviewQuestion{
				{Question: "q1", Type: ai.QuestionTechnical, ExpectedAnswerKeyPoints: []string{"a"}},
				{Question: "q2", Type: ai.QuestionBehavioral, ExpectedAnswerKeyPoints: []string{}},
			},
			Conclusion: "Tchau",
		}, nil)

	feature := NewInterview(assistant, testDeps(nil))
	out := feature.Submit(context.Background(), req)

	result, ok := out.Result()
	require.True(t, ok)
	require.Len(t, result.Questions, 2)
	assert.Equal(t, KindTechnical, QuestionTone(result.Questions[0].Type))
}

func TestInterviewValidation(t *testing.T) {
	assert.Equal(t, ai.LevelMid, DefaultInterviewRequest().Level)

	var verr *ValidationError
	err := ValidateInterview(DefaultInterviewRequest(), Limits{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "role", verr.Field)
	assert.Equal(t, interviewMissing, verr.Message)

	err = ValidateInterview(ai.InterviewPrepRequest{Role: "r", Focus: "f", Level: "Estagiário"}, Limits{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, interviewBadLevel, verr.Message)

	assert.NoError(t, ValidateInterview(ai.InterviewPrepRequest{Role: "r", Focus: "f", Level: ai.LevelManagement}, Limits{}))
}

func TestQuestionTone(t *testing.T) {
	assert.Equal(t, KindTechnical, QuestionTone(ai.QuestionTechnical))
	assert.Equal(t, KindBehavioral, QuestionTone(ai.QuestionBehavioral))
	assert.Equal(t, KindSituational, QuestionTone(ai.QuestionSituational))
	assert.Equal(t, KindSituational, QuestionTone("Cultural"))
}

func TestAccordion(t *testing.T) {
	acc := NewAccordion()
	assert.True(t, acc.IsOpen(0))
	assert.False(t, acc.IsOpen(1))

	acc.Toggle(2)
	assert.True(t, acc.IsOpen(2))
	assert.False(t, acc.IsOpen(0), "opening one question closes the others")

	acc.Toggle(2)
	_, open := acc.Open()
	assert.False(t, open)

	acc.Toggle(2)
	idx, open := acc.Open()
	assert.True(t, open)
	assert.Equal(t, 2, idx)
}

func TestAccordionToggleTwiceCollapsesAgain(t *testing.T) {
	for _, start := range []int{-1, 0, 3} {
		acc := AccordionAt(start)
		require.False(t, acc.IsOpen(1))

		acc.Toggle(1)
		assert.True(t, acc.IsOpen(1), "start %d", start)
		assert.False(t, acc.IsOpen(start), "start %d: only one question is open", start)

		acc.Toggle(1)
		assert.False(t, acc.IsOpen(1), "start %d", start)
		_, open := acc.Open()
		assert.False(t, open, "start %d", start)
	}

	acc := AccordionAt(-1)
	acc.Toggle(1)
	acc.Toggle(1)
	assert.Equal(t, AccordionAt(-1), acc)
}

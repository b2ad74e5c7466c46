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

func TestEmptyResumeSkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	assistant := mocks.NewMockAssistant(ctrl)

	feature := NewResumeMatch(assistant, testDeps(nil))

	out := feature.Submit(context.Background(), ai.ResumeMatchRequest{JobDescription: "Go developer", ResumeText: "   "})

	assert.Equal(t, StatusFailed, out.Status())
	assert.True(t, out.Invalid())
	assert.Equal(t, resumeMatchMissing, out.Message())
}

func TestResumeMatchSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	assistant := mocks.NewMockAssistant(ctrl)
	assistant.EXPECT().
		AnalyzeResume(gomock.Any(), ai.ResumeMatchRequest{JobDescription: "Go", ResumeText: "Go, SQL"}).
		Return(&ai.ResumeMatchResult{MatchScore: 82, Recommendation: ai.RecommendationStrongCandidate}, nil)

	feature := NewResumeMatch(assistant, testDeps(nil))

	out := feature.Submit(context.Background(), ai.ResumeMatchRequest{JobDescription: "Go", ResumeText: "Go, SQL"})

	result, ok := out.Result()
	require.True(t, ok)
	assert.Equal(t, ToneSuccess, ScoreTone(result.MatchScore))
	assert.Equal(t, ToneSuccess, RecommendationTone(result.Recommendation))
}

func TestResumeMatchFailureMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	assistant := mocks.NewMockAssistant(ctrl)
	assistant.EXPECT().AnalyzeResume(gomock.Any(), gomock.Any()).Return(nil, ai.ErrMalformedResponse)

	feature := NewResumeMatch(assistant, testDeps(nil))

	out := feature.Submit(context.Background(), ai.ResumeMatchRequest{JobDescription: "a", ResumeText: "b"})
	assert.Equal(t, resumeMatchFailure, out.Message())
}

func TestScoreTone(t *testing.T) {
	cases := map[int]Tone{
		100: ToneSuccess,
		80:  ToneSuccess,
		79:  ToneWarning,
		60:  ToneWarning,
		59:  ToneDanger,
		0:   ToneDanger,
	}

	for score, want := range cases {
		assert.Equal(t, want, ScoreTone(score), "score %d", score)
	}
}

func TestRecommendationTone(t *testing.T) {
	assert.Equal(t, ToneSuccess, RecommendationTone(ai.RecommendationHire))
	assert.Equal(t, ToneSuccess, RecommendationTone(ai.RecommendationStrongCandidate))
	assert.Equal(t, ToneWarning, RecommendationTone(ai.RecommendationConsider))
	assert.Equal(t, ToneDanger, RecommendationTone(ai.RecommendationReject))
	assert.Equal(t, ToneDanger, RecommendationTone("Talvez"))
}

func TestResumeMatchValidationOrder(t *testing.T) {
	err := ValidateResumeMatch(ai.ResumeMatchRequest{}, Limits{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "jobDescription", verr.Field)

	err = ValidateResumeMatch(ai.ResumeMatchRequest{JobDescription: "x"}, Limits{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "resumeText", verr.Field)
}

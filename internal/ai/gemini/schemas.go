package gemini

import (
	"google.golang.org/genai"

	"github.com/spigell/hr-assistant/internal/ai"
)

// The schemas below are the contract with the model: field names, types and
// enum values must match the ai result types exactly.

func stringList(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       &genai.Schema{Type: genai.TypeString},
		Description: description,
	}
}

func enumOf[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func jobPostingSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":            {Type: genai.TypeString, Description: "O título final da vaga otimizado."},
			"summary":          {Type: genai.TypeString, Description: "Um resumo atraente da vaga."},
			"responsibilities": stringList("Lista de responsabilidades."),
			"requirements":     stringList("Lista de requisitos técnicos e soft skills."),
			"benefits":         stringList("Lista de benefícios e diferenciais da empresa."),
		},
		Required:         []string{"title", "summary", "responsibilities", "requirements", "benefits"},
		PropertyOrdering: []string{"title", "summary", "responsibilities", "requirements", "benefits"},
	}
}

func resumeMatchSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchScore":      {Type: genai.TypeInteger, Description: "Pontuação de 0 a 100 indicando a adequação."},
			"summary":         {Type: genai.TypeString, Description: "Resumo executivo da análise."},
			"strengths":       stringList("Pontos fortes do candidato."),
			"weaknesses":      stringList("Pontos fracos ou lacunas."),
			"missingKeywords": stringList("Palavras-chave importantes da vaga ausentes no currículo."),
			"recommendation":  {Type: genai.TypeString, Enum: enumOf(ai.Recommendations())},
		},
		Required:         []string{"matchScore", "summary", "strengths", "weaknesses", "missingKeywords", "recommendation"},
		PropertyOrdering: []string{"matchScore", "summary", "strengths", "weaknesses", "missingKeywords", "recommendation"},
	}
}

func interviewScriptSchema() *genai.Schema {
	question := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question":                {Type: genai.TypeString},
			"type":                    {Type: genai.TypeString, Enum: enumOf(ai.QuestionTypes())},
			"expectedAnswerKeyPoints": stringList("Pontos chave que o candidato deve mencionar."),
		},
		Required:         []string{"question", "type", "expectedAnswerKeyPoints"},
		PropertyOrdering: []string{"question", "type", "expectedAnswerKeyPoints"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"introduction": {Type: genai.TypeString, Description: "Texto de introdução para o entrevistador usar."},
			"questions":    {Type: genai.TypeArray, Items: question},
			"conclusion":   {Type: genai.TypeString, Description: "Texto de encerramento da entrevista."},
		},
		Required:         []string{"introduction", "questions", "conclusion"},
		PropertyOrdering: []string{"introduction", "questions", "conclusion"},
	}
}

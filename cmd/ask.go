package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hr-assistant/internal/ai"
	"github.com/spigell/hr-assistant/internal/screens"
)

const (
	PromptBack = "back"
	PromptExit = "exit"
)

var errExit = errors.New("exit requested")

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Use the HR assistant from the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		ask(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func ask(out io.Writer) {
	ctx := context.Background()

	logger, config := bootstrap()

	assistant, err := newAssistant(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building the gemini assistant", zap.Error(err))
	}

	features := screens.New(assistant, screens.Deps{
		Logger: logger,
		Limits: screenLimits(config.AI),
	})

	maxUpload := int64(screens.DefaultMaxUploadBytes)
	if config.Server != nil && config.Server.MaxUploadBytes > 0 {
		maxUpload = config.Server.MaxUploadBytes
	}

	for {
		view, err := selectView()
		if err == nil {
			switch view {
			case screens.ViewResumeAnalyzer:
				err = askResumeMatch(ctx, out, features.ResumeMatch, maxUpload)
			case screens.ViewInterviewPrep:
				err = askInterview(ctx, out, features.Interview)
			default:
				err = askJobPosting(ctx, out, features.JobPosting)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
			logger.Info("exiting", zap.String("reason", "requested by user"))
			return
		default:
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func selectView() (screens.View, error) {
	items := make([]string, 0, len(screens.Views())+1)
	for _, v := range screens.Views() {
		items = append(items, v.Label())
	}

	menu := promptui.Select{
		Label: "Escolha uma ferramenta",
		Items: append(items, PromptExit),
	}

	_, selected, err := menu.Run()
	if err != nil {
		return screens.DefaultView, err
	}
	if selected == PromptExit {
		return screens.DefaultView, errExit
	}

	return screens.ViewByLabel(selected), nil
}

func askJobPosting(ctx context.Context, out io.Writer, feature *screens.JobPostingFeature) error {
	defer feature.Reset()

	req := screens.DefaultJobPostingRequest()

	var err error
	if req.Title, err = promptText("Título da vaga", req.Title); err != nil {
		return err
	}
	if req.Department, err = promptText("Departamento", req.Department); err != nil {
		return err
	}
	if req.Requirements, err = promptText("Requisitos principais", req.Requirements); err != nil {
		return err
	}
	if req.Tone, err = selectOne("Tom", ai.Tones(), req.Tone); err != nil {
		return err
	}

	fmt.Fprintln(out, "Gerando...")

	outcome := feature.Submit(ctx, req)
	result, ok := outcome.Result()
	if !ok {
		fmt.Fprintln(out, outcome.Message())
		return nil
	}

	fmt.Fprintf(out, "\n%s\n\n", screens.ExportJobPosting(result))
	return nil
}

func askResumeMatch(ctx context.Context, out io.Writer, feature *screens.ResumeMatchFeature, maxUpload int64) error {
	defer feature.Reset()

	var (
		req ai.ResumeMatchRequest
		err error
	)

	if req.JobDescription, err = promptText("Descrição da vaga", ""); err != nil {
		return err
	}

	path, err := promptText("Arquivo do currículo (.txt, .md) ou vazio para colar o texto", "")
	if err != nil {
		return err
	}

	if path = strings.TrimSpace(path); path != "" {
		req.ResumeText, err = readResumePath(path, maxUpload)
		if err != nil {
			fmt.Fprintln(out, screens.UploadMessage(err, maxUpload))
			return nil
		}
	} else if req.ResumeText, err = promptText("Currículo", ""); err != nil {
		return err
	}

	fmt.Fprintln(out, "Analisando...")

	outcome := feature.Submit(ctx, req)
	result, ok := outcome.Result()
	if !ok {
		fmt.Fprintln(out, outcome.Message())
		return nil
	}

	printResumeMatch(out, result)
	return nil
}

func readResumePath(path string, maxUpload int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", screens.ErrUnsupportedFile, err)
	}
	defer f.Close()

	return screens.ReadResumeFile(filepath.Base(path), "", f, maxUpload)
}

func printResumeMatch(out io.Writer, result *ai.ResumeMatchResult) {
	fmt.Fprintf(out, "\nCompatibilidade: %d%% [%s]\n", result.MatchScore, screens.ScoreTone(result.MatchScore))
	fmt.Fprintf(out, "Recomendação: %s [%s]\n\n", result.Recommendation, screens.RecommendationTone(result.Recommendation))
	fmt.Fprintf(out, "%s\n", result.Summary)
	printList(out, "Pontos fortes", result.Strengths)
	printList(out, "Pontos de atenção", result.Weaknesses)
	printList(out, "Palavras-chave ausentes", result.MissingKeywords)
	fmt.Fprintln(out)
}

func askInterview(ctx context.Context, out io.Writer, feature *screens.InterviewFeature) error {
	defer feature.Reset()

	req := screens.DefaultInterviewRequest()

	var err error
	if req.Role, err = promptText("Cargo", req.Role); err != nil {
		return err
	}
	if req.Level, err = selectOne("Nível", ai.Levels(), req.Level); err != nil {
		return err
	}
	if req.Focus, err = promptText("Foco da entrevista", req.Focus); err != nil {
		return err
	}

	fmt.Fprintln(out, "Gerando...")

	outcome := feature.Submit(ctx, req)
	result, ok := outcome.Result()
	if !ok {
		fmt.Fprintln(out, outcome.Message())
		return nil
	}

	fmt.Fprintf(out, "\nIntrodução: %s\n", result.Introduction)
	if err := browseQuestions(out, result.Questions); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nEncerramento: %s\n\n", result.Conclusion)
	return nil
}

// browseQuestions lets the user expand one question at a time until "back".
func browseQuestions(out io.Writer, questions []ai.InterviewQuestion) error {
	accordion := screens.NewAccordion()

	for {
		if i, open := accordion.Open(); open && i < len(questions) {
			q := questions[i]
			fmt.Fprintf(out, "\n%d. [%s] %s\n", i+1, screens.QuestionTone(q.Type), q.Question)
			printList(out, "Pontos-chave esperados", q.ExpectedAnswerKeyPoints)
		}

		items := make([]string, 0, len(questions)+1)
		for i, q := range questions {
			marker := "+"
			if accordion.IsOpen(i) {
				marker = "-"
			}
			items = append(items, fmt.Sprintf("%s %d. [%s] %s", marker, i+1, q.Type, q.Question))
		}

		list := promptui.Select{
			Label: "Perguntas",
			Items: append(items, PromptBack),
			Size:  10,
		}

		idx, selected, err := list.Run()
		if err != nil {
			return err
		}
		if selected == PromptBack {
			return nil
		}

		accordion.Toggle(idx)
	}
}

func promptText(label, current string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   current,
		AllowEdit: true,
	}
	return p.Run()
}

func selectOne[T ~string](label string, items []T, current T) (T, error) {
	cursor := 0
	for i, item := range items {
		if item == current {
			cursor = i
		}
	}

	s := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
	}

	idx, _, err := s.Run()
	if err != nil {
		return current, err
	}
	return items[idx], nil
}

func printList(out io.Writer, label string, items []string) {
	fmt.Fprintf(out, "\n%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(out, "- %s\n", item)
	}
}

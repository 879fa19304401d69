package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"taskscribe/internal/model"
	"taskscribe/internal/note"
	"taskscribe/pkg/gemini"
	pkgLog "taskscribe/pkg/log"
)

// Instruction phrases like "Rewrite the following text:" are stripped from
// the note body before it is embedded in a style template.
var (
	rewriteInstrRe   = regexp.MustCompile(`(?i)Rewrite.*?following text[^:]*:`)
	improveInstrRe   = regexp.MustCompile(`(?i)Improve.*?following text[^:]*:`)
	expandInstrRe    = regexp.MustCompile(`(?i)Expand.*?following text[^:]*:`)
	summarizeInstrRe = regexp.MustCompile(`(?i)(Summarize|Shorten).*?following text[^:]*:`)
)

// Extract sends note text to the generative backend. Style modes return the
// raw completion as prose; task mode parses the completion as a JSON array of
// structured tasks. JSON parse failure is fatal for the call.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input note.ExtractInput) (note.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return note.ExtractOutput{}, note.ErrEmptyInput
	}

	mode := input.Mode
	if mode == "" {
		// Legacy clients select behavior by embedding instruction words in
		// the text itself; kept as a fallback for wire compatibility.
		mode = detectMode(input.Text)
	}
	if !note.ValidModes[mode] {
		return note.ExtractOutput{}, note.ErrInvalidMode
	}

	uc.l.Infof(ctx, "Extract: user=%s mode=%s input_length=%d", sc.UserID, mode, len(input.Text))

	if mode != note.ModeTasks {
		return uc.extractStyled(ctx, mode, input.Text)
	}
	return uc.extractTasks(ctx, input.Text)
}

// detectMode sniffs instruction substrings in precedence order; first match
// wins, default is task extraction.
func detectMode(text string) note.Mode {
	switch {
	case strings.Contains(text, "Rewrite"):
		return note.ModeRewrite
	case strings.Contains(text, "Improve"):
		return note.ModeImprove
	case strings.Contains(text, "Expand"):
		return note.ModeExpand
	case strings.Contains(text, "Summarize"), strings.Contains(text, "Shorten"):
		return note.ModeSummarize
	default:
		return note.ModeTasks
	}
}

func (uc *implUseCase) extractStyled(ctx context.Context, mode note.Mode, text string) (note.ExtractOutput, error) {
	var prompt string
	switch mode {
	case note.ModeRewrite:
		prompt = gemini.BuildRewritePrompt(stripInstruction(rewriteInstrRe, text))
	case note.ModeImprove:
		prompt = gemini.BuildImprovePrompt(stripInstruction(improveInstrRe, text))
	case note.ModeExpand:
		prompt = gemini.BuildExpandPrompt(stripInstruction(expandInstrRe, text))
	case note.ModeSummarize:
		prompt = gemini.BuildSummarizePrompt(stripInstruction(summarizeInstrRe, text))
	}

	completion, err := uc.llm.GenerateText(ctx, prompt, nil)
	if err != nil {
		uc.l.Errorf(ctx, "Extract: style completion failed: %v", err)
		return note.ExtractOutput{}, fmt.Errorf("%w: %v", note.ErrLLMUnavailable, err)
	}

	return note.ExtractOutput{Mode: mode, Text: completion}, nil
}

func (uc *implUseCase) extractTasks(ctx context.Context, text string) (note.ExtractOutput, error) {
	prompt := gemini.BuildExtractTasksPrompt(text)

	completion, err := uc.llm.GenerateText(ctx, prompt, &gemini.GenerationConfig{
		Temperature:     0.2, // low temperature for deterministic JSON output
		MaxOutputTokens: 2048,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Extract: task completion failed: %v", err)
		return note.ExtractOutput{}, fmt.Errorf("%w: %v", note.ErrLLMUnavailable, err)
	}

	cleaned := stripCodeFences(completion)

	var raw []rawTask
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		uc.l.Errorf(ctx, "Extract: failed to parse LLM response. Raw=%q Cleaned=%q", completion, cleaned)
		return note.ExtractOutput{}, fmt.Errorf("%w: %v", note.ErrBadLLMOutput, err)
	}

	tasks := make([]note.ExtractedTask, 0, len(raw))
	for _, r := range raw {
		tasks = append(tasks, r.normalize(ctx, uc.l))
	}

	uc.l.Infof(ctx, "Extract: LLM produced %d tasks", len(tasks))
	return note.ExtractOutput{Mode: note.ModeTasks, Tasks: tasks}, nil
}

// rawTask mirrors the JSON shape the prompt asks for. Nullable fields come
// back as JSON null, so pointers are used before normalization.
type rawTask struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Assignee    *string `json:"assignee"`
}

// normalize enforces the output invariants: priority always within 0..4
// (out-of-range treated as unspecified), due date either valid ISO-8601 or
// dropped.
func (r rawTask) normalize(ctx context.Context, l pkgLog.Logger) note.ExtractedTask {
	t := note.ExtractedTask{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Priority:    r.Priority,
	}

	if t.Priority < 0 || t.Priority > 4 {
		l.Warnf(ctx, "Extract: priority %d out of range for %q, treating as unspecified", r.Priority, t.Title)
		t.Priority = 0
	}

	if r.DueDate != nil && *r.DueDate != "" {
		if isValidISODate(*r.DueDate) {
			t.DueDate = *r.DueDate
		} else {
			l.Warnf(ctx, "Extract: dropping malformed due date %q for %q", *r.DueDate, t.Title)
		}
	}

	if r.Assignee != nil {
		t.Assignee = strings.TrimSpace(*r.Assignee)
	}

	return t
}

// isValidISODate accepts a calendar date or a full RFC3339 timestamp.
func isValidISODate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	return false
}

// stripInstruction removes the first occurrence of the instruction phrase.
func stripInstruction(re *regexp.Regexp, text string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
}

// stripCodeFences removes a leading ```json (or bare ```) fence and the
// matching trailing fence, when present.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}

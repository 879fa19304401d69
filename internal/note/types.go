package note

// Task is a title+body pair produced by markdown segmentation.
type Task struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

// ExtractedTask is the structured task record produced by LLM extraction.
// Priority: 0 = unspecified, 1 = most urgent ... 4 = least urgent.
// DueDate is empty or a valid ISO-8601 date string, never malformed.
type ExtractedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	DueDate     string `json:"dueDate,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// Mode selects the extraction behavior.
type Mode string

const (
	ModeRewrite   Mode = "rewrite"
	ModeImprove   Mode = "improve"
	ModeExpand    Mode = "expand"
	ModeSummarize Mode = "summarize"
	ModeTasks     Mode = "tasks" // default: structured task extraction
)

// ValidModes is the closed set of accepted extraction modes.
var ValidModes = map[Mode]bool{
	ModeRewrite:   true,
	ModeImprove:   true,
	ModeExpand:    true,
	ModeSummarize: true,
	ModeTasks:     true,
}

// ExtractInput is the input for Extract. When Mode is empty the mode is
// detected from instruction phrases in the text (legacy behavior).
type ExtractInput struct {
	Text string
	Mode Mode
}

// ExtractOutput is a tagged union: task mode fills Tasks, style modes fill
// Text. Mode records which variant is populated.
type ExtractOutput struct {
	Mode  Mode
	Tasks []ExtractedTask
	Text  string
}

// SegmentInput is the input for Segment.
type SegmentInput struct {
	Markdown string
}

// SegmentOutput is the ordered task sequence for one note.
type SegmentOutput struct {
	Tasks []Task
}

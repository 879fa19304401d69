package jira

// Atlassian Document Format. Jira Cloud v3 rejects plain-string descriptions,
// so plain text is wrapped in a one-paragraph document.

// ADFDoc is a minimal Atlassian document.
type ADFDoc struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []ADFNode `json:"content"`
}

// ADFNode is a document node. Only paragraph and text nodes are used here.
type ADFNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []ADFNode `json:"content,omitempty"`
}

// DocumentFromText wraps plain text in an ADF document.
func DocumentFromText(text string) ADFDoc {
	return ADFDoc{
		Version: 1,
		Type:    "doc",
		Content: []ADFNode{
			{
				Type: "paragraph",
				Content: []ADFNode{
					{Type: "text", Text: text},
				},
			},
		},
	}
}

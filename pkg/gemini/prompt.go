package gemini

import "fmt"

// Prompt templates for the note pipeline. Style templates take the cleaned
// note text (instruction phrase already stripped) and return prose; the task
// extraction template asks for a bare JSON array.

const rewritePrompt = `INSTRUCTIONS: Rewrite the following meeting notes to be more structured and action-oriented. Focus on:
1. Clarifying action items and their owners
2. Highlighting deadlines and priorities
3. Organizing information in a logical sequence
4. Making language concise and specific
5. Removing unnecessary conversational elements

TEXT TO REWRITE:
%s

OUTPUT: Return ONLY the rewritten text with no additional explanations, comments, or formatting.`

const improvePrompt = `INSTRUCTIONS: Improve these meeting notes to make them more actionable and structured for task creation:
1. Format action items as clear, discrete tasks
2. Ensure each task has an identifiable owner (if mentioned)
3. Extract and highlight any deadlines, priority levels, or dependencies
4. Eliminate vague language and replace with specific, measurable details
5. Organize by project or work area for better task categorization

TEXT TO IMPROVE:
%s

OUTPUT: Return ONLY the improved text that could be easily parsed into tasks. No additional explanations, comments, or formatting.`

const expandPrompt = `INSTRUCTIONS: Expand these meeting notes with additional context and detail to make them more actionable, while maintaining clarity:
1. Add necessary context for each action item
2. Include relevant acceptance criteria or definition of done
3. Add specificity to vague tasks (what, how, when)
4. Clarify dependencies between tasks where applicable
5. Include any relevant resource links or references mentioned

Keep the expanded content focused on actionable information that would be useful in task management systems.

TEXT TO EXPAND:
%s

OUTPUT: Return ONLY the expanded text with no additional explanations, comments, or formatting.`

const summarizePrompt = `INSTRUCTIONS: Summarize these meeting notes into concise, actionable points that could be directly converted to tasks:
1. Extract only the key decisions and action items
2. Include only essential who/what/when details for each item
3. Format as a list of discrete action points
4. Retain priority indicators and deadlines
5. Remove discussions, background context, and other non-actionable content

TEXT TO SUMMARIZE:
%s

OUTPUT: Return ONLY the summarized text as a concise list of actionable items. No additional explanations, comments, or formatting.`

const extractTasksPrompt = `Here is the input text from meeting notes: %s

For each action item or task mentioned in these notes:

1. Create a title (max 5-7 words) that clearly describes the task
2. Extract a detailed description including context and requirements
3. Identify the priority level (1-4, where 1 is highest)
4. Extract any mentioned due date
5. Identify the assignee if mentioned

Format each task as a JSON object with these fields:
- title (string): Short, descriptive title
- description (string): Detailed task description
- priority (number): 1-4 or 0 if not specified
- dueDate (string): ISO 8601 date format or null if not specified
- assignee (string): Person's name or null if not specified

Return an array of these JSON objects. Return ONLY THE JSON AND NOTHING ELSE.`

const autocompletePrompt = `Complete the following text naturally by just finishing the current thought or sentence.
Keep the completion very brief - no more than 5-6 words maximum.
Act like a sentence finisher, not an AI assistant generating new content.

%s

<CURRENT_CURSOR_POSITION>
OUTPUT: Return ONLY the brief completion (5-6 words maximum). No explanations, comments, or formatting.`

const titlePrompt = `Based on the following content, generate a 3-4 word title that summarizes the main topic or intent:

"%s"

Return ONLY the title as a plain string with no markdown, quotes, or formatting.`

// BuildRewritePrompt builds the rewrite style prompt.
func BuildRewritePrompt(text string) string { return fmt.Sprintf(rewritePrompt, text) }

// BuildImprovePrompt builds the improve style prompt.
func BuildImprovePrompt(text string) string { return fmt.Sprintf(improvePrompt, text) }

// BuildExpandPrompt builds the expand style prompt.
func BuildExpandPrompt(text string) string { return fmt.Sprintf(expandPrompt, text) }

// BuildSummarizePrompt builds the summarize/shorten style prompt.
func BuildSummarizePrompt(text string) string { return fmt.Sprintf(summarizePrompt, text) }

// BuildExtractTasksPrompt builds the JSON task extraction prompt.
func BuildExtractTasksPrompt(text string) string { return fmt.Sprintf(extractTasksPrompt, text) }

// BuildAutocompletePrompt builds the inline completion prompt.
func BuildAutocompletePrompt(text string) string { return fmt.Sprintf(autocompletePrompt, text) }

// BuildTitlePrompt builds the title generation prompt.
func BuildTitlePrompt(text string) string { return fmt.Sprintf(titlePrompt, text) }

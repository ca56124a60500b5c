package summarizer

import (
	"fmt"
	"strings"
)

// Prompt templates. The review template insists on a bare single sentence
// because the model otherwise pads its answer with introductions.
const (
	bookPromptTemplate    = "Summarize this book:\n%s by %s"
	contentPromptTemplate = "Summarize this book:\n%s"
	reviewPromptTemplate  = "Summarize the following reviews in a single sentence. Do not add any introduction or explanation. Only return the core content:\n%s"
)

// BookPrompt builds the prompt for summarizing a book by title and author.
func BookPrompt(title, author string) string {
	return fmt.Sprintf(bookPromptTemplate, title, author)
}

// ContentPrompt builds the prompt for summarizing raw caller-supplied text.
func ContentPrompt(content string) string {
	return fmt.Sprintf(contentPromptTemplate, content)
}

// ReviewsPrompt builds the single-sentence synthesis prompt from review
// texts, newline-separated in insertion order. Empty texts are skipped.
func ReviewsPrompt(texts []string) string {
	var kept []string
	for _, t := range texts {
		if t != "" {
			kept = append(kept, t)
		}
	}
	return fmt.Sprintf(reviewPromptTemplate, strings.Join(kept, "\n"))
}

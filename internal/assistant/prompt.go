package assistant

import (
	"fmt"
	"strings"
)

const smartSystemPrompt = `Answer the user's question based only on the provided information. Do not use any external knowledge. If the answer is not contained in the provided text, say so.`

func smartUserMessage(docCtx, question string) string {
	var b strings.Builder
	b.WriteString("Provided Information:\n")
	b.WriteString(docCtx)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

func smartPlusSystemPrompt(role, mood string) string {
	if role == "" {
		role = "a helpful tutor"
	}
	if mood == "" {
		mood = "neutral"
	}
	return fmt.Sprintf("As %s in a %s mood, provide a comprehensive answer to the user's question. Use the provided information from uploaded documents as primary context, but feel free to supplement with your general knowledge.", role, mood)
}

func smartPlusUserMessage(docCtx, question string) string {
	var b strings.Builder
	if docCtx != "" {
		b.WriteString(docCtx)
	} else {
		b.WriteString("No specific context from documents was found.")
	}
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

package explain

import "fmt"

const systemPrompt = `You are a friendly astronomy tutor for curious learners.
Explain space science topics in clear, simple language a beginner can follow.
Keep explanations factual, engaging, and around three to five short paragraphs.
Do not use markdown formatting; respond in plain prose.`

func buildTopicPrompt(topic string) string {
	return fmt.Sprintf("Explain %s in simple terms for someone new to astronomy. Cover what it is, how it forms or works, and one surprising fact about it.", topic)
}

func buildQuestionPrompt(question string) string {
	return fmt.Sprintf("Answer this astronomy question in simple terms: %s", question)
}

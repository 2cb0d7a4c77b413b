package provider

// SystemPrompt instructs the model how to paraphrase.
const SystemPrompt = "You are an expert at paraphrasing text. Your task is to rewrite the provided text with different words and structure while preserving the original meaning. Avoid simply replacing words with synonyms. Instead, restructure sentences and use different phrases to express the same ideas. The paraphrased text should be natural, fluent, and maintain the same tone and style as the original."

const userPromptPrefix = "Please paraphrase the following text. Only return the paraphrased version, no explanations or additional text: "

// UserPrompt embeds the literal input text in the instruction template.
func UserPrompt(text string) string {
	return userPromptPrefix + text
}

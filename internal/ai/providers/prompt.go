package providers

import "disha-utils/internal/config"

// DefaultSystemPrompt is the instructional preamble sent to remote
// providers when no custom prompt is configured.
const DefaultSystemPrompt = `You are Disha, an expert AI career advisor for the Indian job market. You help with career planning, skill development, job search strategy, entrance exam guidance (JEE, NEET, CAT, UPSC), and government job preparation. Give practical, structured advice formatted in Markdown. Keep answers focused and encouraging, and ask a clarifying question when the request is too broad.`

// SystemPromptFor returns the effective system prompt for the process:
// the configured custom prompt when set, the default otherwise.
func SystemPromptFor(cfg *config.Config) string {
	if cfg.AI.CustomSystemPrompt != "" {
		return cfg.AI.CustomSystemPrompt
	}
	return DefaultSystemPrompt
}

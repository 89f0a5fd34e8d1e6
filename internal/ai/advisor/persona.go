package advisor

import (
	"regexp"
	"strings"
)

// Persona overlay used when a custom system prompt is configured. It
// intentionally recognizes only four topic buckets and falls through to a
// generic reply otherwise; the full knowledge-table dispatch stays
// reserved for default mode.

var personaNamePattern = regexp.MustCompile(`(?i)named\s+([A-Za-z]+)`)

type personaTopic struct {
	keywords []string
	advice   string
}

var personaTopics = []personaTopic{
	{
		keywords: []string{"career change", "switch", "transition", "change my career"},
		advice: "Changing careers is a project, not a jump. Map your transferable skills, pick one target role, close the biggest skill gap with a focused course, and build a small portfolio before you start applying.",
	},
	{
		keywords: []string{"skill", "learn", "improve", "upskill"},
		advice: "Pick one skill and go deep for a month instead of sampling five. Projects beat certificates: build something small, share it, and ask for feedback early.",
	},
	{
		keywords: []string{"job search", "job hunt", "apply", "interview", "resume"},
		advice: "Treat the search like a funnel: tailor your resume to each role, apply to a focused list rather than everywhere, and rehearse your three best work stories for interviews.",
	},
	{
		keywords: []string{"salary", "compensation", "pay", "negotiat"},
		advice: "Research the band for your role and city before any negotiation, anchor slightly above your target, and negotiate the whole package - joining bonus, variable pay and review timelines count too.",
	},
}

// personaReply synthesizes a short persona-flavored reply from the custom
// prompt: greeting (with the persona's name when the prompt declares one),
// a topic-matched advice block, and an encouraging close. Emoji are
// dropped when the prompt asks for a formal register.
func personaReply(customPrompt, message string) string {
	name := extractPersonaName(customPrompt)
	useEmoji := personaUsesEmoji(customPrompt)

	var b strings.Builder

	greeting := "Hello!"
	if useEmoji {
		greeting = "Hello! 👋"
	}
	b.WriteString(greeting)
	if name != "" {
		b.WriteString(" I'm ")
		b.WriteString(name)
		b.WriteString(", your career guide.")
	}
	b.WriteString("\n\n")

	b.WriteString(adviceForTopic(message))
	b.WriteString("\n\n")

	if useEmoji {
		b.WriteString("You've got this - every step you take now compounds later. 🚀")
	} else {
		b.WriteString("Keep at it - consistent small steps are what move careers.")
	}

	return b.String()
}

func adviceForTopic(message string) string {
	m := strings.ToLower(message)
	for _, topic := range personaTopics {
		if containsAny(m, topic.keywords) {
			return topic.advice
		}
	}
	return "Happy to help with your career questions. I can talk through career changes, skill building, job search strategy or salary negotiation - tell me a bit about where you are right now."
}

func extractPersonaName(customPrompt string) string {
	matches := personaNamePattern.FindStringSubmatch(customPrompt)
	if len(matches) == 2 {
		return matches[1]
	}
	return ""
}

func personaUsesEmoji(customPrompt string) bool {
	lower := strings.ToLower(customPrompt)
	for _, marker := range []string{"no emoji", "without emoji", "formal", "professional"} {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

package advisor

import "fmt"

// Per-intent response builders. Output shape is stable Markdown so the
// UI layer can render it directly.

func welcomeResponse() string {
	return composeSections(
		"## Welcome to Disha",
		"I can help you with career planning, skill development, entrance exam strategy and government job preparation.",
		"Try asking about:\n"+bulletList([]string{
			"Changing your career or switching domains",
			"Which skills to build for your target role",
			"Options after 12th or during graduation",
			"JEE, NEET, CAT or UPSC preparation",
			"Government job categories and exams",
		}),
	)
}

func generalCareerResponse() string {
	return composeSections(
		"## Career Guidance",
		"A good career plan starts from three questions: what you enjoy, what you are good at, and what the market pays for. Here is a snapshot of where hiring is strong right now.",
		industriesSection(),
		"Tell me your background or target role and I can narrow this down.",
	)
}

func careerChangeResponse() string {
	return composeSections(
		"## Career Change Roadmap",
		"Switching careers works best as a staged move rather than a leap. A typical transition takes 6-12 months of deliberate preparation.",
		"**Action plan**\n"+numberedList([]string{
			"List the skills from your current role that transfer to the target role",
			"Pick one target industry and two target job titles - not more",
			"Close the top skill gaps with a focused course or certification",
			"Build two or three small portfolio projects that prove the new skill",
			"Rewrite your resume around the target role, not your old one",
			"Start networking in the target industry before you quit",
		}),
		industriesSection(),
		"If you tell me your current role and target, I can suggest a concrete bridge path.",
	)
}

func skillsResponse() string {
	return composeSections(
		"## Skills Assessment",
		"Strong profiles balance technical depth with communication and professional skills. Rate yourself honestly against these tracks and pick the weakest one to work on first.",
		skillTracksSection(),
		"**How to improve**\n"+numberedList([]string{
			"Pick one skill and practice it for 4-6 weeks before adding another",
			"Prefer projects over certificates - proof beats claims",
			"Get feedback early: mock interviews, code reviews, writing reviews",
		}),
	)
}

func industryResponse() string {
	return composeSections(
		"## Industry Overview",
		industriesSection(),
		"Each of these rewards a different mix of skills. Ask me about a specific industry for role-level detail.",
	)
}

func governmentJobsResponse() string {
	return composeSections(
		"## Government Jobs in India",
		governmentSection(),
		"**General preparation advice**\n"+bulletList([]string{
			"Pick one category and stick with its syllabus for at least a year",
			"Current affairs and quantitative aptitude are common to most exams",
			"Previous-year papers are the most reliable guide to difficulty",
		}),
	)
}

func studentResponse(stage studentStage, examKey string) string {
	switch stage {
	case stageEntrance:
		if guide, ok := examGuides[examKey]; ok {
			return examSection(guide)
		}
		return composeSections(
			"## Entrance Exam Guidance",
			"Tell me which exam you are preparing for - JEE, NEET, CAT or UPSC - and I can share a pattern-wise preparation plan.",
			streamsSection(),
		)
	case stage12th:
		return composeSections(
			"## Guidance After Class 12",
			streamsSection(),
			"Pick the path that matches your stream and interest, then work backwards to the entrance exam it needs.",
		)
	case stageGraduation:
		return composeSections(
			"## Making Graduation Count",
			"**Priorities during your degree**\n"+numberedList([]string{
				"Build one marketable skill per year alongside the syllabus",
				"Do at least one internship before final year",
				"Prepare for placements from the fifth semester: aptitude, DSA or domain basics, and interview practice",
				"Keep a simple portfolio - GitHub, writing samples or case studies",
			}),
			skillTracksSection(),
		)
	default:
		return composeSections(
			"## Student Career Guidance",
			fmt.Sprintf("I can help at every stage - school streams, entrance exams (%s), college placements and first jobs.", "JEE, NEET, CAT, UPSC"),
			streamsSection(),
		)
	}
}

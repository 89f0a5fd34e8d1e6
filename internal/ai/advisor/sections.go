package advisor

import (
	"fmt"
	"strings"
)

// Small formatting helpers composed into full responses. Each section
// renders one knowledge table; the composer joins non-empty sections.

func composeSections(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, "\n\n")
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(b.String(), "\n")
}

func industriesSection() string {
	var b strings.Builder
	b.WriteString("## Growing Industries in India\n\n")
	for _, ind := range industries {
		fmt.Fprintf(&b, "**%s** - %s\n", ind.Name, ind.Outlook)
		fmt.Fprintf(&b, "  - Typical roles: %s\n", strings.Join(ind.Roles, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func skillTracksSection() string {
	var b strings.Builder
	b.WriteString("## Skills Worth Building\n")
	for _, track := range skillTracks {
		fmt.Fprintf(&b, "\n**%s**\n%s\n", track.Name, bulletList(track.Skills))
	}
	return strings.TrimRight(b.String(), "\n")
}

func streamsSection() string {
	var b strings.Builder
	b.WriteString("## Options After 12th\n\n")
	for _, opt := range streamsAfter12th {
		fmt.Fprintf(&b, "**%s**\n%s\n\n", opt.Stream, bulletList(opt.Paths))
	}
	return strings.TrimRight(b.String(), "\n")
}

func governmentSection() string {
	var b strings.Builder
	b.WriteString("## Government Job Categories\n\n")
	for _, cat := range governmentCategories {
		fmt.Fprintf(&b, "**%s**: %s\n", cat.Category, strings.Join(cat.Exams, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func examSection(guide examGuide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s Preparation Guide\n\n", guide.Key)
	fmt.Fprintf(&b, "**%s**\n\n", guide.FullName)
	fmt.Fprintf(&b, "**Exam pattern**: %s\n\n", guide.Pattern)
	b.WriteString("**Preparation plan**\n")
	b.WriteString(numberedList(guide.Preparation))
	fmt.Fprintf(&b, "\n\n**Backup options**: %s", guide.Alternative)
	return b.String()
}

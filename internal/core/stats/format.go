package stats

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatWithCommas renders an integer with thousands separators
func FormatWithCommas(n int) string {
	return englishPrinter.Sprintf("%d", n)
}

// FormatCompact shortens large numbers with K, M and B suffixes
func FormatCompact(n int) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatHour renders a 0..23 hour as 12 hour clock text
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// TimeRange describes the hour span of a coding time bucket
func TimeRange(t CodingTime) string {
	switch t {
	case CodingMorning:
		return "5am - 12pm"
	case CodingAfternoon:
		return "12pm - 5pm"
	case CodingEvening:
		return "5pm - 11pm"
	default:
		return "11pm - 5am"
	}
}

// ContributionBadge labels overall PR plus issue volume
func ContributionBadge(prs, issues int) string {
	total := prs + issues
	switch {
	case total == 0:
		return "Solo Builder"
	case total < 10:
		return "Team Player"
	case total < 50:
		return "Active Contributor"
	case total < 100:
		return "Community Champion"
	default:
		return "Open Source Hero"
	}
}

// LanguageBadge labels the breadth of the language distribution
func LanguageBadge(languageCount int) string {
	switch {
	case languageCount <= 1:
		return "Specialist"
	case languageCount == 2:
		return "Dual Expert"
	case languageCount <= 4:
		return "Full Stack"
	default:
		return "Polyglot"
	}
}

// FormatDate renders a YYYY-MM-DD date as long form US English
func FormatDate(dateStr string) string {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("January 2, 2006")
}

package transcript

import (
	"regexp"
	"sort"
	"strings"
)

const (
	minTurnsConfirmed = 3
	maxSpeakers       = 10
)

// Transcripts use header lines like "Jim Halpert  0:13" or
// "Jim Halpert - 12:45" to mark speaker turns.
var reSpeakerHeader = regexp.MustCompile(`^([A-Za-z][A-Za-z\s\-\(\)\.]+?)\s*(?:-\s*)?(\d{1,2}:\d{2})\s*$`)

// SpeakerTurns holds per-speaker turn counts for one transcript
type SpeakerTurns struct {
	Name  string
	Turns int
}

// CountTurns returns per-speaker turn counts, most talkative first.
// Ties break alphabetically so the order is stable.
func CountTurns(text string) []SpeakerTurns {
	counts := make(map[string]int)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := reSpeakerHeader.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) > 2 && len(name) < 50 {
			counts[name]++
		}
	}

	turns := make([]SpeakerTurns, 0, len(counts))
	for name, n := range counts {
		turns = append(turns, SpeakerTurns{Name: name, Turns: n})
	}
	sort.Slice(turns, func(i, j int) bool {
		if turns[i].Turns != turns[j].Turns {
			return turns[i].Turns > turns[j].Turns
		}
		return turns[i].Name < turns[j].Name
	})

	return turns
}

// ConfirmedSpeakers returns speakers with enough turns to rule out
// header noise, capped at maxSpeakers.
func ConfirmedSpeakers(text string) []string {
	var confirmed []string
	for _, s := range CountTurns(text) {
		if s.Turns >= minTurnsConfirmed {
			confirmed = append(confirmed, s.Name)
		}
	}
	if len(confirmed) > maxSpeakers {
		confirmed = confirmed[:maxSpeakers]
	}
	return confirmed
}

// Patterns tried in order of preference when locating a project name.
var projectNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^.*?project\s*name[:\-\s]+(.+)$`),
	regexp.MustCompile(`(?im)^.*?project[:\-\s]+(.+)$`),
	regexp.MustCompile(`(?im)^.*?job\s*name[:\-\s]+(.+)$`),
	regexp.MustCompile(`(?im)^.*?job[:\-\s]+(.+)$`),
	regexp.MustCompile(`(?im)^.*?site[:\-\s]+(.+)$`),
	regexp.MustCompile(`(?im)^.*?client[:\-\s]+(.+)$`),
	regexp.MustCompile(`(?im)^.*?customer[:\-\s]+(.+)$`),
}

var (
	reLeadingArticle  = regexp.MustCompile(`(?i)^(the|a|an)\s+`)
	reTrailingGeneric = regexp.MustCompile(`(?i)\s+(project|handoff|handover|document|summary)$`)
)

// UnknownProject is returned when no project name can be located
const UnknownProject = "Unknown Project"

// ExtractProjectName pulls a project name out of the transcript text
func ExtractProjectName(text string) string {
	for _, pattern := range projectNamePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		name := strings.TrimSpace(m[1])
		name = reLeadingArticle.ReplaceAllString(name, "")
		name = reTrailingGeneric.ReplaceAllString(name, "")
		name = strings.TrimSpace(name)

		if len(name) > 2 {
			return name
		}
	}

	return UnknownProject
}

package msgtemplate

import "strings"

// outOfSessionTouchpoints are the touchpoint slots whose templates are sent
// outside an open WhatsApp 24-hour session and therefore must be approved
// templated messages.
var outOfSessionTouchpoints = map[string]bool{
	"podcast_kickoff":      true,
	"weekly_review":        true,
	"assessment_reminder":  true,
	"reengagement":         true,
	"daily_prompt_reawake": true,
}

// IsOutOfSessionTemplate reports whether name is a template used to re-open a
// closed WhatsApp session. Matches the known out-of-session touchpoint set or
// an explicit "out_of_session" marker in the name.
func IsOutOfSessionTemplate(name string) bool {
	n := normalize(name)
	if strings.Contains(n, "out_of_session") {
		return true
	}
	return outOfSessionTouchpoints[TouchpointFromName(n)]
}

// IsDailyPromptReawakeTemplate reports whether name belongs to the
// daily-prompt re-awake family ("daily_prompt_reawake", optionally suffixed
// with a variant like "daily_prompt_reawake_v2").
func IsDailyPromptReawakeTemplate(name string) bool {
	n := normalize(name)
	return n == "daily_prompt_reawake" || strings.HasPrefix(n, "daily_prompt_reawake_")
}

// TouchpointFromName derives the touchpoint slot from a template name by
// stripping a trailing version or locale suffix ("_v2", "_en", "_es_mx").
func TouchpointFromName(name string) string {
	n := normalize(name)
	for {
		i := strings.LastIndex(n, "_")
		if i < 0 {
			return n
		}
		suffix := n[i+1:]
		if !isVersionSuffix(suffix) && !isLocaleSuffix(suffix) {
			return n
		}
		n = n[:i]
	}
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// isVersionSuffix matches "v1", "v2", ...
func isVersionSuffix(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// knownLocales are the language suffixes the backend appends to template
// names. Kept to an explicit set so touchpoint words like "in" never match.
var knownLocales = map[string]bool{
	"en": true, "es": true, "pt": true, "fr": true, "de": true, "mi": true,
}

func isLocaleSuffix(s string) bool {
	return knownLocales[s]
}

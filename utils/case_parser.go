package utils

import "regexp"

// The case token is always rendered as `Case ID: XXXXXXXX` in plain text or
// `*Case ID:* XXXXXXXX` in mrkdwn. The label match is case-insensitive, the
// token characters are exact. Relay correctness depends on this format being
// preserved verbatim in every message that should be discoverable.
var (
	caseIDPattern  = regexp.MustCompile(`(?i:\*?case id:\*?)\s*([A-Z0-9]{8})`)
	mentionPattern = regexp.MustCompile(`<@([A-Z0-9]+)>`)
)

// ExtractCaseID extracts an embedded case token from message text. The
// second return value is false when no token is present, which is the
// expected outcome for the majority of messages and is not an error.
func ExtractCaseID(text string) (string, bool) {
	m := caseIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractMention returns the first user mention token embedded in text. The
// review-channel anchor always mentions the submitter, so this is how the
// relay recovers the submitter identity when no case record exists.
func ExtractMention(text string) (string, bool) {
	m := mentionPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

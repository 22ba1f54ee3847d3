package agent

import (
	"strings"

	"tailortalk/models"
)

// classifyIntent returns the label of the first intent with a pattern
// matching anywhere in the lower-cased message. It is a pure function of
// the message and the static pattern table.
func classifyIntent(message string) models.Intent {
	lower := strings.ToLower(message)

	for _, ip := range intentPatterns {
		for _, re := range ip.patterns {
			if re.MatchString(lower) {
				return ip.intent
			}
		}
	}
	return models.IntentUnknown
}

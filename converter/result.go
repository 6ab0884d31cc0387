package converter

// Result holds the output of a conversion.
type Result struct {
	Markdown string    `json:"markdown"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningParseRecovery WarningType = "parse_recovery"
	WarningRuleFailure   WarningType = "rule_failure"
	WarningDepthLimit    WarningType = "depth_limit"
	WarningBlockedURL    WarningType = "blocked_url"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type    WarningType `json:"type"`
	Tag     string      `json:"tag,omitempty"`
	Message string      `json:"message"`
}

package theme

import "github.com/muesli/termenv"

// DetectDark probes the terminal background. When the query fails termenv
// answers dark, which matches how most terminals ship.
func DetectDark() bool {
	return termenv.HasDarkBackground()
}

package espn

import "time"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second

	// Drawing defaults applied when the feed omits team fields.
	defaultAbbreviation = "TBD"
	defaultPrimaryColor = "CCCCCC"
	defaultAltColor     = "000000"

	// preferredLogoRel marks the standard logo variant in the logos list.
	preferredLogoRel = "default"
)

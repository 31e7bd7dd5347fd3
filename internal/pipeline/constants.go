package pipeline

// Skip reasons shared between logs and metrics.
const (
	reasonIncomplete  = "incomplete_team"
	reasonMissingLogo = "missing_logo"
	reasonDownload    = "download"
	reasonRender      = "render"
	reasonOutput      = "output"
)

package config

import "time"

const (
	envPrefix     = "MATCHDAY"
	envConfigFile = "MATCHDAY_CONFIG"

	defaultConfigDir  = "configs"
	defaultConfigName = "matchday"
	defaultConfigType = "yml"

	defaultSource      = "espn"
	defaultServiceName = "matchday-graphics"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultBaseDir     = "game_graphics"

	// Pause between per-game render attempts so upstream logo hosts and the
	// local ImageMagick queue are not hammered.
	defaultGameDelay = 500 * Duration(time.Millisecond)

	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultESPNTimeout = 10 * Duration(time.Second)
)

package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = (`
 _          _
| |__   ___| |_ ___ _ __ ___   __ _ _ __ __ _ _ __ ___
| '_ \ / _ \ __/ _ \ '__/ _ \ / _| | '__/ _| | '_ ' _ \
| | | |  __/ ||  __/ | | (_) | (_| | | | (_| | | | | | |
|_| |_|\___|\__\___|_|  \___/ \__, |_|  \__,_|_| |_| |_|
                               |___/
`)

var version = "v0.0.1"

// showBanner prints the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates heterogram
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("heterogram", version)()
	}
}

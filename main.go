package main

import "github.com/podwatch/watchlist-api/cmd"

// @title           Podcast Watchlist API
// @version         1.0.0
// @description     A podcast watchlist with PIN-protected editing and deletion
// @contact.name    API Support
// @contact.url     https://github.com/podwatch/watchlist-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3005
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}

package main

import "github.com/kokotatan/swipecut/cmd"

// @title           SwipeCut API
// @version         1.0.0
// @description     Video segment review and curation API: ingest, split, swipe, export
// @contact.name    API Support
// @contact.url     https://github.com/kokotatan/swipecut
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}

// @title           JobSwipe API
// @version         1.0
// @description     API для свайп-маркетплейса, соединяющего работников и работодателей.
// @contact.name    JobSwipe
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "jobswipe_backend/internal/app"

func main() {
	app.Run()
}

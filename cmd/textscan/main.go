package main

// @title           textscan API
// @version         1.0
// @description     Upload plain-text files, analyze word counts and keywords, and search every file with highlighted matches.

// @contact.name   textscan maintainers
// @contact.url    https://github.com/custodia-labs/textscan/issues

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

var version = "dev"

func main() {
	Execute()
}

package main

import "github.com/lloydmeta/docsproxy/app/cmd"

func main() {
	cmd.Execute()
}

// @title docsproxy API
// @version 0.0.1
// @description CRUD over a remote document store

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:3000
// @BasePath /

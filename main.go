package main

import "icon-scraper/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/yatharthsood00/spotify-wrapped-insights/cmd"

func main() {
	cmd.Execute()
}

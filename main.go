package main

import "github.com/tonimelisma/onedrive-live/cmd"

func main() {
	cmd.Execute()
}

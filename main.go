package main

import "github.com/frahmantamala/timeclock/cmd"

func main() {
	cmd.Execute()
}

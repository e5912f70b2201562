package main

import "github.com/example/roomdesk/cmd"

func main() {
	cmd.Execute()
}

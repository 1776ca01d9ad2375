package main

import "imessage-sender/cmd"

func main() {
	cmd.Execute()
}

package main

import "metadata-bridge/cmd"

func main() {
	cmd.Execute()
}

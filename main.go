package main

import "holiday-manager/cmd"

func main() {
	cmd.Execute()
}

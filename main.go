package main

import "edtbot/cmd"

func main() {
	cmd.Execute()
}

package main

import "gradevault/cmd"

func main() {
	cmd.Execute()
}

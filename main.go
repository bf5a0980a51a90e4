package main

import "github.com/pders01/timeshift/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/narasux/elements/cmd"

func main() {
	cmd.Execute()
}

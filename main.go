package main

import "github.com/notaneet/ttmerge/cmd"

func main() {
	cmd.Execute()
}

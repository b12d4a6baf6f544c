package main

import "github.com/bmatsuo/subscheme/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mixmini/mixmini/cmd"

func main() {
	cmd.Execute()
}

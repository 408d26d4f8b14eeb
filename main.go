package main

import "github.com/theirongolddev/scholarhub/cmd"

func main() {
	cmd.Execute()
}

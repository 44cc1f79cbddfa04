package main

import "kakeibo/cmd/kakeibo/cmd"

func main() {
	cmd.Execute()
}

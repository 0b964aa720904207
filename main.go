package main

import "entlink/unify/cmd"

func main() {
	cmd.Execute()
}

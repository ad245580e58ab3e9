// Package main is the entry point for the elle CLI.
package main

import "github.com/ASSERT-KTH/elle-elle-aime-sub000/cmd"

func main() {
	cmd.Execute()
}

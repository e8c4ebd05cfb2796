package main

import "github.com/edwincheahmp4/questboard/cmd/qb/root"

func main() {
	root.Execute()
}

package main

import "indexer-sync/cmd"

func main() {
	cmd.Execute()
}

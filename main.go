package main

import "github.com/prasanthkarthik25305/alma-connect-spark/cmd"

func main() {
	cmd.Execute()
}

// Package main provides the CLI entrypoint for toaster.
package main

func main() {
	Execute()
}

// Package main provides the CLI entrypoint for simnotify.
package main

func main() {
	Execute()
}

// Command porkbun is a command line client for the Porkbun API.
package main

import "github.com/Oxtaly/porkbun-wrapper/internal/cli"

func main() {
	cli.Execute()
}

// dwave-mcp serves a mocked D-Wave quantum annealing problem store over
// the Model Context Protocol.
package main

import "github.com/qanneal/dwave-mcp-go/internal/cli"

func main() {
	cli.Execute()
}

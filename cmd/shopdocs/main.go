// Command shopdocs opens shop drawing and e-report PDFs by number.
package main

import "github.com/shopdocs/launcher/internal/cli"

func main() {
	cli.Execute()
}

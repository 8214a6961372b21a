// Command viloxterm boots the terminal and editor workbench core.
package main

import "github.com/vilosource/viloxterm/internal/cli/cmd"

func main() {
	cmd.Execute()
}

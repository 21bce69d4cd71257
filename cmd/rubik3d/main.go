// rubik3d - interactive 3D Rubik's Cube with session recording and replay.
package main

import (
	"rubik3d/internal/cli"
)

func main() {
	cli.Execute()
}

// cmd/fastx/main.go
package main

import (
	"fastx/internal/app"
	"fastx/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

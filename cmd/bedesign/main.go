// cmd/bedesign/main.go
package main

import (
	"bedesign/internal/app"
	"bedesign/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

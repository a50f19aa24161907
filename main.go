/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/kanban-sheets/cmd"
	"github.com/josephgoksu/kanban-sheets/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}

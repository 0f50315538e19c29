// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/commonfiles/cmd/commonfiles/cmd"
)

func main() {
	cmd.Execute()
}

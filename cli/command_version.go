package cli

import (
	"fmt"

	"github.com/wyrelang/wyre"
)

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("wyre v" + wyre.Version)
	return nil
}

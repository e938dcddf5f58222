package powerset

import (
	"github.com/cs-au-dk/powerset/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Empty func(...interface{}) string
	Mask  func(...interface{}) string
}{
	Empty: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Mask: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}

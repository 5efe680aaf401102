//go:build cgo

package main

import "github.com/sqweek/dialog"

func confirmQuit(title, message string) bool {
	return dialog.Message("%s", message).Title(title).YesNo()
}

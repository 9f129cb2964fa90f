package common

import "github.com/jpnorenam/sysinfo-lite/pkg/storage"

type Context struct {
	Verbose bool
	Config  storage.Config
}

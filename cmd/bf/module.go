package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/nets"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Configs bfconfigs.Module
	Nets    nets.Module
	Debugs  debugs.Module
}

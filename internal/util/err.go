package util

type CraneCmdError = int

// general
const (
	ErrorSuccess    CraneCmdError = 0
	ErrorGeneric    CraneCmdError = 1
	ErrorCmdArg     CraneCmdError = 2
	ErrorAllocation CraneCmdError = 3
)

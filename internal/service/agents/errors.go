package agents

import "errors"

var (
	ErrCenterNotFound      = errors.New("agents.service: center not found")
	ErrAgentAlreadyExists  = errors.New("agents.service: agent already provisioned for center")
	ErrAgentNotProvisioned = errors.New("agents.service: no agent provisioned for center")
	ErrInternal            = errors.New("agents.service: internal error")
)

package controller

import "github.com/milk9111/topdown/ecs"

type (
	InputProvider = ecs.InputProvider
	CameraBasis   = ecs.CameraBasis
	Mover         = ecs.Mover
	MoveResult    = ecs.MoveResult
	HostileQuery  = ecs.HostileQuery
	Hostile       = ecs.Hostile
	HostileID     = ecs.HostileID
	Capability    = ecs.Capability
	TurnGate      = ecs.TurnGate
	EffectSink    = ecs.EffectSink
	Collaborators = ecs.Collaborators
)

package dto

import "time"

type StartInput struct {
	TaskName string
	Client   string
	Billable bool
}

type StartOutput struct {
	TaskName  string
	Client    string
	Billable  bool
	StartedAt time.Time
}

type StopOutput struct {
	TaskID   string
	Title    string
	Hours    float64
	Elapsed  time.Duration
	Notes    string
	Billable bool
}

type StatusOutput struct {
	TaskName  string
	Client    string
	Billable  bool
	StartedAt time.Time
	Elapsed   time.Duration
}

type ResetOutput struct {
	// Discarded is false when reset ran while idle, which only clears
	// staged input and touches no persisted state.
	Discarded bool
	TaskName  string
}

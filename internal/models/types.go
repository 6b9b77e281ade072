package models

import (
	"time"
)

type JobType string

const (
	JobTypeSolve    JobType = "solve"
	JobTypeClassify JobType = "classify"
)

type JobStatus string

const (
	JobStatusDone   JobStatus = "done"
	JobStatusFailed JobStatus = "failed"
)

type SolveRequest struct {
	Problem string `json:"problem" jsonschema:"natural-language reasoning problem with an integer answer"`
	Trials  int    `json:"trials,omitempty" jsonschema:"number of independent trials to vote over (default: 5)"`
}

// Output of one self-consistency run
type SolveResult struct {
	Problem     string        `json:"problem"`
	Responses   []int         `json:"responses"`
	FinalAnswer int           `json:"final_answer"`
	Votes       int           `json:"votes"`
	Duration    time.Duration `json:"duration_ns"`
}

type ClassifyRequest struct {
	URL string `json:"url" jsonschema:"http(s) URL of the image to classify"`
}

type Prediction struct {
	URL         string  `json:"url"`
	Index       int     `json:"index"`
	Score       float32 `json:"score"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// Vote is the tally of a response set.
type Vote struct {
	Answer int         `json:"answer"`
	Count  int         `json:"count"`
	Total  int         `json:"total"`
	Tally  []VoteCount `json:"tally"`
}

type VoteCount struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// Input message of the stream worker
type JobRequest struct {
	EventID string  `json:"event_id"`
	Type    JobType `json:"type"`
	Problem string  `json:"problem,omitempty"`
	Trials  int     `json:"trials,omitempty"`
	URL     string  `json:"url,omitempty"`
}

type JobResult struct {
	EventID    string       `json:"event_id"`
	Type       JobType      `json:"type"`
	Status     JobStatus    `json:"status"`
	Solve      *SolveResult `json:"solve,omitempty"`
	Prediction *Prediction  `json:"prediction,omitempty"`
	Error      string       `json:"error,omitempty"`
	FinishedAt time.Time    `json:"finished_at"`
}

type SkillInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

package models

import "time"

// IngestReport describes one bulk-load run.
//
// Example JSON:
//
//	{
//	  "runId": "01JA2B3C4D5E6F7G8H9J0K1M2N",
//	  "source": "access.log",
//	  "batchSize": 10000,
//	  "startedAt": "2026-10-18T09:00:00Z",
//	  "finishedAt": "2026-10-18T09:00:04Z",
//	  "linesRead": 25003,
//	  "parsed": 25000,
//	  "unparsed": {"empty": 1, "grammarMismatch": 1, "invalid": 0, "oversized": 1},
//	  "committed": 25000,
//	  "batchesCommitted": 3
//	}
//
// Parsed always equals Committed for a completed run; batch size only changes BatchesCommitted.
type IngestReport struct {
	RunID            string         `json:"runId"`
	Source           string         `json:"source"`
	BatchSize        int            `json:"batchSize"`
	StartedAt        time.Time      `json:"startedAt"`
	FinishedAt       time.Time      `json:"finishedAt"`
	LinesRead        int64          `json:"linesRead"`
	Parsed           int64          `json:"parsed"`
	Unparsed         UnparsedCounts `json:"unparsed"`
	Committed        int64          `json:"committed"`
	BatchesCommitted int64          `json:"batchesCommitted"`
}

// UnparsedCounts classifies lines that did not become log entries.
type UnparsedCounts struct {
	Empty           int64 `json:"empty"`
	GrammarMismatch int64 `json:"grammarMismatch"`
	Invalid         int64 `json:"invalid"`
	Oversized       int64 `json:"oversized"` // longer than the line size limit, never parsed
}

func (u UnparsedCounts) Total() int64 {
	return u.Empty + u.GrammarMismatch + u.Invalid + u.Oversized
}

package model

import "time"

// CompletionRecord is one cell of the (task, client, period) completion
// matrix. Records are never deleted; unmarking keeps the row with the
// who/when fields cleared.
type CompletionRecord struct {
	TaskID      string     `firestore:"taskid,omitempty" json:"taskId"`
	ClientID    string     `firestore:"clientid,omitempty" json:"clientId"`
	PeriodKey   string     `firestore:"periodkey,omitempty" json:"periodKey"`
	IsCompleted bool       `firestore:"iscompleted" json:"isCompleted"`
	CompletedBy string     `firestore:"completedby,omitempty" json:"completedBy,omitempty"`
	CompletedAt *time.Time `firestore:"completedat,omitempty" json:"completedAt,omitempty"`
	UpdatedAt   time.Time  `firestore:"updatedat,omitempty" json:"updatedAt"`
}

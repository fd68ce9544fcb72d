package models

import "time"

type PostingHistory struct {
	ID           int64     `db:"id" json:"id"`
	RecordID     string    `db:"record_id" json:"recordId"`
	Platform     string    `db:"platform" json:"platform"`
	ExternalID   string    `db:"external_id" json:"externalId"`
	ErrorMessage string    `db:"error_message" json:"errorMessage"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

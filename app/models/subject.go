package models

import "time"

type Subject struct {
	ID        string    `json:"id"`
	SubCode   string    `json:"sub_code"`
	SubName   string    `json:"sub_name"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "html"

// Report is an anonymous report posted to a room. The nickname is always
// generated server-side so a client cannot spoof a display name.
type Report struct {
	Model
	Room     string `json:"room" gorm:"size:20;not null"`
	Content  string `json:"content" gorm:"type:varchar(1000);not null"`
	Nickname string `json:"nickname" gorm:"size:50;not null"`
	Likes    int    `json:"likes" gorm:"not null;default:0"`
	Status   string `json:"-" gorm:"size:20;not null;default:pending"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportLike records that a user liked a report; the composite unique index
// enforces at most one like per user per report.
type ReportLike struct {
	Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_report"`
	ReportID uint `json:"report_id" gorm:"not null;uniqueIndex:idx_user_report"`
}

func (ReportLike) TableName() string {
	return "report_likes"
}

type CreateReportRequest struct {
	Room    string `json:"room" conform:"trim" binding:"required"`
	Content string `json:"content" conform:"trim" binding:"required"`
}

// ReportResponse is the client-facing shape of a report. User-supplied
// strings are HTML-escaped before they ever leave the server.
type ReportResponse struct {
	ID       uint   `json:"id"`
	Room     string `json:"room"`
	Content  string `json:"content"`
	Nickname string `json:"nickname"`
	Likes    int    `json:"likes"`
}

// EscapedResponse builds the response shape with stored-XSS-safe fields.
func (r *Report) EscapedResponse() ReportResponse {
	return ReportResponse{
		ID:       r.ID,
		Room:     html.EscapeString(r.Room),
		Content:  html.EscapeString(r.Content),
		Nickname: html.EscapeString(r.Nickname),
		Likes:    r.Likes,
	}
}

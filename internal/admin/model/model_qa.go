package model

import "time"

// Question is a community Q&A post. Each user may post at most one
// question per calendar day.
type Question struct {
	BaseModel
	QuestionId string `gorm:"column:question_id" json:"questionId"`
	AuthorId   string `gorm:"column:author_id" json:"authorId"`
	Title      string `gorm:"column:title" json:"title"`
	Body       string `gorm:"column:body" json:"body"`
	Category   string `gorm:"column:category" json:"category,omitempty"`
	Upvotes    int64  `gorm:"column:upvotes" json:"upvotes"`
	// AcceptedAnswerId is set by the question author or an admin.
	AcceptedAnswerId string `gorm:"column:accepted_answer_id" json:"acceptedAnswerId,omitempty"`
}

func (Question) TableName() string {
	return "t_question"
}

// Answer is a reply to a question.
type Answer struct {
	BaseModel
	AnswerId   string `gorm:"column:answer_id" json:"answerId"`
	QuestionId string `gorm:"column:question_id" json:"questionId"`
	AuthorId   string `gorm:"column:author_id" json:"authorId"`
	Body       string `gorm:"column:body" json:"body"`
	Upvotes    int64  `gorm:"column:upvotes" json:"upvotes"`
	IsAccepted bool   `gorm:"column:is_accepted" json:"isAccepted"`
}

func (Answer) TableName() string {
	return "t_answer"
}

type AddQuestionReq struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category"`
}

type AddAnswerReq struct {
	Body string `json:"body" validate:"required"`
}

// QuestionDetail bundles a question with its answers for the detail view.
type QuestionDetail struct {
	Question Question `json:"question"`
	Answers  []Answer `json:"answers"`
}

// SameCalendarDay reports whether a and b fall on the same day in loc.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

package preference

import "sommelier-srv/internal/model"

// PutInput overwrites the whole record of a user.
type PutInput struct {
	UserID      string
	Preferences model.Preferences
	Source      string   // chat | api
	Fields      []string // changed fields, reported in the preference.updated event
}

// DetectUpdateInput asks whether Utterance assigns any preference.
type DetectUpdateInput struct {
	Utterance string
	Current   model.Preferences
}

// UpdateResult is the outcome of update detection. When Matched is false, Record is the zero value.
type UpdateResult struct {
	Matched bool
	Record  model.Preferences
	Summary string
	Fields  []string
}

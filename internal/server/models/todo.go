package models

// Todo is a single task owned by CreatorID. CompletedAt holds epoch
// milliseconds and is non-nil exactly when Completed is true.
type Todo struct {
	ID          string `bson:"_id"`
	Text        string `bson:"text"`
	Completed   bool   `bson:"completed"`
	CompletedAt *int64 `bson:"completedAt"`
	CreatorID   string `bson:"_creator"`
}

// TodoUpdate is a resolved patch. Text is nil when the text is unchanged;
// Completed and CompletedAt are always written.
type TodoUpdate struct {
	Text        *string
	Completed   bool
	CompletedAt *int64
}

package queries

type Category struct {
	ID   int32  `db:"id"`
	Type string `db:"type"`
}

type Question struct {
	ID         int32  `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Category   int32  `db:"category"`
	Difficulty int32  `db:"difficulty"`
}

type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

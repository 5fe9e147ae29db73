package model

type Tip struct {
	ID       int64   `db:"id" json:"id"`
	Title    string  `db:"title" json:"title"`
	Content  string  `db:"content" json:"content"`
	Category *string `db:"category" json:"category"` // Nullable
}

type FAQ struct {
	ID       int64  `db:"id" json:"id"`
	Question string `db:"question" json:"question"`
	Answer   string `db:"answer" json:"answer"`
}

type SocialMedia struct {
	ID       int64  `db:"id" json:"id"`
	Platform string `db:"platform" json:"platform"`
	URL      string `db:"url" json:"url"`
}

package domain

// InfoPost is a standalone admin announcement, unrelated to any board.
type InfoPost struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	Timestamp Millis `json:"timestamp"`
}

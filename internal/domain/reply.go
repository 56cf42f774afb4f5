package domain

type ReplyCreationData struct {
	Thread   ThreadId
	Content  string
	Author   string
	ImageURL string
}

type Reply struct {
	Id        ReplyId    `json:"id"`
	ThreadId  ThreadId   `json:"threadId"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	ImageURL  string     `json:"imageUrl"`
	Timestamp Millis     `json:"timestamp"`
	UpdatedAt *Millis    `json:"updatedAt,omitempty"`
	Likes     []ClientId `json:"likes"`
}

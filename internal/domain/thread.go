package domain

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Board    BoardId
	Title    string
	Content  string
	Author   string
	ImageURL string
}

// PostUpdateData carries the editable fields of a thread or reply;
// replies ignore Title.
type PostUpdateData struct {
	Title    string
	Content  string
	Author   string
	ImageURL string
}

type Thread struct {
	Id         ThreadId   `json:"id"`
	BoardId    BoardId    `json:"boardId"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Author     string     `json:"author"`
	ImageURL   string     `json:"imageUrl"`
	Timestamp  Millis     `json:"timestamp"`
	UpdatedAt  *Millis    `json:"updatedAt,omitempty"`
	Pinned     bool       `json:"pinned"`
	Likes      []ClientId `json:"likes"`
	ReplyCount int        `json:"replyCount"`
}

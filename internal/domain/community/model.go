package community

// Post is an append-only community post. Ids are sequential by count
// (len(posts)+1), which matches the front end's expectation of small
// human-readable ids. That scheme collides if deletion is ever added;
// see DESIGN.md before changing it.
type Post struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Date     string `json:"date"`
}

// StudyGroup is a named group with a member counter
type StudyGroup struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Members     int    `json:"members"`
	NextMeeting string `json:"nextMeeting"`
}

// Community bundles both collections for the /api/community endpoint
type Community struct {
	Posts       []Post       `json:"posts"`
	StudyGroups []StudyGroup `json:"studyGroups"`
}

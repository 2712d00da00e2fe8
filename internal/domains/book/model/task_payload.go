package model

// StoreBookPayload is the queue message body: the four submission
// fields as canonical JSON. ReleaseDate stays the submitted dd-mm-yyyy
// string; the consumer parses it.
type StoreBookPayload struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Pages       int    `json:"pages"`
	ReleaseDate string `json:"releaseDate"`
}

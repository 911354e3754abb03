package domain

// Event is one inbound update from the chat platform, already stripped down
// to what the mode router needs. The transport adapter resolves photo file
// references into URLs before constructing a PhotoMessage.
type Event interface {
	EventUserID() int64
}

// TextMessage is plain user text.
type TextMessage struct {
	UserID int64
	Text   string
}

// CallbackSelection is a tapped inline button carrying a selection token.
type CallbackSelection struct {
	UserID int64
	Token  string
}

// PhotoMessage is an uploaded photo with an optional caption. ImageURL is a
// publicly fetchable URL for the photo.
type PhotoMessage struct {
	UserID   int64
	ImageURL string
	Caption  string
}

func (e TextMessage) EventUserID() int64       { return e.UserID }
func (e CallbackSelection) EventUserID() int64 { return e.UserID }
func (e PhotoMessage) EventUserID() int64      { return e.UserID }

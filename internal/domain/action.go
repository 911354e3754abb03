package domain

// Button is one inline keyboard button: a label and the selection token it
// sends back.
type Button struct {
	Label string
	Token string
}

// Keyboard is the abstract reply-markup payload attached to a SendText.
// Exactly one of Inline, Reply or Remove is meaningful; the transport
// adapter renders it into the platform's markup.
type Keyboard struct {
	Inline [][]Button
	Reply  []string
	Remove bool
}

// Action is one outbound instruction for the transport adapter.
type Action interface {
	isAction()
}

// SendText sends a text reply, optionally with a keyboard.
type SendText struct {
	Text     string
	Keyboard *Keyboard
}

// SendPhoto sends a photo by URL.
type SendPhoto struct {
	URL string
}

// SendAudio sends an audio file by URL.
type SendAudio struct {
	URL   string
	Title string
}

// SendDocument sends raw bytes as a downloadable attachment.
type SendDocument struct {
	Filename string
	Data     []byte
}

// EditLastMessage replaces the text of the message the user interacted with.
type EditLastMessage struct {
	Text string
}

func (SendText) isAction()        {}
func (SendPhoto) isAction()       {}
func (SendAudio) isAction()       {}
func (SendDocument) isAction()    {}
func (EditLastMessage) isAction() {}

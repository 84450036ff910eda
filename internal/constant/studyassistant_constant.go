package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	AttachmentKindImage = "image"
	AttachmentKindFile  = "file"

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	TaskCategoryStudy      = "study"
	TaskCategoryAssignment = "assignment"
	TaskCategoryExam       = "exam"
	TaskCategoryOther      = "other"

	// SnapshotStorageKey is the single durable key the whole state snapshot
	// lives under.
	SnapshotStorageKey = "study-app-storage"

	// ChatHistoryWindow is the number of trailing turns forwarded to the model.
	ChatHistoryWindow = 10

	// MinDocumentChars is the minimum extracted-text length required before a
	// summary or quiz generation is attempted.
	MinDocumentChars = 50

	// ChatFailureReply is appended as a regular model turn when generation
	// fails, so a broken call never loses the user's place in the conversation.
	ChatFailureReply = "Sorry, a temporary processing issue occurred. Please retry in a moment or simplify the request."
)

// Flight-gate action names. One in-progress operation per action at a time.
const (
	ActionChat       = "chat"
	ActionSummary    = "summary"
	ActionFlashcards = "flashcards"
	ActionMCQ        = "mcq"
	ActionImage      = "image"

	StageExtracting = "extracting"
	StageAnalyzing  = "analyzing"
)

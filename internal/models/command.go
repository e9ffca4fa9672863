package models

// Language is the BCP 47 tag delivered alongside a transcript by the
// speech-to-text layer.
type Language string

const (
	LanguageEnglish Language = "en-US"
	LanguageHindi   Language = "hi-IN"
)

// IsHindi reports whether the tag selects the Hindi/Hinglish pipeline.
func (l Language) IsHindi() bool {
	return l == LanguageHindi
}

// CommandType discriminates a ProcessedCommand.
type CommandType string

const (
	CommandAdd     CommandType = "add"
	CommandRemove  CommandType = "remove"
	CommandSuggest CommandType = "suggest"
	CommandConfirm CommandType = "confirm"
	CommandClear   CommandType = "clear"
	CommandError   CommandType = "error"
)

// ProcessedCommand is the structured result of interpreting one utterance.
// Exactly one of Item, Suggestions or SelectedItem is populated depending on
// Type: add carries Item, suggest carries Suggestions (plus Category),
// remove and confirm carry SelectedItem. Message is always set, in the
// language of the input.
type ProcessedCommand struct {
	Type         CommandType   `json:"type"`
	Message      string        `json:"message"`
	Item         *ShoppingItem `json:"item,omitempty"`
	Suggestions  []string      `json:"suggestions,omitempty"`
	SelectedItem string        `json:"selected_item,omitempty"`
	Category     string        `json:"category,omitempty"`
}

// ErrorCommand builds an error-typed result with a localized message.
func ErrorCommand(message string) ProcessedCommand {
	return ProcessedCommand{Type: CommandError, Message: message}
}

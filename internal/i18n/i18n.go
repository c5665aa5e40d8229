package i18n

// Language selects one of the two built-in string tables.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// Message keys used by the UI and CLI.
const (
	KeyAddSession      = "add_session"
	KeyCancel          = "cancel"
	KeyCompleted       = "completed"
	KeyConfirmReset    = "confirm_reset"
	KeyDelete          = "delete"
	KeyEditSession     = "edit_session"
	KeyEndSession      = "end_session"
	KeyHelpAdd         = "help_add"
	KeyHelpDelete      = "help_delete"
	KeyHelpEdit        = "help_edit"
	KeyHelpEnd         = "help_end"
	KeyHelpQuit        = "help_quit"
	KeyHelpReset       = "help_reset"
	KeyHelpSelect      = "help_select"
	KeyHelpUndo        = "help_undo"
	KeyInProgress      = "in_progress"
	KeyNo              = "no"
	KeyNoSessions      = "no_sessions"
	KeyNote            = "note"
	KeyNotePlaceholder = "note_placeholder"
	KeyReset           = "reset"
	KeyTotal           = "total"
	KeyUndo            = "undo"
	KeyYes             = "yes"
)

var tables = map[Language]map[string]string{
	English: {
		KeyAddSession:      "New session",
		KeyCancel:          "Cancel",
		KeyCompleted:       "completed",
		KeyConfirmReset:    "Delete all sessions? This cannot be undone.",
		KeyDelete:          "Delete",
		KeyEditSession:     "Edit session",
		KeyEndSession:      "End session",
		KeyHelpAdd:         "add",
		KeyHelpDelete:      "delete",
		KeyHelpEdit:        "edit",
		KeyHelpEnd:         "end",
		KeyHelpQuit:        "quit",
		KeyHelpReset:       "reset",
		KeyHelpSelect:      "select",
		KeyHelpUndo:        "undo",
		KeyInProgress:      "in progress",
		KeyNo:              "No",
		KeyNoSessions:      "No sessions yet. Press 'a' to log one.",
		KeyNote:            "Note",
		KeyNotePlaceholder: "leg day",
		KeyReset:           "Reset",
		KeyTotal:           "total",
		KeyUndo:            "Undo",
		KeyYes:             "Yes",
	},
	Portuguese: {
		KeyAddSession:      "Nova sessão",
		KeyCancel:          "Cancelar",
		KeyCompleted:       "concluídas",
		KeyConfirmReset:    "Apagar todas as sessões? Esta ação não pode ser desfeita.",
		KeyDelete:          "Apagar",
		KeyEditSession:     "Editar sessão",
		KeyEndSession:      "Terminar sessão",
		KeyHelpAdd:         "adicionar",
		KeyHelpDelete:      "apagar",
		KeyHelpEdit:        "editar",
		KeyHelpEnd:         "terminar",
		KeyHelpQuit:        "sair",
		KeyHelpReset:       "repor",
		KeyHelpSelect:      "selecionar",
		KeyHelpUndo:        "desfazer",
		KeyInProgress:      "em curso",
		KeyNo:              "Não",
		KeyNoSessions:      "Ainda sem sessões. Prima 'a' para registar uma.",
		KeyNote:            "Nota",
		KeyNotePlaceholder: "dia de pernas",
		KeyReset:           "Repor",
		KeyTotal:           "total",
		KeyUndo:            "Desfazer",
		KeyYes:             "Sim",
	},
}

// ParseLanguage maps a settings value to a supported language, defaulting
// to English for anything unknown.
func ParseLanguage(s string) Language {
	if Language(s) == Portuguese {
		return Portuguese
	}
	return English
}

// T returns the localized message for key. Unknown keys fall back to the
// English table, then to the key itself.
func T(lang Language, key string) string {
	if msg, ok := tables[lang][key]; ok {
		return msg
	}
	if msg, ok := tables[English][key]; ok {
		return msg
	}
	return key
}

package emoji

// EmojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"error":       {"❌", "[ERR]"},
	"warning":     {"⚠️", "[WRN]"},
	"info":        {"ℹ️", "[INF]"},
	"success":     {"✅", "[OK]"},
	"help":        {"❓", "[?]"},
	"door":        {"🚪", "[EXIT]"},
	"mail":        {"✉️", "[@]"},
	"lock":        {"🔒", "[PWD]"},
	"flask":       {"🧪", "[TA]"},
	"activity":    {"🩺", "[IND]"},
	"calendar":    {"📅", "[CAL]"},
	"search":      {"🔍", "[/]"},
	"file":        {"📄", "[DOC]"},
	"star":        {"⭐", "[*]"},
	"pin":         {"📌", "[^]"},
	"user":        {"👤", "[USR]"},
	"clock":       {"🕒", "[T]"},
	"trending":    {"📈", "[UP]"},
	"lightbulb":   {"💡", "[IDEA]"},
	"brain":       {"🧠", "[AI]"},
	"pie":         {"🍩", "[PIE]"},
	"bar":         {"📊", "[BAR]"},
	"upload":      {"📤", "[UPL]"},
	"map":         {"🗺️", "[MAP]"},
	"check":       {"✔️", "[v]"},
	"plus":        {"➕", "[+]"},
	"back":        {"⬅️", "[<]"},
	"rocket":      {"🚀", "[GO]"},
	"target":      {"🎯", "[>]"},
	"scale":       {"⚖️", "[CMP]"},
	"tag":         {"🏷️", "[TAG]"},
	"statistics":  {"📊", "[STATS]"},
	"number":      {"🔢", "[#]"},
	"arrows":      {"↕️", "[^v]"},
	"sparkles":    {"✨", "[~]"},
	"hourglass":   {"⏳", "[..]"},
	"handshake":   {"🤝", "[ADV]"},
	"pill":        {"💊", "[RX]"},
	"money":       {"💲", "[$]"},
	"chart_arrow": {"📉", "[DN]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1] // fallback
		}
		return mapping[0] // emoji
	}
	return "[?]" // unknown key
}

// WithIcon prefixes text with the named icon and a single space.
func WithIcon(key, text string) string {
	return GetEmoji(key) + " " + text
}

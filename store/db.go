package store

// Key names one persisted concern.
type Key string

const (
	KeyCredential      Key = "openai_api_key"
	KeyConversation    Key = "ai_conversation_history"
	KeyActivity        Key = "productivity_progress"
	KeyLearning        Key = "learning_progress"
	KeyCustomResources Key = "custom_resources"
	KeySettings        Key = "app_settings"
)

// Keys lists every key compass persists.
var Keys = []Key{
	KeyCredential,
	KeyConversation,
	KeyActivity,
	KeyLearning,
	KeyCustomResources,
	KeySettings,
}

// DB is the key/value storage interface.
type DB interface {
	// Get returns the value stored under key, or nil if the key is absent
	Get(key Key) ([]byte, error)
	// Put creates or overwrites the value stored under key
	Put(key Key, value []byte) error
	// Delete removes key. Deleting an absent key is not an error
	Delete(key Key) error
	// Size returns the total number of bytes held in values
	Size() (int, error)
	// Close ends the database connection
	Close() error
}

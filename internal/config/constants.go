package config

const (
	// DefaultBoard is the education board served when a request does not
	// specify one.
	DefaultBoard = "Maharashtra"

	// DefaultStandard is the class/grade served when a request does not
	// specify one.
	DefaultStandard = "12"
)

package config

// Helper keeps the path of the rules configuration that fragments are meant
// for. It only records the path; nothing reads or writes the file through it.
type Helper struct {
	configPath *string
}

// NewHelper returns a Helper with no path set.
func NewHelper() *Helper {
	return &Helper{}
}

// SetConfigPath records path, replacing any earlier value.
func (h *Helper) SetConfigPath(path string) {
	h.configPath = &path
}
